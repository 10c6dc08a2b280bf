package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:254;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	UserName     string    `json:"userName" gorm:"size:50"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session binds a server-issued opaque token to one user identity.
// It is created on login and removed on logout or expiry.
type Session struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// NormalizeEmail trims whitespace and lower-cases an email address.
// The normalized form is the uniqueness key for users, so every write
// and lookup must go through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
