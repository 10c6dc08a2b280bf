package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rgalvan/jobtracker-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	userName string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		userName: "Test User",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithUserName sets the display name
func (b *UserBuilder) WithUserName(name string) *UserBuilder {
	b.userName = name
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        domain.NormalizeEmail(b.email),
		PasswordHash: string(hashedPassword),
		UserName:     b.userName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// UserView matches the API user response shape
type UserView struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

// BuildAndLogin registers and logs in via the API. The returned client
// carries the session cookie, so requests made with it are
// authenticated as this user.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, *http.Client) {
	t.Helper()

	registerBody := map[string]string{
		"email":    b.email,
		"password": b.password,
		"userName": b.userName,
	}
	body, _ := json.Marshal(registerBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected register status code: %d", resp.StatusCode)
	}

	var view UserView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	loginBody, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": b.password,
	})
	loginResp, err := client.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(loginBody))
	if err != nil {
		t.Fatalf("failed to login user: %v", err)
	}
	defer loginResp.Body.Close()

	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", loginResp.StatusCode)
	}

	userID, _ := uuid.Parse(view.ID)
	user := &domain.User{
		ID:       userID,
		Email:    view.Email,
		UserName: view.UserName,
	}

	return user, client
}

// ApplicationBuilder creates test job applications with a builder pattern
type ApplicationBuilder struct {
	owner       *domain.User
	companyName string
	jobTitle    string
	status      domain.ApplicationStatus
	dateApplied time.Time
	notes       string
}

// NewApplicationBuilder creates a new ApplicationBuilder with default values
func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		companyName: "Acme Corp",
		jobTitle:    "Software Engineer",
		status:      domain.StatusApplied,
		dateApplied: time.Now(),
	}
}

// WithOwner sets the owning user
func (b *ApplicationBuilder) WithOwner(user *domain.User) *ApplicationBuilder {
	b.owner = user
	return b
}

// WithCompanyName sets the company name
func (b *ApplicationBuilder) WithCompanyName(name string) *ApplicationBuilder {
	b.companyName = name
	return b
}

// WithJobTitle sets the job title
func (b *ApplicationBuilder) WithJobTitle(title string) *ApplicationBuilder {
	b.jobTitle = title
	return b
}

// WithStatus sets the application status
func (b *ApplicationBuilder) WithStatus(status domain.ApplicationStatus) *ApplicationBuilder {
	b.status = status
	return b
}

// WithDateApplied sets the applied date
func (b *ApplicationBuilder) WithDateApplied(date time.Time) *ApplicationBuilder {
	b.dateApplied = date
	return b
}

// WithNotes sets the free-text notes
func (b *ApplicationBuilder) WithNotes(notes string) *ApplicationBuilder {
	b.notes = notes
	return b
}

// Build creates the application in the database
func (b *ApplicationBuilder) Build(t *testing.T, db *gorm.DB) *domain.JobApplication {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}

	app := &domain.JobApplication{
		ID:          uuid.New(),
		UserID:      b.owner.ID,
		CompanyName: b.companyName,
		JobTitle:    b.jobTitle,
		Status:      b.status,
		DateApplied: datatypes.Date(b.dateApplied),
		Notes:       b.notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(app).Error; err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	return app
}
