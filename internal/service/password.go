package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is the one-way hashing capability the auth service
// depends on. Injected so tests can swap in a cheaper implementation.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hash string) bool
}

type bcryptHasher struct {
	cost int
}

func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Verify(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
