package domain

import "errors"

// Auth errors
var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrUserNotFound       = errors.New("user not found")
)

// Application errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrNotOwner            = errors.New("you do not own this application")
	ErrInvalidStatus       = errors.New("invalid application status")
)
