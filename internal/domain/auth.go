package domain

import (
	"errors"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenInvalid       = errors.New("token is invalid")
)

type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
