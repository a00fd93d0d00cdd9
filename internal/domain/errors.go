package domain

import "errors"

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrGroupNotFound = errors.New("group not found")
	ErrUserExists    = errors.New("user already exists")
	ErrInvalidInput  = errors.New("invalid input")
)
