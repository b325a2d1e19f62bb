package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token related errors
	ErrTokenExpired = errors.New("authentication expired")
	ErrTokenInvalid = errors.New("invalid token")

	// Permission/Access related errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Catalog related errors
	ErrClothingNotFound = errors.New("clothing item not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
