package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid employee code or password")
	ErrInvalidToken       = errors.New("Invalid or missing token")
	ErrTokenExpired       = errors.New("Token expired")
)
