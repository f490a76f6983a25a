package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrAdminRequired      = errors.New("administrator privileges required")
)
