package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUsernameExists   = errors.New("username already taken")
	ErrEmailExists      = errors.New("email already registered")
	ErrInvalidType      = errors.New("employee type must be Admin, Managerial or Employee")
	ErrCannotDeleteSelf = errors.New("cannot delete your own employee record")
)
