package responsibility

import "errors"

var (
	ErrResponsibilityNotFound = errors.New("responsibility not found")
)
