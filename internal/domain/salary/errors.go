package salary

import "errors"

var (
	ErrUnknownPolicy = errors.New("unknown salary policy")
)
