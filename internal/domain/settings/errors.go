package settings

import "errors"

var (
	ErrSettingsNotFound = errors.New("admin settings not found")
)
