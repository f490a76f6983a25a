package attendance

import "errors"

// Attendance domain errors
var (
	ErrNoActiveSession = errors.New("no active check-in found")
)
