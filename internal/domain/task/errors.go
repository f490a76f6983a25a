package task

import "errors"

var (
	ErrTemplateNotFound        = errors.New("task template not found")
	ErrTemplateInactive        = errors.New("task template is not active")
	ErrAssignmentNotFound      = errors.New("task assignment not found")
	ErrInvalidStatusTransition = errors.New("a completed task cannot return to an open status")
)
