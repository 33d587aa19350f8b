package model

import "fmt"

// ValidationError signals malformed input, recoverable by the caller
// correcting the offending field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

var _ error = &ValidationError{}

// PolicyError signals a status transition disallowed by the task
// lifecycle, regardless of data validity.
type PolicyError struct {
	From TaskStatus
	To   TaskStatus
}

// Error implements error.
func (e *PolicyError) Error() string {
	if e.From == TaskStatusCreated && e.To == TaskStatusCompleted {
		return "to complete this task, please move it to in progress first"
	}

	return fmt.Sprintf("task can not move from %s to %s", e.From, e.To)
}

var _ error = &PolicyError{}
