// Package apperr defines the sentinel errors business code returns so that
// handlers can map each failure to its HTTP status without the store layer
// knowing anything about transports.
package apperr

import "errors"

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCourseFull means the course is at capacity.
	ErrCourseFull = errors.New("course is full")
	// ErrAlreadyEnrolled means an enrollment row already exists for the
	// (user, course) pair, whatever its status.
	ErrAlreadyEnrolled = errors.New("already enrolled")
)
