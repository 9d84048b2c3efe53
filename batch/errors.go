package batch

import "errors"

var (
	// ErrAssessorRequired is returned when an assessor is not provided.
	ErrAssessorRequired = errors.New("assessor required")

	// ErrSubmitFailed is returned when a task cannot be handed to the worker pool.
	ErrSubmitFailed = errors.New("failed to submit batch task")
)
