package triage

import "errors"

var (
	// ErrNoRules is returned when a Triager is built without any rule.
	ErrNoRules = errors.New("triage: at least one rule is required")

	// ErrDuplicateRule is returned when two rules share an ID.
	ErrDuplicateRule = errors.New("triage: duplicate rule id")

	// ErrInvalidParams is returned for unusable scorer parameters.
	ErrInvalidParams = errors.New("triage: invalid parameters")
)
