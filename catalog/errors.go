package catalog

import "errors"

var (
	// ErrNoRules is returned when a catalog has no rules.
	ErrNoRules = errors.New("catalog: at least one rule is required")

	// ErrDuplicateID is returned when two rules or two documents share an ID.
	ErrDuplicateID = errors.New("catalog: duplicate id")

	// ErrRepositoryRequired is returned when a storage repository is not provided.
	ErrRepositoryRequired = errors.New("catalog: repository required")
)
