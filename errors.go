package careguide

import "errors"

var (
	// ErrInvalidConfig is returned when a configuration fails validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrConflictingCatalog is returned when both a catalog file and a catalog
	// database are configured.
	ErrConflictingCatalog = errors.New("catalog_file and catalog_db are mutually exclusive")
)
