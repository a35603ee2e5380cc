package models

import "errors"

var (
	// Not-found conditions, surfaced as 404.
	ErrPaperNotFound  = errors.New("Paper not found")
	ErrAuthorNotFound = errors.New("Author not found")

	// Constraint violations, surfaced as 409.
	ErrSoleAuthor = errors.New("Cannot delete author: they are the only author of one or more papers")

	// Query/path validation, surfaced as 400.
	ErrInvalidQuery = errors.New("Invalid query parameter format")
	ErrInvalidID    = errors.New("Invalid ID format")
)
