package models

import "errors"

// Domain conditions callers are expected to branch on. Handlers map these to
// HTTP statuses with errors.Is; anything else is treated as an internal error.
var (
	ErrPaperNotFound  = errors.New("paper not found")
	ErrAuthorNotFound = errors.New("author not found")

	// ErrSoleAuthorPaper blocks author deletion while some paper would be
	// left with no authors. The text is part of the API contract.
	ErrSoleAuthorPaper = errors.New("Cannot delete author: they are the only author of one or more papers")
)
