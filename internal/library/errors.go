package library

import "errors"

var (
	// ErrNotFound indicates the video or tag is not in the catalog.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates the catalog already has the entry: a video at
	// the same path, or a tag rename onto an existing name.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrConstraint indicates the database rejected the write, e.g. a rating
	// outside 0-5 or a tag link to a missing video.
	ErrConstraint = errors.New("constraint violation")
)
