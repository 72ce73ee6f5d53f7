package session

import "errors"

var (
	// ErrDuplicateTag indicates a tag rename target already names another tag.
	ErrDuplicateTag = errors.New("duplicate tag")

	// ErrNotFound indicates the operation referenced an id or tag absent from
	// the canonical state. The operation is a no-op; this is the signal.
	ErrNotFound = errors.New("not found")

	// ErrExternalFailure indicates the library store rejected a persistence
	// call. The optimistic local mutation is NOT rolled back.
	ErrExternalFailure = errors.New("library store failure")
)
