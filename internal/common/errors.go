// Package common defines sentinel errors shared by the store, the view layer
// and the frontends. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository / store errors.
	ErrorNotFound         = errors.New("not found")
	ErrCorruptData        = errors.New("corrupt persisted data")
	ErrUnsupportedVersion = errors.New("unsupported storage format version")
	ErrPersist            = errors.New("persist failed")

	// View-level errors.
	ErrNoPendingDelete = errors.New("no pending delete request")
)
