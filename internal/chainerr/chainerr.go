// Package chainerr defines the sentinel error kinds shared by the chain and
// store packages. Call sites wrap these with context via fmt.Errorf's %w
// verb; callers identify the kind with errors.Is.
package chainerr

import "errors"

var (
	// ErrNotFound is returned when no chain exists at the requested key.
	ErrNotFound = errors.New("bloomchain: not found")

	// ErrAlreadyExists is returned by Reserve when a chain already exists.
	ErrAlreadyExists = errors.New("bloomchain: already exists")

	// ErrInvalidArgument is returned for out-of-range or malformed inputs.
	ErrInvalidArgument = errors.New("bloomchain: invalid argument")

	// ErrCorruptedMetadata is returned when a metadata record fails to
	// decode or fails its invariants.
	ErrCorruptedMetadata = errors.New("bloomchain: corrupted metadata")

	// ErrCorruptedChain is returned when a blob key listed in metadata is
	// missing from the store.
	ErrCorruptedChain = errors.New("bloomchain: corrupted chain")
)
