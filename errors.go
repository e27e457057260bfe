package radiogo

import (
	"errors"
	"fmt"
)

var (
	// ErrNilQuery is returned when a nil query fingerprint is supplied.
	ErrNilQuery = errors.New("query fingerprint must not be nil")

	// ErrNilLibrary is returned when a nil library is supplied.
	ErrNilLibrary = errors.New("library must not be nil")

	// ErrNilLibraryEntry is returned when a library contains a nil entry.
	ErrNilLibraryEntry = errors.New("library entries must not be nil")

	// ErrEmptyLibrary is returned by FindNearest when the library holds no
	// fingerprints to match against.
	ErrEmptyLibrary = errors.New("library is empty")

	// ErrNilOutput is returned when a caller-supplied output slice pointer
	// is nil.
	ErrNilOutput = errors.New("output slices must not be nil")
)

// ErrInvalidK indicates a neighbor count outside [1, library size].
type ErrInvalidK struct {
	K           int
	LibrarySize int
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid k: %d (library size %d)", e.K, e.LibrarySize)
}
