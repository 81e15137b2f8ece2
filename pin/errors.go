package pin

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedImage covers MZ magic mismatch, truncated images and
	// out-of-range reads during extraction.
	ErrMalformedImage = errors.New("pin: malformed executable image")

	// ErrIncompatible means an extraction assertion failed: the binary is not
	// one of the supported table executables.
	ErrIncompatible = errors.New("pin: incompatible binary")
)

// incompatible tags an extraction failure with the table and extractor so the
// load error names the culprit exactly once.
func incompatible(table TableID, extractor string) error {
	return fmt.Errorf("%w: table %d: %s", ErrIncompatible, int(table)+1, extractor)
}
