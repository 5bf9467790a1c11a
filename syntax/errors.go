package syntax

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrEmptyKeywords = errors.New("keyword list is empty")
var ErrInvalidKeyword = errors.New("invalid keyword")
var ErrDuplicateKeyword = errors.New("duplicate keyword")
var ErrUnknownFragment = errors.New("unknown fragment")
var ErrInvalidPattern = errors.New("invalid pattern")

// A ResolveError reports which entry of a Table could not be turned into a
// compiled Rule.
type ResolveError struct {
	Index int    // Position of the pattern in the table
	ID    string // Fragment id, or the scope name of an inline pattern
	Err   error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("pattern %d (%s): %v", e.Index, e.ID, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
