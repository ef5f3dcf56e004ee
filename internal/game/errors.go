package game

import (
	"errors"
	"fmt"
)

// ErrShortRecord is returned for lines with fewer than three characters.
var ErrShortRecord = errors.New("record shorter than 3 characters")

// Mapping names used in InvalidCharError.
const (
	MappingOpponent = "opponent"
	MappingChoice   = "choice"
	MappingOutcome  = "outcome"
)

// InvalidCharError reports a record character outside a mapping's set.
type InvalidCharError struct {
	Position int
	Char     rune
	Mapping  string
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("illegal %s character %q at position %d", e.Mapping, e.Char, e.Position)
}
