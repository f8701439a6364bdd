package parser

import (
	"errors"
	"fmt"
)

// ErrNoMapping reports a well-formed document without a MAPPING element.
var ErrNoMapping = errors.New("no MAPPING element found")

// FormatError reports input that could not be understood as a mapping
// document: malformed XML, or XML with no MAPPING element. Read failures
// are returned as plain wrapped errors, never as FormatErrors.
type FormatError struct {
	Source string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid mapping document %s: %v", e.Source, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
