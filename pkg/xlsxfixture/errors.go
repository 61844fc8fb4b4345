package xlsxfixture

import (
	"errors"
	"fmt"
)

// Error kinds. A FixtureError unwraps to exactly one of these.
var (
	// ErrEnvironment indicates the random source or the clock is unavailable.
	ErrEnvironment = errors.New("environment unavailable")
	// ErrIO indicates an output file could not be written.
	ErrIO = errors.New("i/o failure")
	// ErrSerialization indicates the spreadsheet codec rejected a value.
	ErrSerialization = errors.New("value not representable")
)

// ErrSchemaMismatch is returned by Verify when a workbook does not have the expected structure.
var ErrSchemaMismatch = errors.New("schema mismatch")

// FixtureError represents a failure while generating or writing fixtures.
type FixtureError struct {
	Kind  error
	Op    string // "seed", "clock", "write", "save", "close", "csv"
	Path  string
	Sheet string
	Err   error
}

func (e *FixtureError) Error() string {
	msg := e.Kind.Error() + ": " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Sheet != "" {
		msg += fmt.Sprintf(" (sheet %q)", e.Sheet)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *FixtureError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func environmentError(op string, err error) *FixtureError {
	return &FixtureError{Kind: ErrEnvironment, Op: op, Err: err}
}

func ioError(op, path string, err error) *FixtureError {
	return &FixtureError{Kind: ErrIO, Op: op, Path: path, Err: err}
}

func serializationError(path, sheet string, err error) *FixtureError {
	return &FixtureError{Kind: ErrSerialization, Op: "write", Path: path, Sheet: sheet, Err: err}
}
