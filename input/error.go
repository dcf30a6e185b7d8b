package input

import (
	"errors"
	"fmt"
)

// Kind identifies which of the three failure cases a read produced.
type Kind uint8

const (
	// KindIO reports a failure while writing the prompt, flushing it, or
	// reading from the input stream.
	KindIO Kind = iota
	// KindParse reports a line that was read successfully but rejected by
	// the parser.
	KindParse
	// KindEOF reports an input stream that was exhausted before any bytes
	// of a new line could be read.
	KindEOF
)

// ErrEOF matches errors caused by an exhausted input stream.
//
// Example:
//
//	name, err := input.Read(input.String)
//	if errors.Is(err, input.ErrEOF) {
//	    // stdin was closed; treat as a graceful exit
//	}
var ErrEOF = errors.New("EOF encountered")

// ErrAborted is returned when the user cancels an interactive component
// (Select, Edit) with esc or ctrl+c.
var ErrAborted = errors.New("input aborted")

// Error is the unified failure value for a read. Exactly one Kind is set
// per instance; Err carries the underlying cause (nil for KindEOF).
//
// Callers that need to branch on the failure case can use errors.As:
//
//	var inputErr *input.Error
//	if errors.As(err, &inputErr) && inputErr.Kind == input.KindParse {
//	    // re-prompt
//	}
type Error struct {
	Kind Kind
	Err  error
}

// Error formats the failure as a human-readable message.
func (e *Error) Error() string {
	switch e.Kind {
	case KindParse:
		return fmt.Sprintf("Parse error: %v", e.Err)
	case KindEOF:
		return "EOF encountered"
	default:
		return fmt.Sprintf("I/O error: %v", e.Err)
	}
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrEOF) match end-of-stream failures.
func (e *Error) Is(target error) bool {
	return target == ErrEOF && e.Kind == KindEOF
}
