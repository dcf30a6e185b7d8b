package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Style controls where user input appears relative to the prompt.
type Style uint8

const (
	// Inline writes the prompt without a trailing newline, so the user
	// types on the same visual line.
	Inline Style = iota
	// OwnLine writes the prompt followed by a newline, so the user types
	// on the next line.
	OwnLine
)

// Parser converts one line of input into a value of type T.
// The built-in parsers (String, Int, Uint, Float, Bool, Unmarshal) cover
// common targets; any func(string) (T, error) works.
type Parser[T any] func(string) (T, error)

// flusher is satisfied by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Reader performs prompt/read/parse cycles against a fixed pair of
// streams. It holds no other state; every call is independent.
//
// A Reader is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader creates a Reader that reads lines from in and writes prompts
// to out.
//
// Example:
//
//	r := input.NewReader(os.Stdin, os.Stdout)
//	name, err := input.ReadFrom(r, "Name: ", input.Inline, input.String)
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// std is the process-wide reader used by Read, Prompt, and Promptln.
// Sharing one bufio.Reader keeps buffered stdin bytes from being lost
// between calls.
var std = NewReader(os.Stdin, os.Stdout)

// ReadLine writes the prompt (when non-empty), reads exactly one line,
// and returns it with trailing '\r' and '\n' bytes stripped. Interior
// whitespace is preserved.
//
// Failures are reported as *Error:
//   - KindIO when writing or flushing the prompt fails, or the read fails
//   - KindEOF when the stream was already exhausted (zero bytes read);
//     an empty line that still had a terminator returns "" with no error
func (r *Reader) ReadLine(prompt string, style Style) (string, error) {
	if prompt != "" {
		if err := r.writePrompt(prompt, style); err != nil {
			return "", &Error{Kind: KindIO, Err: err}
		}
	}

	// A stream that ends without a terminator still yields its remaining
	// bytes as a line, so io.EOF with data is not an error here.
	line, err := r.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", &Error{Kind: KindIO, Err: err}
	}
	if len(line) == 0 {
		return "", &Error{Kind: KindEOF}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// writePrompt writes the prompt in the given style and flushes the output
// stream if it is buffered, so the prompt is visible before the blocking
// read begins.
func (r *Reader) writePrompt(prompt string, style Style) error {
	var err error
	if style == OwnLine {
		_, err = fmt.Fprintln(r.out, prompt)
	} else {
		_, err = fmt.Fprint(r.out, prompt)
	}
	if err != nil {
		return err
	}

	if f, ok := r.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// ReadFrom reads one line via r and parses it into T. A rejected line is
// reported as *Error with KindParse, wrapping the parser's own error
// unchanged; read failures pass through from ReadLine.
func ReadFrom[T any](r *Reader, prompt string, style Style, parse Parser[T]) (T, error) {
	var zero T

	line, err := r.ReadLine(prompt, style)
	if err != nil {
		return zero, err
	}

	v, err := parse(line)
	if err != nil {
		return zero, &Error{Kind: KindParse, Err: err}
	}
	return v, nil
}

// Read reads one line from stdin with no prompt.
//
// Example:
//
//	line, err := input.Read(input.String)
func Read[T any](parse Parser[T]) (T, error) {
	return ReadFrom(std, "", Inline, parse)
}

// Prompt prints a formatted prompt to stdout (no trailing newline) and
// reads one line from stdin.
//
// Example:
//
//	age, err := input.Prompt(input.Uint[uint8], "Enter %s's age: ", user)
func Prompt[T any](parse Parser[T], format string, args ...any) (T, error) {
	return ReadFrom(std, fmt.Sprintf(format, args...), Inline, parse)
}

// Promptln prints a formatted prompt on its own line and reads one line
// from stdin.
//
// Example:
//
//	color, err := input.Promptln(input.String, "What's your favorite color?")
func Promptln[T any](parse Parser[T], format string, args ...any) (T, error) {
	return ReadFrom(std, fmt.Sprintf(format, args...), OwnLine, parse)
}
