// Package input reads and parses interactive terminal input.
//
// # Overview
//
// The core of the package is one operation: print an optional prompt,
// read exactly one line, strip its terminator, and parse it into a
// caller-chosen type. Every failure is reported as a single *Error value
// with one of three kinds: KindIO, KindParse, or KindEOF. The package
// never retries; re-prompting is the caller's decision.
//
// # Usage
//
// The stdin-bound entry points cover most call sites:
//
//	import "github.com/Phosphorus-M/input-lib/input"
//
//	// No prompt
//	line, err := input.Read(input.String)
//
//	// Prompt on the same line, parsed as an integer
//	age, err := input.Prompt(input.Uint[uint8], "Enter your age: ")
//
//	// Prompt on its own line
//	color, err := input.Promptln(input.String, "What's your favorite color?")
//
// Any func(string) (T, error) is a valid parser, so custom types plug in
// directly. For explicit streams (tests, embedded use), build a Reader:
//
//	r := input.NewReader(os.Stdin, os.Stdout)
//	n, err := input.ReadFrom(r, "Count: ", input.Inline, input.Int[int])
//
// # Error Handling
//
// Match on the error kind to decide user-facing behavior:
//
//	if errors.Is(err, input.ErrEOF) {
//	    // graceful exit: stdin closed
//	}
//
//	var inputErr *input.Error
//	if errors.As(err, &inputErr) && inputErr.Kind == input.KindParse {
//	    // bad input: ask again
//	}
//
// # Higher-Level Prompts
//
// Beyond the core, the package offers styled conveniences: Text (default
// values), Confirm (yes/no), Select (arrow-key menu), Edit (single-line
// editor), and Secret/SecretMasked (no-echo passwords). These require a
// terminal for the interactive variants; use IsTerminal to fall back to
// defaults in pipes and CI.
//
// # Styling
//
// Prompts rendered by the conveniences use lipgloss: messages in cyan
// and bold, hints (defaults, [Y/n], key help) in gray. The core ReadLine
// treats prompt text as opaque and applies no styling.
package input
