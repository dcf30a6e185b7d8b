package input

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether stdin is attached to a terminal. Use it to
// skip interactive prompts when input comes from a pipe or CI:
//
//	if input.IsTerminal() {
//	    name, err = input.Text("Project name", "myapp")
//	}
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
