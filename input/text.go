package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Text asks for a line of text with an optional default value. Pressing
// Enter without typing anything returns the default, as does end of
// input, so piped and CI runs fall back to defaults instead of failing.
//
// Example:
//
//	modulePath, err := input.Text("Module path", "github.com/username/myapp")
//	// Displays: Module path (github.com/username/myapp): _
func Text(message, defaultValue string) (string, error) {
	return TextFrom(std, message, defaultValue)
}

// TextFrom is Text against an explicit Reader.
func TextFrom(r *Reader, message, defaultValue string) (string, error) {
	prompt := promptStyle.Render(message)
	if defaultValue != "" {
		prompt += " " + hintStyle.Render(fmt.Sprintf("(%s)", defaultValue))
	}
	prompt += ": "

	line, err := r.ReadLine(prompt, Inline)
	if err != nil {
		if errors.Is(err, ErrEOF) {
			return defaultValue, nil
		}
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Confirm asks a yes/no question. Answers y/Y/yes/YES count as yes,
// everything else as no; an empty line or end of input returns the
// default.
//
// Example:
//
//	ok, err := input.Confirm("Run go mod tidy?", true)
//	// Displays: Run go mod tidy? [Y/n]: _
func Confirm(message string, defaultYes bool) (bool, error) {
	return ConfirmFrom(std, message, defaultYes)
}

// ConfirmFrom is Confirm against an explicit Reader.
func ConfirmFrom(r *Reader, message string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	prompt := promptStyle.Render(message) + " " + hintStyle.Render(hint) + ": "

	line, err := r.ReadLine(prompt, Inline)
	if err != nil {
		if errors.Is(err, ErrEOF) {
			return defaultYes, nil
		}
		return false, err
	}

	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return defaultYes, nil
	}
	return line == "y" || line == "yes", nil
}
