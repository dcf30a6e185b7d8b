package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the program when its --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message with a green check mark.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Created project: myapp")
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints an error message with a red cross.
// Use this for failures that need user attention.
//
// Example:
//
//	output.Error("Failed to parse the input")
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
//
// Example:
//
//	output.Info("End of input reached")
func Info(msg string) {
	fmt.Println(infoStyle.Render("• " + msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("language: Go")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a gray debug message only if verbose mode is enabled.
//
// Example:
//
//	output.Verbose("read 6 bytes from stdin")
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
