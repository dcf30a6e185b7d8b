// Package output provides styled terminal output for CLI programs.
//
// # Overview
//
// The example programs shipped with input-lib use this package for
// consistent terminal output; it pairs with the input package's prompt
// styling.
//
// # Usage
//
// Import the package and call the output functions:
//
//	import "github.com/Phosphorus-M/input-lib/output"
//
//	output.Success("Created project: myapp")
//	output.Info("Next steps:")
//	output.Step("cd myapp")
//	output.Error("Something went wrong")
//
// # Verbose Mode
//
// Enable verbose output for debugging:
//
//	output.SetVerbose(true)
//	output.Verbose("This only prints in verbose mode")
//
// # Styling
//
// The package uses lipgloss for terminal styling, but abstracts these
// details away from callers:
//
//   - Success: ✓ green bold
//   - Error: ✗ red bold
//   - Info: • cyan
//   - Step: indented gray
//   - Verbose: · gray (when enabled)
package output
