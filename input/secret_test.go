package input

import (
	"testing"
)

// Note: gopass reads directly from the controlling terminal, so Secret
// and SecretMasked require manual testing in a real terminal.

func TestSecret_Documentation(t *testing.T) {
	t.Skip("Manual testing required - run: go run examples/survey/main.go")

	// Example usage for documentation:
	// token, err := Secret("API token")
	// if err != nil { ... }
}
