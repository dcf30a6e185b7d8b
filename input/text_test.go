package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFrom(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultValue string
		expected     string
	}{
		{
			name:         "typed value wins",
			input:        "custom\n",
			defaultValue: "fallback",
			expected:     "custom",
		},
		{
			name:         "empty line returns default",
			input:        "\n",
			defaultValue: "fallback",
			expected:     "fallback",
		},
		{
			name:         "whitespace-only line returns default",
			input:        "   \n",
			defaultValue: "fallback",
			expected:     "fallback",
		},
		{
			name:         "EOF returns default",
			input:        "",
			defaultValue: "fallback",
			expected:     "fallback",
		},
		{
			name:         "value is trimmed",
			input:        "  spaced out  \n",
			defaultValue: "",
			expected:     "spaced out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestReader(tt.input)
			v, err := TextFrom(r, "Value", tt.defaultValue)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestTextFromPrompt(t *testing.T) {
	r, out := newTestReader("x\n")
	_, err := TextFrom(r, "Module path", "github.com/username/myapp")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Module path")
	assert.Contains(t, out.String(), "(github.com/username/myapp)")

	// No default, no hint.
	r, out = newTestReader("x\n")
	_, err = TextFrom(r, "Module path", "")
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "(")
}

func TestConfirmFrom(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		expected   bool
	}{
		{name: "y", input: "y\n", expected: true},
		{name: "yes", input: "yes\n", expected: true},
		{name: "YES", input: "YES\n", expected: true},
		{name: "n", input: "n\n", defaultYes: true, expected: false},
		{name: "anything else is no", input: "maybe\n", defaultYes: true, expected: false},
		{name: "empty takes default yes", input: "\n", defaultYes: true, expected: true},
		{name: "empty takes default no", input: "\n", expected: false},
		{name: "EOF takes default", input: "", defaultYes: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestReader(tt.input)
			v, err := ConfirmFrom(r, "Continue?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestConfirmFromHint(t *testing.T) {
	r, out := newTestReader("y\n")
	_, err := ConfirmFrom(r, "Continue?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Y/n]")

	r, out = newTestReader("y\n")
	_, err = ConfirmFrom(r, "Continue?", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[y/N]")
}
