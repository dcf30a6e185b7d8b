package input

import (
	"fmt"

	"github.com/mutagen-io/gopass"
)

// Secret prompts for a response that is not echoed to the terminal.
// Use it for passwords and API tokens.
//
// Example:
//
//	token, err := input.Secret("API token")
func Secret(message string) (string, error) {
	return readSecret(message, gopass.GetPasswd)
}

// SecretMasked is Secret with each typed character echoed as '*'.
func SecretMasked(message string) (string, error) {
	return readSecret(message, gopass.GetPasswdMasked)
}

func readSecret(message string, getter func() ([]byte, error)) (string, error) {
	fmt.Print(promptStyle.Render(message) + ": ")

	response, err := getter()
	if err != nil {
		return "", &Error{Kind: KindIO, Err: err}
	}
	return string(response), nil
}
