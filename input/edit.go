package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Edit opens a single-line interactive editor with cursor movement and a
// gray placeholder, and returns the submitted text. Unlike ReadLine it
// requires a terminal; prefer Text when input may come from a pipe.
// Returns ErrAborted if the user cancels with esc or ctrl+c.
//
// Example:
//
//	desc, err := input.Edit("Description", "A short description")
func Edit(message, placeholder string) (string, error) {
	final, err := tea.NewProgram(newEditModel(message, placeholder)).Run()
	if err != nil {
		return "", &Error{Kind: KindIO, Err: err}
	}

	result := final.(editModel)
	if result.aborted {
		return "", ErrAborted
	}
	return result.text.Value(), nil
}

// editModel is the bubbletea model for the line editor
type editModel struct {
	message string
	text    textinput.Model
	done    bool
	aborted bool
}

func newEditModel(message, placeholder string) editModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	return editModel{
		message: message,
		text:    ti,
	}
}

// Init starts the cursor blinking
func (m editModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keyboard input
func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			m.done = true
			return m, tea.Quit

		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	return m, cmd
}

// View renders the prompt and the editor
func (m editModel) View() string {
	if m.done {
		return ""
	}
	return promptStyle.Render(m.message) + " " + m.text.View() + "\n"
}
