package input

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)

// Select shows an arrow-key menu and returns the chosen option.
// Returns ErrAborted if the user cancels with esc, q, or ctrl+c.
//
// Example:
//
//	db, err := input.Select("Pick a database", []string{"postgres", "mysql", "sqlite"})
func Select(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}

	final, err := tea.NewProgram(newSelectModel(message, options)).Run()
	if err != nil {
		return "", &Error{Kind: KindIO, Err: err}
	}

	result := final.(selectModel)
	if !result.chosen {
		return "", ErrAborted
	}
	return result.options[result.cursor], nil
}

// selectModel is the bubbletea model for the menu
type selectModel struct {
	message string
	options []string
	cursor  int
	chosen  bool
	done    bool
}

func newSelectModel(message string, options []string) selectModel {
	return selectModel{
		message: message,
		options: options,
	}
}

// Init initializes the menu model
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.done = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}

		case "enter":
			m.chosen = true
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu
func (m selectModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(promptStyle.Render(m.message) + "\n")
	b.WriteString(hintStyle.Render("  [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, option := range m.options {
		if m.cursor == i {
			b.WriteString("  " + selectedStyle.Render("> "+option) + "\n")
		} else {
			b.WriteString("    " + option + "\n")
		}
	}

	return b.String()
}
