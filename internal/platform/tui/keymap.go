package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction is what a key press means to the host.
type KeyAction int

const (
	KeyNone       KeyAction = iota
	KeyQuit                 // Ctrl+C anywhere, Q outside the name prompt
	KeySubmit               // Enter in the name prompt
	KeyScreenshot           // Ctrl+S
	KeyEdit                 // Any other key while the name prompt is open
)

// InputMapper translates Bubble Tea input messages to host actions.
// Gameplay is mouse only; the keyboard quits, saves screenshots and edits
// the player's name.
type InputMapper struct{}

// NewInputMapper creates a new mapper with the default bindings.
func NewInputMapper() *InputMapper {
	return &InputMapper{}
}

// MapKey translates a key message. prompting is true while the name
// prompt owns the keyboard.
func (im *InputMapper) MapKey(msg tea.KeyMsg, prompting bool) KeyAction {
	switch msg.String() {
	case "ctrl+c":
		return KeyQuit
	case "ctrl+s":
		return KeyScreenshot
	}

	if prompting {
		if msg.Type == tea.KeyEnter {
			return KeySubmit
		}
		return KeyEdit
	}

	if msg.String() == "q" {
		return KeyQuit
	}
	return KeyNone
}

// MapMouse returns the cell of a left-button press.
func (im *InputMapper) MapMouse(msg tea.MouseMsg) (x, y int, ok bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return 0, 0, false
	}
	return msg.X, msg.Y, true
}
