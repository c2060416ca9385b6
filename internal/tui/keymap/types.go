// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per mode so the Update loop only has to map a key
// to a Command.
package keymap

import tea "github.com/charmbracelet/bubbletea"

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal Mode = "normal" // Browsing and adjusting the plan
	ModePeople Mode = "people" // Editing the number of people
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	// Navigation
	CmdNextSection Command = "next_section"
	CmdPrevSection Command = "prev_section"
	CmdJumpSection Command = "jump_section" // 1-3 keys
	CmdCursorUp    Command = "cursor_up"
	CmdCursorDown  Command = "cursor_down"

	// Plan edits
	CmdIncrement  Command = "increment"
	CmdDecrement  Command = "decrement"
	CmdToggleMeal Command = "toggle_meal"
	CmdEditPeople Command = "edit_people"
	CmdReset      Command = "reset"

	// View toggles
	CmdToggleDetails Command = "toggle_details"
	CmdToggleHelp    Command = "toggle_help"

	// Exit
	CmdQuit Command = "quit"
)

// People mode commands
const (
	CmdConfirm Command = "confirm"
	CmdCancel  Command = "cancel"
)

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding. For rune keys, use
	// tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}

	// For special keys (not runes), match the key type directly
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	if kb.KeyType != tea.KeyRunes {
		return kb.KeyType.String()
	}
	return string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	var result []KeyBinding
	for _, binding := range km.GetModeBindings(mode) {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// GetCategories returns all unique categories in a mode's bindings, in
// declaration order.
func (km *Keymap) GetCategories(mode Mode) []string {
	seen := make(map[string]bool)
	var categories []string

	for _, binding := range km.GetModeBindings(mode) {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}
