package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the planner's key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
			ModePeople: defaultPeopleBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Section navigation
			{KeyType: tea.KeyTab, Command: CmdNextSection, Description: "Next section", Category: "Navigation"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevSection, Description: "Previous section", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: '1', Command: CmdJumpSection, Description: "Venue", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: '2', Command: CmdJumpSection, Description: "Add-ons", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: '3', Command: CmdJumpSection, Description: "Meals", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Up", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Up", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Down", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Down", Category: "Navigation"},

			// Plan edits
			{KeyType: tea.KeyRunes, Rune: '+', Command: CmdIncrement, Description: "Add one", Category: "Plan"},
			{KeyType: tea.KeyRunes, Rune: '=', Command: CmdIncrement, Description: "Add one", Category: "Plan"},
			{KeyType: tea.KeyRight, Command: CmdIncrement, Description: "Add one", Category: "Plan"},
			{KeyType: tea.KeyRunes, Rune: '-', Command: CmdDecrement, Description: "Remove one", Category: "Plan"},
			{KeyType: tea.KeyLeft, Command: CmdDecrement, Description: "Remove one", Category: "Plan"},
			{KeyType: tea.KeySpace, Command: CmdToggleMeal, Description: "Toggle meal", Category: "Plan"},
			{KeyType: tea.KeyEnter, Command: CmdToggleMeal, Description: "Toggle meal", Category: "Plan"},
			{KeyType: tea.KeyRunes, Rune: 'p', Command: CmdEditPeople, Description: "Set people", Category: "Plan"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdReset, Description: "Reset plan", Category: "Plan"},

			// View
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdToggleDetails, Description: "Details", Category: "View"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Help", Category: "View"},

			// Exit
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "View"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "View"},
		},
	}
}

func defaultPeopleBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModePeople,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Apply", Category: "People"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel", Category: "People"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "People"},
		},
	}
}
