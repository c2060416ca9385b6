package view

import (
	"strings"

	"github.com/Iron-Ham/confplan/internal/tui/keymap"
	"github.com/Iron-Ham/confplan/internal/tui/styles"
)

// compactCommands are the hints shown when full help is off.
var compactCommands = []keymap.Command{
	keymap.CmdNextSection,
	keymap.CmdIncrement,
	keymap.CmdDecrement,
	keymap.CmdToggleMeal,
	keymap.CmdEditPeople,
	keymap.CmdToggleDetails,
	keymap.CmdReset,
	keymap.CmdToggleHelp,
	keymap.CmdQuit,
}

// RenderHelpBar renders key hints for mode. With full set, every binding is
// listed grouped by category; otherwise one hint per common command.
func RenderHelpBar(km *keymap.Keymap, mode keymap.Mode, full bool) string {
	if km == nil {
		return ""
	}

	if mode != keymap.ModeNormal || !full {
		commands := compactCommands
		if mode != keymap.ModeNormal {
			commands = nil
			for _, b := range km.GetModeBindings(mode) {
				commands = append(commands, b.Command)
			}
		}
		return styles.HelpBar.Render(strings.Join(hints(km, mode, commands), "  "))
	}

	var lines []string
	for _, category := range km.GetCategories(mode) {
		var parts []string
		seen := make(map[keymap.Command]bool)
		for _, b := range km.GetModeBindings(mode) {
			if b.Category != category || seen[b.Command] {
				continue
			}
			seen[b.Command] = true
			parts = append(parts, hint(km, mode, b.Command))
		}
		lines = append(lines, styles.Primary.Render(category+":")+" "+strings.Join(parts, "  "))
	}
	return styles.HelpBar.Render(strings.Join(lines, "\n"))
}

func hints(km *keymap.Keymap, mode keymap.Mode, commands []keymap.Command) []string {
	var out []string
	seen := make(map[keymap.Command]bool)
	for _, cmd := range commands {
		if seen[cmd] {
			continue
		}
		seen[cmd] = true
		if h := hint(km, mode, cmd); h != "" {
			out = append(out, h)
		}
	}
	return out
}

// hint renders "[k1/k2] description" for every key bound to cmd.
func hint(km *keymap.Keymap, mode keymap.Mode, cmd keymap.Command) string {
	bindings := km.GetBindingsForCommand(cmd, mode)
	if len(bindings) == 0 {
		return ""
	}
	keys := make([]string, 0, len(bindings))
	for _, b := range bindings {
		keys = append(keys, b.String())
	}
	desc := bindings[0].Description
	if cmd == keymap.CmdJumpSection {
		desc = "jump"
	}
	return styles.HelpKey.Render("["+strings.Join(keys, "/")+"]") + " " + strings.ToLower(desc)
}
