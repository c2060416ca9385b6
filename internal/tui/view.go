package tui

import (
	"strings"

	"github.com/Iron-Ham/confplan/internal/tui/keymap"
	"github.com/Iron-Ham/confplan/internal/tui/styles"
	"github.com/Iron-Ham/confplan/internal/tui/view"
	"github.com/Iron-Ham/confplan/internal/util"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "Conference Expense Planner"
	if m.catalog != nil && m.catalog.Name != "" {
		title += " · " + m.catalog.Name
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(m.sections.RenderTabs(m.section, m.store.Totals()))
	b.WriteString("\n")

	if m.showDetails {
		b.WriteString(view.RenderDetails(m.store.Breakdown(), m.money))
	} else {
		b.WriteString(m.sections.RenderSection(m.store, m.section, m.Cursor()))
	}
	b.WriteString("\n")

	if m.mode == keymap.ModePeople {
		b.WriteString(styles.PeopleEditor.Render(m.peopleInput.View()))
		b.WriteString("\n")
	}

	b.WriteString(view.RenderStatusBar(view.StatusBarState{
		Report:         m.budget.Report(),
		BudgetEnabled:  m.budget.Enabled(),
		NumberOfPeople: m.store.NumberOfPeople(),
		Flash:          m.flash,
		FlashIsError:   m.flashIsErr,
	}, m.money))
	b.WriteString("\n")

	b.WriteString(view.RenderHelpBar(m.keymap, m.mode, m.showHelp))

	out := b.String()
	if m.width > 3 {
		lines := strings.Split(out, "\n")
		for i, line := range lines {
			lines[i] = util.TruncateANSI(line, m.width)
		}
		out = strings.Join(lines, "\n")
	}
	return out
}
