package tui

import (
	"fmt"

	"github.com/Iron-Ham/confplan/internal/budget"
	"github.com/Iron-Ham/confplan/internal/event"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/tui/keymap"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeypress processes keyboard input
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == keymap.ModePeople {
		return m.handlePeopleInput(msg)
	}

	cmd, ok := m.keymap.GetBinding(msg, keymap.ModeNormal)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdNextSection:
		m.focusSection(m.sectionOffset(1))
	case keymap.CmdPrevSection:
		m.focusSection(m.sectionOffset(-1))
	case keymap.CmdJumpSection:
		if len(msg.Runes) == 1 {
			idx := int(msg.Runes[0] - '1')
			if sections := planner.Sections(); idx >= 0 && idx < len(sections) {
				m.focusSection(sections[idx])
			}
		}

	case keymap.CmdCursorUp:
		m.moveCursor(-1)
	case keymap.CmdCursorDown:
		m.moveCursor(1)

	case keymap.CmdIncrement:
		m.adjustQuantity(1)
	case keymap.CmdDecrement:
		m.adjustQuantity(-1)
	case keymap.CmdToggleMeal:
		if m.section == planner.SectionMeals && m.Cursor() < m.store.Len(planner.SectionMeals) {
			m.store.ToggleMeal(m.Cursor())
			m.afterPlanChange("toggle_meal", planner.SectionMeals)
		}

	case keymap.CmdEditPeople:
		m.mode = keymap.ModePeople
		m.peopleInput.SetValue(m.peopleInputValue())
		m.peopleInput.CursorEnd()
		focus := m.peopleInput.Focus()
		return m, focus

	case keymap.CmdReset:
		m.store.Reset()
		m.ClampCursors()
		m.SetInfoMessage("Plan reset")
		m.afterPlanChange("reset", "")

	case keymap.CmdToggleDetails:
		m.showDetails = !m.showDetails
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
	}

	flash := m.flashCmd()
	return m, flash
}

// handlePeopleInput handles keys while the people editor is open. Keys
// without a binding go to the text input.
func (m Model) handlePeopleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(msg, keymap.ModePeople)
	if !ok {
		var inputCmd tea.Cmd
		m.peopleInput, inputCmd = m.peopleInput.Update(msg)
		return m, inputCmd
	}

	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	case keymap.CmdConfirm:
		n := m.store.SetNumberOfPeopleInput(m.peopleInput.Value())
		m.closePeopleEditor()
		m.SetInfoMessage(fmt.Sprintf("Number of people set to %d", n))
		m.afterPlanChange("set_people", "")
	case keymap.CmdCancel:
		m.closePeopleEditor()
	}
	flash := m.flashCmd()
	return m, flash
}

func (m *Model) closePeopleEditor() {
	m.mode = keymap.ModeNormal
	m.peopleInput.Blur()
	m.peopleInput.SetValue("")
}

// focusSection switches the visible section. Leaving the current section
// closes the cost breakdown. Unknown sections are ignored.
func (m *Model) focusSection(section planner.Section) {
	if !section.Valid() || section == m.section {
		return
	}
	m.section = section
	m.showDetails = false
	m.ClampCursors()
}

func (m Model) sectionOffset(delta int) planner.Section {
	sections := planner.Sections()
	idx := 0
	for i, s := range sections {
		if s == m.section {
			idx = i
			break
		}
	}
	n := len(sections)
	return sections[((idx+delta)%n+n)%n]
}

func (m *Model) moveCursor(delta int) {
	n := m.store.Len(m.section)
	if n == 0 {
		return
	}
	next := m.cursors[m.section] + delta
	m.cursors[m.section] = max(0, min(next, n-1))
}

// adjustQuantity applies +1 or -1 to the item under the cursor. Meals are
// toggled instead: increment selects, decrement deselects. Adjustments the
// store absorbs publish nothing.
func (m *Model) adjustQuantity(delta int) {
	i := m.Cursor()
	switch m.section {
	case planner.SectionVenue:
		before := quantityAt(m.store.Venue(), i)
		if delta > 0 {
			if m.store.RemainingVenue(i) == 0 && m.store.Len(planner.SectionVenue) > i {
				m.SetErrorMessage(fmt.Sprintf("At most %d can be booked", m.store.VenueLimit(i)))
				return
			}
			m.store.IncrementVenue(i)
		} else {
			m.store.DecrementVenue(i)
		}
		if quantityAt(m.store.Venue(), i) == before {
			return
		}
	case planner.SectionAV:
		before := quantityAt(m.store.Addons(), i)
		if delta > 0 {
			m.store.IncrementAddon(i)
		} else {
			m.store.DecrementAddon(i)
		}
		if quantityAt(m.store.Addons(), i) == before {
			return
		}
	case planner.SectionMeals:
		meals := m.store.Meals()
		if i >= len(meals) || meals[i].Selected == (delta > 0) {
			return
		}
		m.store.ToggleMeal(i)
	}

	action := "increment"
	if delta < 0 {
		action = "decrement"
	}
	m.afterPlanChange(action, m.section)
}

// quantityAt returns the quantity at i, or -1 when i is out of range.
func quantityAt(items []planner.LineItem, i int) int {
	if i < 0 || i >= len(items) {
		return -1
	}
	return items[i].Quantity
}

// afterPlanChange publishes the new plan state and re-checks the budget.
// section is empty for changes that are not tied to one section.
func (m *Model) afterPlanChange(action string, section planner.Section) {
	m.events.Publish(event.NewPlanChangedEvent(action, section, m.store.Breakdown()))

	status := m.budget.Check()
	if status == m.budgetStatus {
		return
	}
	previous := m.budgetStatus
	m.budgetStatus = status

	report := m.budget.Report()
	m.events.Publish(event.NewBudgetStatusChangedEvent(previous, status, report))
	switch status {
	case budget.StatusOverLimit:
		m.SetErrorMessage(fmt.Sprintf("Over budget: %s of %s",
			m.money.Format(report.GrandTotal), m.money.Format(report.Limit)))
	case budget.StatusWarning:
		m.SetErrorMessage(fmt.Sprintf("Approaching budget: %s", m.money.Format(report.GrandTotal)))
	case budget.StatusOK:
		m.SetInfoMessage("Back within budget")
	}
}
