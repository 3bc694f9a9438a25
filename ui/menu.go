package ui

import (
	"github.com/brunoczim/thedes/input"
	"github.com/brunoczim/thedes/statemachine"
	"github.com/brunoczim/thedes/tile"
)

// MenuItem is a single selectable row.
type MenuItem struct {
	Label string
}

// MenuOutcome is the reason a menu run ended.
type MenuOutcome uint8

const (
	MenuRunning MenuOutcome = iota
	MenuSelected
	MenuCancelled
)

// IsFinal reports whether the outcome ends the menu's run.
func (o MenuOutcome) IsFinal() bool {
	return o != MenuRunning
}

// MenuArgs is the per-tick input handed to a menu's transition.
type MenuArgs struct {
	Events []input.Event
}

// menuResources holds the menu's mutable selection state between ticks.
type menuResources struct {
	items  []MenuItem
	cursor int
}

// Transition advances the cursor on Up/Down, and finalizes on Enter or
// Esc. Any other key is ignored.
func (m *menuResources) Transition(state MenuOutcome, args MenuArgs) (MenuOutcome, error) {
	for _, ev := range args.Events {
		if ev.Kind != input.EventKey {
			continue
		}
		switch ev.Key.MainKey {
		case input.Up:
			if m.cursor > 0 {
				m.cursor--
			}
		case input.Down:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case input.Enter:
			return MenuSelected, nil
		case input.Esc:
			return MenuCancelled, nil
		}
	}
	return state, nil
}

// Menu is a cancellable list selection widget. Draw always starts at the
// first item; the list does not scroll, so items past the region's last
// row are not shown.
type Menu struct {
	machine *statemachine.StateMachine[MenuArgs, MenuOutcome, *menuResources]
}

// NewMenu builds a menu over items, starting with the first item focused.
func NewMenu(items []MenuItem) *Menu {
	res := &menuResources{items: items}
	return &Menu{
		machine: statemachine.New[MenuArgs, MenuOutcome, *menuResources](res, MenuRunning),
	}
}

// OnTick applies one tick's events, returning true once the menu has
// settled on an outcome.
func (m *Menu) OnTick(events []input.Event) (bool, error) {
	return m.machine.OnTick(MenuArgs{Events: events})
}

// Outcome reports why the menu's run ended, or MenuRunning if it hasn't.
func (m *Menu) Outcome() MenuOutcome {
	return m.machine.State()
}

// Selected returns the focused item and true, if the menu ended with
// MenuSelected.
func (m *Menu) Selected() (MenuItem, bool) {
	res := m.machine.Resources()
	if m.machine.State() != MenuSelected || res.cursor < 0 || res.cursor >= len(res.items) {
		return MenuItem{}, false
	}
	return res.items[res.cursor], true
}

// MenuStyle configures a menu's colors.
type MenuStyle struct {
	Item   tile.ColorPair
	Cursor tile.ColorPair
}

// Draw renders the menu's items into r, one per row, highlighting the
// focused row with style.Cursor.
func (m *Menu) Draw(r Region, style MenuStyle) {
	res := m.machine.Resources()
	for y := 0; y < int(r.Size.Y) && y < len(res.items); y++ {
		colors := style.Item
		if y == res.cursor {
			colors = style.Cursor
		}
		row := r.Sub(0, y, int(r.Size.X), 1)
		row.Fill(' ', colors)
		row.Text(0, 0, res.items[y].Label, colors)
	}
}
