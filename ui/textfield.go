package ui

import (
	"github.com/brunoczim/thedes/input"
	"github.com/brunoczim/thedes/statemachine"
	"github.com/brunoczim/thedes/tile"
)

// TextFieldOutcome is the reason a text field run ended.
type TextFieldOutcome uint8

const (
	TextFieldEditing TextFieldOutcome = iota
	TextFieldSubmitted
	TextFieldCancelled
)

// IsFinal reports whether the outcome ends the field's run.
func (o TextFieldOutcome) IsFinal() bool {
	return o != TextFieldEditing
}

// TextFieldArgs is the per-tick input handed to a text field's
// transition.
type TextFieldArgs struct {
	Events []input.Event
}

type textFieldResources struct {
	runes  []rune
	cursor int
	maxLen int
}

// Transition applies every key event in args to the buffer, in order.
func (t *textFieldResources) Transition(state TextFieldOutcome, args TextFieldArgs) (TextFieldOutcome, error) {
	for _, ev := range args.Events {
		if ev.Kind != input.EventKey {
			continue
		}
		switch ev.Key.MainKey {
		case input.Char:
			if t.maxLen > 0 && len(t.runes) >= t.maxLen {
				continue
			}
			t.runes = append(t.runes[:t.cursor], append([]rune{ev.Key.Rune}, t.runes[t.cursor:]...)...)
			t.cursor++
		case input.Backspace:
			if t.cursor > 0 {
				t.runes = append(t.runes[:t.cursor-1], t.runes[t.cursor:]...)
				t.cursor--
			}
		case input.Delete:
			if t.cursor < len(t.runes) {
				t.runes = append(t.runes[:t.cursor], t.runes[t.cursor+1:]...)
			}
		case input.Left:
			if t.cursor > 0 {
				t.cursor--
			}
		case input.Right:
			if t.cursor < len(t.runes) {
				t.cursor++
			}
		case input.Enter:
			return TextFieldSubmitted, nil
		case input.Esc:
			return TextFieldCancelled, nil
		}
	}
	return state, nil
}

// TextField is a single-line editable text input.
type TextField struct {
	Prefix      string
	Placeholder string
	machine     *statemachine.StateMachine[TextFieldArgs, TextFieldOutcome, *textFieldResources]
}

// NewTextField builds an empty text field. maxLen of 0 means unbounded.
func NewTextField(prefix, placeholder string, maxLen int) *TextField {
	return &TextField{
		Prefix:      prefix,
		Placeholder: placeholder,
		machine:     statemachine.New[TextFieldArgs, TextFieldOutcome, *textFieldResources](&textFieldResources{maxLen: maxLen}, TextFieldEditing),
	}
}

// OnTick applies one tick's events, returning true once the field has
// been submitted or cancelled.
func (t *TextField) OnTick(events []input.Event) (bool, error) {
	return t.machine.OnTick(TextFieldArgs{Events: events})
}

// Outcome reports why the field's run ended, or TextFieldEditing if it
// hasn't.
func (t *TextField) Outcome() TextFieldOutcome {
	return t.machine.State()
}

// Text returns the field's current contents.
func (t *TextField) Text() string {
	return string(t.machine.Resources().runes)
}

// TextFieldStyle configures a text field's colors.
type TextFieldStyle struct {
	Text        tile.ColorPair
	Placeholder tile.ColorPair
	Cursor      tile.ColorPair
	Prefix      tile.ColorPair
}

// Draw renders the field's prefix and contents on row y, showing the
// cursor when focused is true.
func (t *TextField) Draw(r Region, y int, focused bool, style TextFieldStyle) {
	row := r.Sub(0, y, int(r.Size.X), 1)
	row.Fill(' ', style.Text)

	x := 0
	if t.Prefix != "" {
		row.Text(x, 0, t.Prefix, style.Prefix)
		x += runeLen(t.Prefix)
	}

	res := t.machine.Resources()
	if len(res.runes) == 0 && t.Placeholder != "" && !focused {
		row.Text(x, 0, t.Placeholder, style.Placeholder)
		return
	}

	for i, ch := range res.runes {
		colors := style.Text
		if focused && i == res.cursor {
			colors = style.Cursor
		}
		row.Cell(x+i, 0, ch, colors)
	}
	if focused && res.cursor == len(res.runes) {
		row.Cell(x+res.cursor, 0, ' ', style.Cursor)
	}
}
