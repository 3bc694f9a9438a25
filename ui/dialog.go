package ui

import (
	"github.com/brunoczim/thedes/input"
	"github.com/brunoczim/thedes/statemachine"
	"github.com/brunoczim/thedes/tile"
)

// DialogOutcome is the reason a dialog run ended.
type DialogOutcome uint8

const (
	DialogRunning DialogOutcome = iota
	DialogDismissed
)

// IsFinal reports whether the outcome ends the dialog's run.
func (o DialogOutcome) IsFinal() bool {
	return o == DialogDismissed
}

// DialogArgs is the per-tick input handed to a dialog's transition.
type DialogArgs struct {
	Events []input.Event
}

type dialogResources struct{}

// Transition dismisses on Enter or Esc; any other key is ignored.
func (dialogResources) Transition(state DialogOutcome, args DialogArgs) (DialogOutcome, error) {
	for _, ev := range args.Events {
		if ev.Kind != input.EventKey {
			continue
		}
		if ev.Key.MainKey == input.Enter || ev.Key.MainKey == input.Esc {
			return DialogDismissed, nil
		}
	}
	return state, nil
}

// Dialog is a single-button informational message box.
type Dialog struct {
	Title   string
	Message string
	machine *statemachine.StateMachine[DialogArgs, DialogOutcome, dialogResources]
}

// NewDialog builds a dialog showing title and message, dismissed by
// Enter or Esc.
func NewDialog(title, message string) *Dialog {
	return &Dialog{
		Title:   title,
		Message: message,
		machine: statemachine.New[DialogArgs, DialogOutcome, dialogResources](dialogResources{}, DialogRunning),
	}
}

// OnTick applies one tick's events, returning true once dismissed.
func (d *Dialog) OnTick(events []input.Event) (bool, error) {
	return d.machine.OnTick(DialogArgs{Events: events})
}

// Dismissed reports whether the dialog has been closed.
func (d *Dialog) Dismissed() bool {
	return d.machine.State() == DialogDismissed
}

// DialogStyle configures a dialog's colors.
type DialogStyle struct {
	Border  tile.ColorPair
	Title   tile.ColorPair
	Message tile.ColorPair
}

// Draw renders a bordered box with the title on the top edge and the
// message below it.
func (d *Dialog) Draw(r Region, style DialogStyle) {
	r.Box(style.Border)
	if d.Title != "" {
		r.Text(2, 0, " "+d.Title+" ", style.Title)
	}
	content := r.Sub(1, 1, int(r.Size.X)-2, int(r.Size.Y)-2)
	content.Text(0, 0, d.Message, style.Message)
}
