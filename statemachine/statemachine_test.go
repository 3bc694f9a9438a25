package statemachine

import "testing"

type counterState int

func (s counterState) IsFinal() bool { return s >= 3 }

type incrementer struct{}

func (incrementer) Transition(state counterState, args int) (counterState, error) {
	return state + counterState(args), nil
}

func TestStateMachineRunsUntilFinal(t *testing.T) {
	m := New[int, counterState, incrementer](incrementer{}, 0)

	ticks := 0
	for {
		ticks++
		final, err := m.OnTick(1)
		if err != nil {
			t.Fatalf("OnTick: %v", err)
		}
		if final {
			break
		}
		if ticks > 10 {
			t.Fatalf("machine never reached a final state")
		}
	}

	if m.State() != 3 {
		t.Fatalf("got final state %d, want 3", m.State())
	}
	if ticks != 3 {
		t.Fatalf("expected exactly 3 ticks to reach state 3, got %d", ticks)
	}
}

func TestResetReplaysFromInitial(t *testing.T) {
	m := New[int, counterState, incrementer](incrementer{}, 0)
	m.OnTick(1)
	m.OnTick(1)
	m.OnTick(1)
	if !m.State().IsFinal() {
		t.Fatalf("expected state to be final before reset")
	}

	m.Reset(0)
	if m.State().IsFinal() {
		t.Fatalf("expected state to no longer be final after reset")
	}
}
