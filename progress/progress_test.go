package progress

import "testing"

func TestLoggerIncrementVisibleToMonitor(t *testing.T) {
	logger, monitor := Open(10)
	logger.Increment()
	logger.Increment()

	snap := monitor.Read()
	if snap.Current != 2 || snap.Goal != 10 {
		t.Fatalf("got %+v, want current=2 goal=10", snap)
	}
}

func TestStatusJoinsNestedStages(t *testing.T) {
	logger, monitor := Open(1)
	logger.SetStatus("generating map")

	child := logger.Enter()
	child.SetStatus("block layer")

	if got := monitor.Read().Status; got != "generating map > block layer" {
		t.Fatalf("got status %q", got)
	}

	child.Leave()
	if got := monitor.Read().Status; got != "generating map" {
		t.Fatalf("expected child status to drop after Leave, got %q", got)
	}
}

func TestLeaveIsIdempotent(t *testing.T) {
	logger, monitor := Open(1)
	logger.SetStatus("working")
	child := logger.Enter()
	child.SetStatus("nested")

	child.Leave()
	child.Leave()

	if got := monitor.Read().Status; got != "working" {
		t.Fatalf("got status %q after repeated Leave", got)
	}
}
