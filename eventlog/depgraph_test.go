package eventlog

import "testing"

func TestDependencyGraph(t *testing.T) {
	log := NewEventLog()
	addTrace(log, "c1", "A", "B", "C")
	addTrace(log, "c2", "A", "B", "C")
	addTrace(log, "c3", "A", "C")

	dg := DependencyGraph(log)

	if dg["A"]["B"] != 2 {
		t.Errorf("Expected A->B count 2, got %d", dg["A"]["B"])
	}
	if dg["A"]["C"] != 1 {
		t.Errorf("Expected A->C count 1, got %d", dg["A"]["C"])
	}
	if dg["B"]["C"] != 2 {
		t.Errorf("Expected B->C count 2, got %d", dg["B"]["C"])
	}

	// Final tasks still get an entry.
	successors, ok := dg["C"]
	if !ok {
		t.Fatal("Expected C to be present in the graph")
	}
	if len(successors) != 0 {
		t.Errorf("Expected no successors for C, got %v", successors)
	}
}
