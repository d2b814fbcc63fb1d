package eventlog

import (
	"reflect"
	"testing"
)

func addTrace(log *EventLog, caseID string, activities ...string) {
	for _, activity := range activities {
		log.AddEvent(Event{CaseID: caseID, Activity: activity})
	}
}

func TestTracesSortedByCase(t *testing.T) {
	log := NewEventLog()
	addTrace(log, "c2", "B")
	addTrace(log, "c1", "A")
	addTrace(log, "c3", "C")

	traces := log.Traces()
	if len(traces) != 3 {
		t.Fatalf("Expected 3 traces, got %d", len(traces))
	}
	for i, want := range []string{"c1", "c2", "c3"} {
		if traces[i].CaseID != want {
			t.Errorf("Expected trace %d to be %s, got %s", i, want, traces[i].CaseID)
		}
	}
}

func TestActivitySequence(t *testing.T) {
	log := NewEventLog()
	addTrace(log, "c1", "A", "B", "A")

	seq := log.Cases["c1"].ActivitySequence()
	if !reflect.DeepEqual(seq, []string{"A", "B", "A"}) {
		t.Errorf("Expected [A B A], got %v", seq)
	}
}

func TestActivities(t *testing.T) {
	log := NewEventLog()
	addTrace(log, "c1", "B", "A")
	addTrace(log, "c2", "C", "A")

	activities := log.Activities()
	if !reflect.DeepEqual(activities, []string{"A", "B", "C"}) {
		t.Errorf("Expected sorted [A B C], got %v", activities)
	}
}

func TestCounts(t *testing.T) {
	log := NewEventLog()
	addTrace(log, "c1", "A", "B")
	addTrace(log, "c2", "A")

	if log.NumCases() != 2 {
		t.Errorf("Expected 2 cases, got %d", log.NumCases())
	}
	if log.NumEvents() != 3 {
		t.Errorf("Expected 3 events, got %d", log.NumEvents())
	}
}

func TestSummarize(t *testing.T) {
	log := NewEventLog()
	addTrace(log, "c1", "A", "B")
	addTrace(log, "c2", "A", "B")
	addTrace(log, "c3", "A", "C")

	s := log.Summarize()
	if s.NumCases != 3 || s.NumEvents != 6 || s.NumActivities != 3 {
		t.Errorf("Unexpected summary: %+v", s)
	}
	if s.NumVariants != 2 {
		t.Errorf("Expected 2 variants, got %d", s.NumVariants)
	}
	if s.AvgCaseLength != 2.0 {
		t.Errorf("Expected avg case length 2.0, got %f", s.AvgCaseLength)
	}
}
