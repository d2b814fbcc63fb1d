// Package eventlog provides the event log model used by process discovery
// and conformance checking, along with readers for the XES and inline
// semicolon-delimited log formats.
package eventlog

import (
	"fmt"
	"sort"
	"time"
)

// Event is a single observation in a process execution. Mining only ever
// looks at the Activity (task) name; the remaining fields are carried for
// callers that want to inspect or persist the full log.
type Event struct {
	CaseID    string
	Activity  string
	Timestamp time.Time
	Cost      int
	Resources []string
}

// Trace is the ordered sequence of events recorded for one case.
type Trace struct {
	CaseID string
	Events []Event
}

// EventLog maps case ids to their traces.
type EventLog struct {
	Cases map[string]*Trace
}

// NewEventLog creates an empty event log.
func NewEventLog() *EventLog {
	return &EventLog{Cases: make(map[string]*Trace)}
}

// AddEvent appends an event to its case, creating the trace if needed.
// Events are kept in insertion order.
func (log *EventLog) AddEvent(event Event) {
	trace, exists := log.Cases[event.CaseID]
	if !exists {
		trace = &Trace{CaseID: event.CaseID}
		log.Cases[event.CaseID] = trace
	}
	trace.Events = append(trace.Events, event)
}

// Traces returns all traces sorted by case id, so callers iterate the log
// deterministically.
func (log *EventLog) Traces() []*Trace {
	traces := make([]*Trace, 0, len(log.Cases))
	for _, trace := range log.Cases {
		traces = append(traces, trace)
	}
	sort.Slice(traces, func(i, j int) bool {
		return traces[i].CaseID < traces[j].CaseID
	})
	return traces
}

// NumCases returns the number of cases in the log.
func (log *EventLog) NumCases() int {
	return len(log.Cases)
}

// NumEvents returns the total number of events across all cases.
func (log *EventLog) NumEvents() int {
	total := 0
	for _, trace := range log.Cases {
		total += len(trace.Events)
	}
	return total
}

// Activities returns the sorted set of distinct activity names in the log.
func (log *EventLog) Activities() []string {
	seen := make(map[string]bool)
	for _, trace := range log.Cases {
		for _, event := range trace.Events {
			seen[event.Activity] = true
		}
	}

	result := make([]string, 0, len(seen))
	for activity := range seen {
		result = append(result, activity)
	}
	sort.Strings(result)
	return result
}

// ActivitySequence returns the ordered activity names of the trace.
func (trace *Trace) ActivitySequence() []string {
	seq := make([]string, len(trace.Events))
	for i, event := range trace.Events {
		seq[i] = event.Activity
	}
	return seq
}

// String returns a compact representation of the trace.
func (trace *Trace) String() string {
	return fmt.Sprintf("case %s: %v", trace.CaseID, trace.ActivitySequence())
}

// Summary holds basic statistics about an event log.
type Summary struct {
	NumCases      int
	NumEvents     int
	NumActivities int
	NumVariants   int
	AvgCaseLength float64
}

// Summarize computes summary statistics for the event log.
func (log *EventLog) Summarize() Summary {
	summary := Summary{
		NumCases:      log.NumCases(),
		NumEvents:     log.NumEvents(),
		NumActivities: len(log.Activities()),
		NumVariants:   len(log.DistinctTraces()),
	}
	if summary.NumCases > 0 {
		summary.AvgCaseLength = float64(summary.NumEvents) / float64(summary.NumCases)
	}
	return summary
}
