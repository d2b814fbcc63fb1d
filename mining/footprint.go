package mining

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xelahalo/process-mining/eventlog"
)

// Relation is the ordering relation between two activities.
type Relation int

const (
	// Causality means a -> b (a > b and not b > a)
	Causality Relation = iota
	// ReverseCausality means a <- b (b causes a)
	ReverseCausality
	// Parallel means a || b (both orderings observed)
	Parallel
	// Choice means a # b (neither ordering observed)
	Choice
)

// String returns the symbol for the relation.
func (r Relation) String() string {
	switch r {
	case Causality:
		return "→"
	case ReverseCausality:
		return "←"
	case Parallel:
		return "||"
	case Choice:
		return "#"
	default:
		return "?"
	}
}

// FootprintMatrix holds the log-based ordering relations between
// activities: directly-follows counts plus the start and end activity
// sets. It is the foundation for the Alpha miner.
type FootprintMatrix struct {
	Activities []string                  // Sorted list of activities
	follows    map[string]map[string]int // a -> b -> directly-follows count
	StartSet   map[string]bool           // Activities that start traces
	EndSet     map[string]bool           // Activities that end traces
}

// NewFootprintMatrix builds a footprint matrix from all traces of a log.
func NewFootprintMatrix(log *eventlog.EventLog) *FootprintMatrix {
	return footprintFromTraces(log.Traces())
}

func footprintFromTraces(traces []*eventlog.Trace) *FootprintMatrix {
	fp := &FootprintMatrix{
		follows:  make(map[string]map[string]int),
		StartSet: make(map[string]bool),
		EndSet:   make(map[string]bool),
	}

	seen := make(map[string]bool)
	for _, trace := range traces {
		if len(trace.Events) == 0 {
			continue
		}

		fp.StartSet[trace.Events[0].Activity] = true
		fp.EndSet[trace.Events[len(trace.Events)-1].Activity] = true

		for i, event := range trace.Events {
			if !seen[event.Activity] {
				seen[event.Activity] = true
				fp.Activities = append(fp.Activities, event.Activity)
				fp.follows[event.Activity] = make(map[string]int)
			}
			if i > 0 {
				fp.follows[trace.Events[i-1].Activity][event.Activity]++
			}
		}
	}
	sort.Strings(fp.Activities)

	return fp
}

// DirectlyFollows reports whether a is directly followed by b at least once.
func (fp *FootprintMatrix) DirectlyFollows(a, b string) bool {
	return fp.DirectlyFollowsCount(a, b) > 0
}

// DirectlyFollowsCount returns how often a is directly followed by b.
func (fp *FootprintMatrix) DirectlyFollowsCount(a, b string) int {
	if follows, ok := fp.follows[a]; ok {
		return follows[b]
	}
	return 0
}

// GetRelation returns the ordering relation between two activities.
func (fp *FootprintMatrix) GetRelation(a, b string) Relation {
	aFollowsB := fp.DirectlyFollows(a, b)
	bFollowsA := fp.DirectlyFollows(b, a)

	switch {
	case aFollowsB && bFollowsA:
		return Parallel
	case aFollowsB:
		return Causality
	case bFollowsA:
		return ReverseCausality
	default:
		return Choice
	}
}

// IsCausal reports a -> b: a directly follows into b and never the reverse.
func (fp *FootprintMatrix) IsCausal(a, b string) bool {
	return fp.DirectlyFollows(a, b) && !fp.DirectlyFollows(b, a)
}

// IsParallel reports a || b: both orderings observed.
func (fp *FootprintMatrix) IsParallel(a, b string) bool {
	return fp.DirectlyFollows(a, b) && fp.DirectlyFollows(b, a)
}

// IsChoice reports a # b: neither ordering observed. The relation is
// reflexive for activities without a self succession, which is what lets
// singleton sets qualify as place candidates.
func (fp *FootprintMatrix) IsChoice(a, b string) bool {
	return !fp.DirectlyFollows(a, b) && !fp.DirectlyFollows(b, a)
}

// SetIsUnrelated reports whether every pair in the set, each element
// paired with itself included, is in the choice relation.
func (fp *FootprintMatrix) SetIsUnrelated(activities []string) bool {
	for i := 0; i < len(activities); i++ {
		for j := i; j < len(activities); j++ {
			if !fp.IsChoice(activities[i], activities[j]) {
				return false
			}
		}
	}
	return true
}

// SetsCausallyConnected reports whether every activity of setA causally
// precedes every activity of setB.
func (fp *FootprintMatrix) SetsCausallyConnected(setA, setB []string) bool {
	for _, a := range setA {
		for _, b := range setB {
			if !fp.IsCausal(a, b) {
				return false
			}
		}
	}
	return true
}

// GetStartActivities returns the sorted activities that start a trace.
func (fp *FootprintMatrix) GetStartActivities() []string {
	return sortedKeys(fp.StartSet)
}

// GetEndActivities returns the sorted activities that end a trace.
func (fp *FootprintMatrix) GetEndActivities() []string {
	return sortedKeys(fp.EndSet)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns a formatted representation of the footprint matrix.
func (fp *FootprintMatrix) String() string {
	var sb strings.Builder

	sb.WriteString("Footprint Matrix:\n")
	sb.WriteString("     ")
	for _, b := range fp.Activities {
		sb.WriteString(fmt.Sprintf("%4s", truncate(b, 4)))
	}
	sb.WriteString("\n")

	for _, a := range fp.Activities {
		sb.WriteString(fmt.Sprintf("%4s ", truncate(a, 4)))
		for _, b := range fp.Activities {
			sb.WriteString(fmt.Sprintf("%4s", fp.GetRelation(a, b).String()))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\nStart activities: %v\n", fp.GetStartActivities()))
	sb.WriteString(fmt.Sprintf("End activities: %v\n", fp.GetEndActivities()))

	return sb.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
