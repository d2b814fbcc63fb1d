package mining

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/xelahalo/process-mining/eventlog"
	"github.com/xelahalo/process-mining/petri"
)

// AlphaMiner implements the Alpha algorithm for process discovery: it
// derives a workflow Petri net from the footprint relations of an event
// log.
//
// The construction follows the classic recipe:
//  1. Drop duplicate traces, keeping one representative per distinct
//     activity sequence.
//  2. Create one transition per distinct activity (T_W) and collect the
//     start (T_I) and end (T_O) activities.
//  3. Derive the directly-follows, causality and choice relations.
//  4. Enumerate candidate place pairs (A, B): A and B non-empty,
//     internally in choice, and every a∈A causally precedes every b∈B.
//  5. Keep only maximal pairs, and turn each into a place with arcs
//     A→p→B, plus a source place feeding T_I and a sink place fed by T_O.
//
// Limitations: loops of length one or two are invisible to the footprint
// (a>b and b>a reads as parallel), and noise in the log distorts the
// relations. The resulting structure depends only on the footprint, never
// on transition id values or map iteration order.
type AlphaMiner struct {
	log       *eventlog.EventLog
	variants  []*eventlog.Trace
	footprint *FootprintMatrix
}

// NewAlphaMiner creates a miner for the given log. Duplicate traces are
// dropped up front; the footprint is computed over the surviving ones.
func NewAlphaMiner(log *eventlog.EventLog) *AlphaMiner {
	variants := log.DistinctTraces()
	return &AlphaMiner{
		log:       log,
		variants:  variants,
		footprint: footprintFromTraces(variants),
	}
}

// Footprint returns the footprint matrix used by the miner.
func (m *AlphaMiner) Footprint() *FootprintMatrix {
	return m.footprint
}

// placePair is a candidate place: activities in InputSet produce tokens
// into it, activities in OutputSet consume them. Both slices are sorted.
type placePair struct {
	InputSet  []string
	OutputSet []string
}

// key is a canonical identifier used for comparing and ordering pairs.
func (pc placePair) key() string {
	return strings.Join(pc.InputSet, "\x1f") + "\x1e" + strings.Join(pc.OutputSet, "\x1f")
}

// Mine discovers a workflow Petri net from the event log. The returned
// net has an unmarked source place with id 0, one place per maximal
// candidate pair with sequential ids, and a sink place with the highest
// id.
func (m *AlphaMiner) Mine() *petri.PetriNet {
	fp := m.footprint
	net := petri.NewPetriNet()

	if len(fp.Activities) == 0 {
		return net
	}

	// T_W: one fresh transition per distinct activity.
	ids := make(map[string]uuid.UUID, len(fp.Activities))
	for _, activity := range fp.Activities {
		id := uuid.New()
		net.AddTransition(activity, id)
		ids[activity] = id
	}

	maximal := filterMaximal(m.findPlaceCandidates())
	sort.Slice(maximal, func(i, j int) bool {
		return maximal[i].key() < maximal[j].key()
	})

	// Source feeds the start activities; each maximal pair becomes a
	// place with arcs A→p→B; the sink collects the end activities.
	net.AddWorkflowPlace(0, nil, transitionIDs(fp.GetStartActivities(), ids))
	placeID := 1
	for _, pc := range maximal {
		net.AddWorkflowPlace(placeID, transitionIDs(pc.InputSet, ids), transitionIDs(pc.OutputSet, ids))
		placeID++
	}
	net.AddWorkflowPlace(placeID, transitionIDs(fp.GetEndActivities(), ids), nil)

	return net
}

// findPlaceCandidates enumerates all pairs (A, B) of non-empty activity
// sets where A and B are internally unrelated and A -> B holds for every
// cross pair. Enumeration is exponential in the number of activities but
// prunes early: a set that is not internally in choice cannot be grown
// into one.
func (m *AlphaMiner) findPlaceCandidates() []placePair {
	subsets := m.choiceFreeSubsets()

	var candidates []placePair
	for _, setA := range subsets {
		for _, setB := range subsets {
			if m.footprint.SetsCausallyConnected(setA, setB) {
				candidates = append(candidates, placePair{InputSet: setA, OutputSet: setB})
			}
		}
	}
	return candidates
}

// choiceFreeSubsets generates every non-empty subset of activities whose
// members are pairwise, and reflexively, in the choice relation. Subsets
// are built over the sorted activity list, so each comes out sorted.
func (m *AlphaMiner) choiceFreeSubsets() [][]string {
	fp := m.footprint
	var result [][]string

	var extend func(start int, current []string)
	extend = func(start int, current []string) {
		for i := start; i < len(fp.Activities); i++ {
			candidate := fp.Activities[i]
			if !fp.IsChoice(candidate, candidate) {
				continue
			}
			compatible := true
			for _, member := range current {
				if !fp.IsChoice(member, candidate) {
					compatible = false
					break
				}
			}
			if !compatible {
				continue
			}
			subset := make([]string, len(current), len(current)+1)
			copy(subset, current)
			subset = append(subset, candidate)
			result = append(result, subset)
			extend(i+1, subset)
		}
	}
	extend(0, nil)

	return result
}

// filterMaximal keeps only candidates not dominated by another candidate:
// (A, B) is dropped when some distinct (A', B') has A ⊆ A' and B ⊆ B'.
func filterMaximal(candidates []placePair) []placePair {
	var maximal []placePair
	for _, pc := range candidates {
		dominated := false
		for _, other := range candidates {
			if pc.key() == other.key() {
				continue
			}
			if isSubsetOf(pc.InputSet, other.InputSet) && isSubsetOf(pc.OutputSet, other.OutputSet) {
				dominated = true
				break
			}
		}
		if !dominated {
			maximal = append(maximal, pc)
		}
	}
	return maximal
}

// isSubsetOf checks if setA is a subset of setB.
func isSubsetOf(setA, setB []string) bool {
	members := make(map[string]bool, len(setB))
	for _, b := range setB {
		members[b] = true
	}
	for _, a := range setA {
		if !members[a] {
			return false
		}
	}
	return true
}

func transitionIDs(activities []string, ids map[string]uuid.UUID) []uuid.UUID {
	result := make([]uuid.UUID, 0, len(activities))
	for _, activity := range activities {
		result = append(result, ids[activity])
	}
	return result
}
