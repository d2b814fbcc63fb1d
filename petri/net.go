// Package petri implements the workflow Petri net runtime: places keyed by
// integer id, transitions keyed by an opaque uuid, directed arcs between
// them, and marking operations (enabledness, firing, token accounting).
//
// The runtime never panics on unknown ids; lookups return a neutral value
// (zero tokens, empty preset, uuid.Nil) and mutations on unknown ids are
// no-ops. This lets token replay treat an unresolvable activity as a
// transition with an empty preset and postset.
package petri

import (
	"sort"

	"github.com/google/uuid"
)

// Transition is a node labeled by a task name. Identity is the uuid, never
// the name: two transitions built from the same task are distinct nodes.
type Transition struct {
	ID   uuid.UUID
	Name string
}

// NewTransition creates a transition with a fresh id.
func NewTransition(name string) *Transition {
	return &Transition{ID: uuid.New(), Name: name}
}

// Place is a node holding tokens. For places built by the Alpha miner,
// Inputs and Outputs record the (A, B) transition sets the place was
// derived from; the net's arcs for such a place are exactly A→p and p→B.
type Place struct {
	ID      int
	Inputs  []uuid.UUID
	Outputs []uuid.UUID

	tokens int
}

// Tokens returns the current token count.
func (p *Place) Tokens() int {
	return p.tokens
}

// HasTokens reports whether the place holds at least one token.
func (p *Place) HasTokens() bool {
	return p.tokens > 0
}

func (p *Place) addToken() {
	p.tokens++
}

// removeToken floors at zero; the token count is never negative.
func (p *Place) removeToken() {
	if p.tokens > 0 {
		p.tokens--
	}
}

// Arc is a directed edge between a place and a transition. ToPlace false
// means place→transition (an input arc of the transition), true means
// transition→place. Encoding the direction this way makes place-place and
// transition-transition edges unrepresentable.
type Arc struct {
	Place      int
	Transition uuid.UUID
	ToPlace    bool
}

// PetriNet is a set of places, transitions and arcs plus the current
// marking, which lives in the places themselves. A net instance must not
// be shared by concurrent replays; clone it or serialize access.
type PetriNet struct {
	Places      map[int]*Place
	Transitions map[uuid.UUID]*Transition
	Arcs        map[Arc]struct{}
}

// NewPetriNet creates an empty net.
func NewPetriNet() *PetriNet {
	return &PetriNet{
		Places:      make(map[int]*Place),
		Transitions: make(map[uuid.UUID]*Transition),
		Arcs:        make(map[Arc]struct{}),
	}
}

// AddPlace adds an empty place with the given id. Adding an id twice keeps
// the first place.
func (n *PetriNet) AddPlace(id int) *PetriNet {
	if _, exists := n.Places[id]; !exists {
		n.Places[id] = &Place{ID: id}
	}
	return n
}

// AddWorkflowPlace adds a place derived from transition sets (A, B) and
// wires exactly the arcs A→p and p→B.
func (n *PetriNet) AddWorkflowPlace(id int, inputs, outputs []uuid.UUID) *PetriNet {
	if _, exists := n.Places[id]; exists {
		return n
	}
	place := &Place{
		ID:      id,
		Inputs:  append([]uuid.UUID(nil), inputs...),
		Outputs: append([]uuid.UUID(nil), outputs...),
	}
	n.Places[id] = place
	for _, t := range place.Inputs {
		n.AddOutputArc(t, id)
	}
	for _, t := range place.Outputs {
		n.AddInputArc(id, t)
	}
	return n
}

// AddTransition adds a transition with the given name and id.
func (n *PetriNet) AddTransition(name string, id uuid.UUID) *PetriNet {
	n.Transitions[id] = &Transition{ID: id, Name: name}
	return n
}

// AddInputArc adds a place→transition arc.
func (n *PetriNet) AddInputArc(placeID int, transitionID uuid.UUID) *PetriNet {
	n.Arcs[Arc{Place: placeID, Transition: transitionID, ToPlace: false}] = struct{}{}
	return n
}

// AddOutputArc adds a transition→place arc.
func (n *PetriNet) AddOutputArc(transitionID uuid.UUID, placeID int) *PetriNet {
	n.Arcs[Arc{Place: placeID, Transition: transitionID, ToPlace: true}] = struct{}{}
	return n
}

// Tokens returns the token count at the given place, 0 for unknown ids.
func (n *PetriNet) Tokens(placeID int) int {
	if place, ok := n.Places[placeID]; ok {
		return place.Tokens()
	}
	return 0
}

// AddMarking puts one token on the given place.
func (n *PetriNet) AddMarking(placeID int) {
	if place, ok := n.Places[placeID]; ok {
		place.addToken()
	}
}

// ClearTokens resets every place to zero tokens.
func (n *PetriNet) ClearTokens() {
	for _, place := range n.Places {
		place.tokens = 0
	}
}

// RemainingTokens sums the token counts of all places.
func (n *PetriNet) RemainingTokens() int {
	total := 0
	for _, place := range n.Places {
		total += place.tokens
	}
	return total
}

// TransitionNameToID returns the id of a transition with the given name,
// or uuid.Nil when none exists. With duplicate names the match is
// unspecified.
func (n *PetriNet) TransitionNameToID(name string) uuid.UUID {
	for id, t := range n.Transitions {
		if t.Name == name {
			return id
		}
	}
	return uuid.Nil
}

// Preset returns •t, the places with an arc into the transition.
// Iteration order is unspecified.
func (n *PetriNet) Preset(transitionID uuid.UUID) []*Place {
	var preset []*Place
	for arc := range n.Arcs {
		if arc.Transition == transitionID && !arc.ToPlace {
			if place, ok := n.Places[arc.Place]; ok {
				preset = append(preset, place)
			}
		}
	}
	return preset
}

// Postset returns t•, the places with an arc from the transition.
// Iteration order is unspecified.
func (n *PetriNet) Postset(transitionID uuid.UUID) []*Place {
	var postset []*Place
	for arc := range n.Arcs {
		if arc.Transition == transitionID && arc.ToPlace {
			if place, ok := n.Places[arc.Place]; ok {
				postset = append(postset, place)
			}
		}
	}
	return postset
}

// IsEnabled reports whether every place in •t holds a token. A transition
// with an empty preset is vacuously enabled.
func (n *PetriNet) IsEnabled(transitionID uuid.UUID) bool {
	for _, place := range n.Preset(transitionID) {
		if !place.HasTokens() {
			return false
		}
	}
	return true
}

// FireTransition consumes one token from each preset place and produces
// one in each postset place. Firing a disabled transition leaves the
// marking unchanged.
func (n *PetriNet) FireTransition(transitionID uuid.UUID) {
	if !n.IsEnabled(transitionID) {
		return
	}
	for _, place := range n.Preset(transitionID) {
		place.removeToken()
	}
	for _, place := range n.Postset(transitionID) {
		place.addToken()
	}
}

// EnabledTransitions returns all transitions enabled under the current
// marking, in unspecified order.
func (n *PetriNet) EnabledTransitions() []*Transition {
	var enabled []*Transition
	for id, t := range n.Transitions {
		if n.IsEnabled(id) {
			enabled = append(enabled, t)
		}
	}
	return enabled
}

// ConsumeEndPlaceToken decrements by one every sink place (empty postset)
// that holds tokens. It reports whether any token was consumed.
func (n *PetriNet) ConsumeEndPlaceToken() bool {
	found := false
	for _, place := range n.Places {
		if n.hasOutgoingArc(place.ID) {
			continue
		}
		if place.HasTokens() {
			place.removeToken()
			found = true
		}
	}
	return found
}

func (n *PetriNet) hasOutgoingArc(placeID int) bool {
	for arc := range n.Arcs {
		if arc.Place == placeID && !arc.ToPlace {
			return true
		}
	}
	return false
}

// SortedPlaces returns the net's places ordered by id, for deterministic
// listings.
func (n *PetriNet) SortedPlaces() []*Place {
	places := make([]*Place, 0, len(n.Places))
	for _, place := range n.Places {
		places = append(places, place)
	}
	sort.Slice(places, func(i, j int) bool {
		return places[i].ID < places[j].ID
	})
	return places
}

// SortedTransitions returns the net's transitions ordered by name, for
// deterministic listings.
func (n *PetriNet) SortedTransitions() []*Transition {
	transitions := make([]*Transition, 0, len(n.Transitions))
	for _, t := range n.Transitions {
		transitions = append(transitions, t)
	}
	sort.Slice(transitions, func(i, j int) bool {
		if transitions[i].Name != transitions[j].Name {
			return transitions[i].Name < transitions[j].Name
		}
		return transitions[i].ID.String() < transitions[j].ID.String()
	})
	return transitions
}
