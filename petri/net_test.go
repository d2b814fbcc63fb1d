package petri

import (
	"testing"

	"github.com/google/uuid"
)

// buildChain creates a minimal workflow net: p0 -> A -> p1 -> B -> p2,
// with p0 the source and p2 the sink.
func buildChain() (*PetriNet, uuid.UUID, uuid.UUID) {
	a := uuid.New()
	b := uuid.New()

	net := NewPetriNet()
	net.AddTransition("A", a).AddTransition("B", b)
	net.AddPlace(0).AddPlace(1).AddPlace(2)
	net.AddInputArc(0, a)
	net.AddOutputArc(a, 1)
	net.AddInputArc(1, b)
	net.AddOutputArc(b, 2)

	return net, a, b
}

func totalTokens(net *PetriNet) int {
	return net.RemainingTokens()
}

func TestAddMarkingAndTokens(t *testing.T) {
	net, _, _ := buildChain()

	if net.Tokens(0) != 0 {
		t.Errorf("Expected 0 tokens initially, got %d", net.Tokens(0))
	}

	net.AddMarking(0)
	net.AddMarking(0)
	if net.Tokens(0) != 2 {
		t.Errorf("Expected 2 tokens after two markings, got %d", net.Tokens(0))
	}

	// Unknown ids are neutral: no panic, zero result.
	net.AddMarking(99)
	if net.Tokens(99) != 0 {
		t.Errorf("Expected 0 tokens for unknown place, got %d", net.Tokens(99))
	}
}

func TestIsEnabled(t *testing.T) {
	net, a, b := buildChain()

	if net.IsEnabled(a) {
		t.Error("A should be disabled with an empty marking")
	}

	net.AddMarking(0)
	if !net.IsEnabled(a) {
		t.Error("A should be enabled with a token on p0")
	}
	if net.IsEnabled(b) {
		t.Error("B should stay disabled")
	}
}

func TestEmptyPresetIsEnabled(t *testing.T) {
	net, _, _ := buildChain()

	free := uuid.New()
	net.AddTransition("free", free)

	if !net.IsEnabled(free) {
		t.Error("A transition with an empty preset should be vacuously enabled")
	}

	// Unknown ids have an empty preset too.
	if !net.IsEnabled(uuid.New()) {
		t.Error("An unknown transition id should be treated as vacuously enabled")
	}
}

func TestFireTransitionMovesToken(t *testing.T) {
	net, a, b := buildChain()
	net.AddMarking(0)

	before := totalTokens(net)
	net.FireTransition(a)

	if net.Tokens(0) != 0 || net.Tokens(1) != 1 {
		t.Errorf("Expected token to move p0 -> p1, got p0=%d p1=%d", net.Tokens(0), net.Tokens(1))
	}
	if after := totalTokens(net); after != before {
		t.Errorf("Token count not conserved: before=%d after=%d", before, after)
	}

	net.FireTransition(b)
	if net.Tokens(2) != 1 {
		t.Errorf("Expected token on sink after firing B, got %d", net.Tokens(2))
	}
}

func TestFireDisabledIsNoop(t *testing.T) {
	net, _, b := buildChain()
	net.AddMarking(0)

	net.FireTransition(b)

	if net.Tokens(0) != 1 || net.Tokens(1) != 0 || net.Tokens(2) != 0 {
		t.Errorf("Firing a disabled transition changed the marking: p0=%d p1=%d p2=%d",
			net.Tokens(0), net.Tokens(1), net.Tokens(2))
	}
}

func TestPresetPostset(t *testing.T) {
	net, a, _ := buildChain()

	preset := net.Preset(a)
	if len(preset) != 1 || preset[0].ID != 0 {
		t.Errorf("Expected preset of A to be {p0}, got %v", preset)
	}

	postset := net.Postset(a)
	if len(postset) != 1 || postset[0].ID != 1 {
		t.Errorf("Expected postset of A to be {p1}, got %v", postset)
	}
}

func TestEnabledTransitions(t *testing.T) {
	net, a, _ := buildChain()

	if enabled := net.EnabledTransitions(); len(enabled) != 0 {
		t.Errorf("Expected no enabled transitions, got %d", len(enabled))
	}

	net.AddMarking(0)
	enabled := net.EnabledTransitions()
	if len(enabled) != 1 || enabled[0].ID != a {
		t.Errorf("Expected only A enabled, got %v", enabled)
	}
}

func TestTransitionNameToID(t *testing.T) {
	net, a, _ := buildChain()

	if id := net.TransitionNameToID("A"); id != a {
		t.Errorf("Expected id of A, got %v", id)
	}
	if id := net.TransitionNameToID("missing"); id != uuid.Nil {
		t.Errorf("Expected uuid.Nil for unknown name, got %v", id)
	}
}

func TestConsumeEndPlaceToken(t *testing.T) {
	net, a, b := buildChain()

	if net.ConsumeEndPlaceToken() {
		t.Error("Expected no consumption on an empty marking")
	}

	net.AddMarking(0)
	net.FireTransition(a)
	net.FireTransition(b)

	if !net.ConsumeEndPlaceToken() {
		t.Error("Expected the sink token to be consumed")
	}
	if net.Tokens(2) != 0 {
		t.Errorf("Expected sink empty after consumption, got %d", net.Tokens(2))
	}
}

func TestConsumeEndPlaceTokenMultipleSinks(t *testing.T) {
	a := uuid.New()
	net := NewPetriNet()
	net.AddTransition("A", a)
	net.AddPlace(0).AddPlace(1).AddPlace(2)
	net.AddInputArc(0, a)
	net.AddOutputArc(a, 1)
	net.AddOutputArc(a, 2)

	net.AddMarking(1)
	net.AddMarking(2)

	if !net.ConsumeEndPlaceToken() {
		t.Error("Expected consumption from marked sinks")
	}
	if net.Tokens(1) != 0 || net.Tokens(2) != 0 {
		t.Errorf("Expected one token consumed per sink, got p1=%d p2=%d", net.Tokens(1), net.Tokens(2))
	}
}

func TestClearTokensAndRemaining(t *testing.T) {
	net, _, _ := buildChain()
	net.AddMarking(0)
	net.AddMarking(1)
	net.AddMarking(1)

	if r := net.RemainingTokens(); r != 3 {
		t.Errorf("Expected 3 remaining tokens, got %d", r)
	}

	net.ClearTokens()
	if r := net.RemainingTokens(); r != 0 {
		t.Errorf("Expected 0 tokens after clear, got %d", r)
	}
}

func TestAddWorkflowPlaceWiresArcs(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	net := NewPetriNet()
	net.AddTransition("A", a).AddTransition("B", b)
	net.AddWorkflowPlace(1, []uuid.UUID{a}, []uuid.UUID{b})

	if _, ok := net.Arcs[Arc{Place: 1, Transition: a, ToPlace: true}]; !ok {
		t.Error("Expected arc A -> p1")
	}
	if _, ok := net.Arcs[Arc{Place: 1, Transition: b, ToPlace: false}]; !ok {
		t.Error("Expected arc p1 -> B")
	}
	if len(net.Arcs) != 2 {
		t.Errorf("Expected exactly 2 arcs, got %d", len(net.Arcs))
	}
}

func TestFreshTransitionsAreDistinct(t *testing.T) {
	t1 := NewTransition("same")
	t2 := NewTransition("same")
	if t1.ID == t2.ID {
		t.Error("Two transitions built from the same name must get distinct ids")
	}
}
