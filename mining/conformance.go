// Package mining provides process mining algorithms: Alpha discovery and
// token-replay conformance checking.
package mining

import (
	"errors"
	"fmt"

	"github.com/xelahalo/process-mining/eventlog"
	"github.com/xelahalo/process-mining/petri"
)

// ErrViolation is returned when a replay breaks the token accounting
// invariants: consumed exceeding produced plus missing (or falling below
// missing) mid-replay, or produced + missing - consumed diverging from the
// remaining tokens after a trace. Either means the net or the runtime is
// inconsistent; no partial result is returned.
var ErrViolation = errors.New("token replay violation")

// TraceProperties carries one distinct trace, how many cases share it,
// and the token counters recorded when it was replayed.
type TraceProperties struct {
	Trace       *eventlog.Trace
	Occurrences int
	Missing     int
	Consumed    int
	Remaining   int
	Produced    int
}

// Fitting reports whether the trace replayed without missing or leftover
// tokens.
func (tp *TraceProperties) Fitting() bool {
	return tp.Missing == 0 && tp.Remaining == 0
}

// ReplayResult aggregates a token replay across all traces of a log.
// Token totals are weighted by trace occurrences.
type ReplayResult struct {
	Fitness float64

	MissingTokens   int // NM: Σ occurrences · missing
	ConsumedTokens  int // NC: Σ occurrences · consumed
	RemainingTokens int // NR: Σ occurrences · remaining
	ProducedTokens  int // NP: Σ occurrences · produced

	TraceResults []*TraceProperties

	FittingTraces int // Cases whose trace replayed perfectly
	TotalTraces   int // Cases in the log
}

// TraceVariants groups the log's cases by identical activity sequence.
// Each distinct sequence yields one TraceProperties with its occurrence
// count; order is deterministic (first appearance in case-id order).
func TraceVariants(log *eventlog.EventLog) []*TraceProperties {
	traces, counts := log.VariantCounts()
	properties := make([]*TraceProperties, len(traces))
	for i, trace := range traces {
		properties[i] = &TraceProperties{Trace: trace, Occurrences: counts[i]}
	}
	return properties
}

// TokenReplay replays every distinct trace of the log against the net and
// aggregates the produced/consumed/missing/remaining token counts into a
// fitness score. The net's marking is cleared after each trace; the
// caller must not share the net with a concurrent replay.
func TokenReplay(log *eventlog.EventLog, net *petri.PetriNet) (*ReplayResult, error) {
	result := &ReplayResult{
		TraceResults: TraceVariants(log),
		TotalTraces:  log.NumCases(),
	}

	for _, tp := range result.TraceResults {
		if err := replayTrace(net, tp); err != nil {
			return nil, err
		}

		result.MissingTokens += tp.Occurrences * tp.Missing
		result.ConsumedTokens += tp.Occurrences * tp.Consumed
		result.RemainingTokens += tp.Occurrences * tp.Remaining
		result.ProducedTokens += tp.Occurrences * tp.Produced
		if tp.Fitting() {
			result.FittingTraces += tp.Occurrences
		}
	}

	// fitness = 1/2 (1 - NM/NC) + 1/2 (1 - NR/NP); an empty log is
	// trivially conformant.
	if result.ConsumedTokens > 0 && result.ProducedTokens > 0 {
		missingRatio := float64(result.MissingTokens) / float64(result.ConsumedTokens)
		remainingRatio := float64(result.RemainingTokens) / float64(result.ProducedTokens)
		result.Fitness = 0.5*(1-missingRatio) + 0.5*(1-remainingRatio)
	} else {
		result.Fitness = 1.0
	}

	return result, nil
}

// FitnessTokenReplay returns the token-replay fitness of the log against
// the net, a value in [0, 1].
func FitnessTokenReplay(log *eventlog.EventLog, net *petri.PetriNet) (float64, error) {
	result, err := TokenReplay(log, net)
	if err != nil {
		return 0, err
	}
	return result.Fitness, nil
}

// replayTrace replays a single trace from a fresh marking and records the
// token counters on tp. The net is left with all tokens cleared.
func replayTrace(net *petri.PetriNet, tp *TraceProperties) error {
	var p, c, m, r int

	net.AddMarking(0)
	p++

	for _, event := range tp.Trace.Events {
		transitionID := net.TransitionNameToID(event.Activity)

		preset := net.Preset(transitionID)
		postset := net.Postset(transitionID)

		// An activity the net cannot fire gets its input tokens
		// injected; each injection counts as a missing token.
		if !net.IsEnabled(transitionID) {
			for _, place := range preset {
				if !place.HasTokens() {
					net.AddMarking(place.ID)
					m++
				}
			}
		}

		net.FireTransition(transitionID)
		c += len(preset)
		p += len(postset)

		if c > p+m || c < m {
			net.ClearTokens()
			return fmt.Errorf("%w: case %s at %q: consumed=%d produced=%d missing=%d",
				ErrViolation, tp.Trace.CaseID, event.Activity, c, p, m)
		}
	}

	found := net.ConsumeEndPlaceToken()
	c++
	if !found {
		m++
	}

	r += net.RemainingTokens()
	net.ClearTokens()

	tp.Missing = m
	tp.Consumed = c
	tp.Remaining = r
	tp.Produced = p

	if p+m-c != r {
		return fmt.Errorf("%w: case %s: produced=%d missing=%d consumed=%d remaining=%d",
			ErrViolation, tp.Trace.CaseID, p, m, c, r)
	}
	return nil
}
