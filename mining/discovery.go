package mining

import (
	"github.com/xelahalo/process-mining/eventlog"
	"github.com/xelahalo/process-mining/petri"
)

// DiscoveryResult wraps a discovered net with metadata about the log it
// was mined from.
type DiscoveryResult struct {
	Net             *petri.PetriNet
	Method          string
	NumVariants     int     // Distinct trace variants in the log
	MostCommonCount int     // Cases following the most common variant
	CoveragePercent float64 // Share of cases covered by that variant
}

// Discover runs the Alpha miner on the log and computes variant
// statistics for the result.
func Discover(log *eventlog.EventLog) (*DiscoveryResult, error) {
	miner := NewAlphaMiner(log)
	net := miner.Mine()

	_, counts := log.VariantCounts()
	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	coverage := 0.0
	if log.NumCases() > 0 {
		coverage = float64(maxCount) / float64(log.NumCases()) * 100
	}

	return &DiscoveryResult{
		Net:             net,
		Method:          "alpha",
		NumVariants:     len(counts),
		MostCommonCount: maxCount,
		CoveragePercent: coverage,
	}, nil
}
