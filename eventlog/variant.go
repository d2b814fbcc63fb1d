package eventlog

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// VariantHash returns a deterministic hash of the trace's activity
// sequence. Two traces hash equal iff their activity sequences are
// element-wise equal; every other event field is ignored. Activity names
// are length-framed so concatenation cannot alias across boundaries.
func (trace *Trace) VariantHash() uint64 {
	h := xxhash.New()
	var frame [4]byte
	for _, event := range trace.Events {
		binary.LittleEndian.PutUint32(frame[:], uint32(len(event.Activity)))
		h.Write(frame[:])
		h.WriteString(event.Activity)
	}
	return h.Sum64()
}

// DistinctTraces returns one representative trace per distinct activity
// sequence. Representatives are picked in case-id order, so repeated calls
// return the same traces in the same order.
func (log *EventLog) DistinctTraces() []*Trace {
	seen := make(map[uint64]bool)
	var distinct []*Trace
	for _, trace := range log.Traces() {
		hash := trace.VariantHash()
		if seen[hash] {
			continue
		}
		seen[hash] = true
		distinct = append(distinct, trace)
	}
	return distinct
}

// VariantCounts groups the log's cases by activity sequence and returns,
// for each distinct sequence, its representative trace and the number of
// cases sharing it. Order follows DistinctTraces.
func (log *EventLog) VariantCounts() ([]*Trace, []int) {
	index := make(map[uint64]int)
	var distinct []*Trace
	var counts []int
	for _, trace := range log.Traces() {
		hash := trace.VariantHash()
		if i, ok := index[hash]; ok {
			counts[i]++
			continue
		}
		index[hash] = len(distinct)
		distinct = append(distinct, trace)
		counts = append(counts, 1)
	}
	return distinct, counts
}
