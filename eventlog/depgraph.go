package eventlog

// DependencyGraph counts direct successions within each case: the result
// maps every task to its direct successors and how often each succession
// was observed. Tasks with no successors (trace-final tasks) still get an
// entry with an empty successor map.
func DependencyGraph(log *EventLog) map[string]map[string]int {
	graph := make(map[string]map[string]int)
	for _, trace := range log.Traces() {
		prev := ""
		for i, event := range trace.Events {
			task := event.Activity
			if _, ok := graph[task]; !ok {
				graph[task] = make(map[string]int)
			}
			if i > 0 {
				graph[prev][task]++
			}
			prev = task
		}
	}
	return graph
}
