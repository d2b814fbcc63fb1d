package eventlog

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// conceptName is the XES attribute key carrying activity and case names.
const conceptName = "concept:name"

// xesTimestampFormats are the timestamp layouts tried when parsing XES
// date attributes, most specific first.
var xesTimestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type xesAttr struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

type xesEvent struct {
	Strings []xesAttr `xml:"string"`
	Dates   []xesAttr `xml:"date"`
	Ints    []xesAttr `xml:"int"`
}

type xesTrace struct {
	Strings []xesAttr  `xml:"string"`
	Events  []xesEvent `xml:"event"`
}

type xesLog struct {
	Traces []xesTrace `xml:"trace"`
}

// ReadXES parses an XES event log file.
func ReadXES(path string) (*EventLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ParseXES(f)
}

// ParseXES parses an XES event log from a reader. Per trace, a string
// attribute named concept:name carries the case id; per event, concept:name
// is the activity, date attributes the timestamp, int attributes the cost,
// and remaining string attributes are collected as resources. Unknown
// attributes are ignored rather than rejected.
func ParseXES(r io.Reader) (*EventLog, error) {
	var doc xesLog
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding xes: %w", err)
	}

	log := NewEventLog()
	for i, trace := range doc.Traces {
		caseID := traceCaseID(trace)
		if caseID == "" {
			return nil, fmt.Errorf("trace %d: no case id attribute", i)
		}

		for _, ev := range trace.Events {
			event := Event{CaseID: caseID}
			for _, attr := range ev.Strings {
				if attr.Key == conceptName {
					event.Activity = attr.Value
				} else if attr.Value != "" {
					event.Resources = append(event.Resources, attr.Value)
				}
			}
			if event.Activity == "" {
				continue
			}
			for _, attr := range ev.Dates {
				if ts, err := parseXESTimestamp(attr.Value); err == nil {
					event.Timestamp = ts
				}
			}
			for _, attr := range ev.Ints {
				if cost, err := strconv.Atoi(attr.Value); err == nil {
					event.Cost = cost
				}
			}
			log.AddEvent(event)
		}
	}

	return log, nil
}

// traceCaseID extracts the case id from a trace's string attributes,
// preferring concept:name.
func traceCaseID(trace xesTrace) string {
	for _, attr := range trace.Strings {
		if attr.Key == conceptName {
			return attr.Value
		}
	}
	if len(trace.Strings) > 0 {
		return trace.Strings[0].Value
	}
	return ""
}

func parseXESTimestamp(s string) (time.Time, error) {
	for _, format := range xesTimestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
