package eventlog

import (
	"strings"
	"time"
)

// inlineDateFormats are the layouts tried for the date field of inline
// logs. The field is best-effort; an unparseable date leaves the event's
// timestamp zero rather than failing the whole log.
var inlineDateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// LogFromString parses an inline event log: one event per line in the form
//
//	task;case;user;date
//
// Blank lines and lines with fewer than four fields are skipped.
func LogFromString(s string) *EventLog {
	log := NewEventLog()
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Split(line, ";")
		if len(fields) < 4 {
			continue
		}

		event := Event{
			Activity: strings.TrimSpace(fields[0]),
			CaseID:   strings.TrimSpace(fields[1]),
		}
		if event.Activity == "" || event.CaseID == "" {
			continue
		}
		if user := strings.TrimSpace(fields[2]); user != "" {
			event.Resources = append(event.Resources, user)
		}
		if date := strings.TrimSpace(fields[3]); date != "" {
			for _, format := range inlineDateFormats {
				if ts, err := time.Parse(format, date); err == nil {
					event.Timestamp = ts
					break
				}
			}
		}

		log.AddEvent(event)
	}
	return log
}
