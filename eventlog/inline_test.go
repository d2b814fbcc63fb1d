package eventlog

import (
	"reflect"
	"testing"
)

func TestLogFromString(t *testing.T) {
	input := `Task_A;case_1;user_1;2019-09-01
Task_B;case_1;user_2;2019-09-02
Task_A;case_2;user_1;2019-09-03

short;line
Task_C;case_2;user_3;2019-09-04`

	log := LogFromString(input)

	if log.NumCases() != 2 {
		t.Fatalf("Expected 2 cases, got %d", log.NumCases())
	}
	if log.NumEvents() != 4 {
		t.Errorf("Expected 4 events (blank and short lines skipped), got %d", log.NumEvents())
	}

	seq := log.Cases["case_1"].ActivitySequence()
	if !reflect.DeepEqual(seq, []string{"Task_A", "Task_B"}) {
		t.Errorf("Expected [Task_A Task_B] for case_1, got %v", seq)
	}

	first := log.Cases["case_1"].Events[0]
	if len(first.Resources) != 1 || first.Resources[0] != "user_1" {
		t.Errorf("Expected user_1 as resource, got %v", first.Resources)
	}
	if first.Timestamp.IsZero() {
		t.Error("Expected the date field to be parsed")
	}
}

func TestLogFromStringEmpty(t *testing.T) {
	log := LogFromString("")
	if log.NumCases() != 0 {
		t.Errorf("Expected empty log, got %d cases", log.NumCases())
	}
}
