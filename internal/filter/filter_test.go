package filter

import (
	"testing"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

func ev(level, id, msg string) *types.Event {
	return &types.Event{Level: level, Timestamp: "t", Provider: "p", EventID: id, Message: msg}
}

func TestMatch_NoCriteria(t *testing.T) {
	f := New(nil, nil, "")
	keep, err := f.Match(ev("Error", "4624", "anything"))
	if err != nil || !keep {
		t.Errorf("Match = %v, %v; want true, nil", keep, err)
	}
	// Unparseable EventID is fine while no ID criterion is configured.
	keep, err = f.Match(ev("Error", "not-a-number", "x"))
	if err != nil || !keep {
		t.Errorf("Match = %v, %v; want true, nil", keep, err)
	}
}

func TestMatch_Levels(t *testing.T) {
	f := New([]string{"error"}, nil, "")
	levels := []string{"Error", "Warning", "Error"}
	var kept []string
	for _, l := range levels {
		if keep, _ := f.Match(ev(l, "1", "m")); keep {
			kept = append(kept, l)
		}
	}
	if len(kept) != 2 || kept[0] != "Error" || kept[1] != "Error" {
		t.Errorf("kept = %v, want the two Error events in order", kept)
	}
}

func TestMatch_LevelNormalized(t *testing.T) {
	f := New([]string{"FALHA DA AUDITORIA"}, nil, "")
	if keep, _ := f.Match(ev(" Falha da Auditoria ", "1", "m")); !keep {
		t.Error("level match should ignore case and surrounding whitespace")
	}
}

func TestMatch_IDs(t *testing.T) {
	f := New(nil, []int{4624}, "")
	// Trailing whitespace in the EventID field is trimmed before parsing.
	if keep, err := f.Match(ev("Error", "4624 ", "m")); err != nil || !keep {
		t.Errorf("Match(\"4624 \") = %v, %v; want true, nil", keep, err)
	}
	if keep, _ := f.Match(ev("Error", "4625", "m")); keep {
		t.Error("non-member ID should be dropped")
	}
}

func TestMatch_IDParseFailure(t *testing.T) {
	f := New(nil, []int{4624}, "")
	keep, err := f.Match(ev("Error", "46x4", "m"))
	if err == nil {
		t.Fatal("expected error for non-numeric EventID under an ID criterion")
	}
	if keep {
		t.Error("unparseable EventID must not match")
	}
}

func TestMatch_Search(t *testing.T) {
	f := New(nil, nil, "LOGON")
	if keep, _ := f.Match(ev("Error", "1", "An account failed to logon")); !keep {
		t.Error("search should be case-insensitive")
	}
	if keep, _ := f.Match(ev("Error", "1", "disk full")); keep {
		t.Error("non-matching search should drop")
	}
}

func TestMatch_AndCombined(t *testing.T) {
	f := New([]string{"error"}, []int{10}, "needle")
	if keep, _ := f.Match(ev("Error", "10", "has needle inside")); !keep {
		t.Error("all criteria match, should keep")
	}
	if keep, _ := f.Match(ev("Warning", "10", "has needle inside")); keep {
		t.Error("level mismatch should drop despite other matches")
	}
	if keep, _ := f.Match(ev("Error", "11", "has needle inside")); keep {
		t.Error("ID mismatch should drop despite other matches")
	}
	if keep, _ := f.Match(ev("Error", "10", "nothing here")); keep {
		t.Error("search mismatch should drop despite other matches")
	}
}
