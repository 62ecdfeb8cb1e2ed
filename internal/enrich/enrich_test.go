package enrich

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/lookup"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/testutil"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

func TestApply_DetailsAndExplanation(t *testing.T) {
	var calls atomic.Int64
	lk := func(ctx context.Context, id string) (string, error) {
		calls.Add(1)
		return "explanation for " + id, nil
	}
	e := New(lk, true, nil)
	events := []types.Event{
		{EventID: "4625", Message: "Account Name: jdoe", Explanation: types.ExplanationNA},
	}
	e.Apply(context.Background(), events)
	if events[0].Details["Account Name"] != "jdoe" {
		t.Errorf("Details = %v", events[0].Details)
	}
	if events[0].Explanation != "explanation for 4625" {
		t.Errorf("Explanation = %q", events[0].Explanation)
	}
	if calls.Load() != 1 {
		t.Errorf("lookup calls = %d, want 1", calls.Load())
	}
}

func TestApply_SharedIDLooksUpOnce(t *testing.T) {
	var calls atomic.Int64
	lk := func(ctx context.Context, id string) (string, error) {
		calls.Add(1)
		return "shared", nil
	}
	e := New(lk, true, nil)
	events := []types.Event{
		{EventID: "4624", Message: "a"},
		{EventID: "4624", Message: "b"},
		{EventID: "4624", Message: "c"},
	}
	e.Apply(context.Background(), events)
	if calls.Load() != 1 {
		t.Errorf("lookup calls = %d, want exactly 1 for a shared EventID", calls.Load())
	}
	for i := range events {
		if events[i].Explanation != "shared" {
			t.Errorf("events[%d].Explanation = %q", i, events[i].Explanation)
		}
	}
}

func TestApply_Disabled(t *testing.T) {
	lk := func(ctx context.Context, id string) (string, error) {
		t.Error("lookup must not be called when disabled")
		return "", nil
	}
	e := New(lk, false, nil)
	events := []types.Event{{EventID: "1", Message: "m"}}
	e.Apply(context.Background(), events)
	if events[0].Explanation != types.ExplanationNA {
		t.Errorf("Explanation = %q, want N/A", events[0].Explanation)
	}
}

func TestExplain_FailureDegradesAndIsNotRetried(t *testing.T) {
	var calls atomic.Int64
	lk := func(ctx context.Context, id string) (string, error) {
		calls.Add(1)
		return "", errors.New("network down")
	}
	var diag strings.Builder
	e := New(lk, true, &diag)
	if got := e.Explain(context.Background(), "99"); got != types.ExplanationNA {
		t.Errorf("Explain = %q, want N/A", got)
	}
	if got := e.Explain(context.Background(), "99"); got != types.ExplanationNA {
		t.Errorf("Explain = %q, want N/A", got)
	}
	if calls.Load() != 1 {
		t.Errorf("lookup calls = %d, failed lookup must not be retried in the same run", calls.Load())
	}
	if !strings.Contains(diag.String(), "lookup for event id 99 failed") {
		t.Errorf("diagnostic missing: %q", diag.String())
	}
}

func TestExplain_EmptyEventID(t *testing.T) {
	lk := func(ctx context.Context, id string) (string, error) {
		t.Error("lookup must not be called for an empty EventID")
		return "", nil
	}
	e := New(lk, true, nil)
	if got := e.Explain(context.Background(), ""); got != types.ExplanationNA {
		t.Errorf("Explain(\"\") = %q", got)
	}
}

func TestApply_AgainstStubEncyclopedia(t *testing.T) {
	srv := testutil.NewLookupServer("An account was successfully logged on.")
	defer srv.Close()
	client := lookup.NewClient(srv.URL, 2*time.Second)
	e := New(client.Explain, true, nil)
	events := []types.Event{
		{EventID: "4624", Message: "x"},
		{EventID: "4624", Message: "y"},
	}
	e.Apply(context.Background(), events)
	if srv.Hits() != 1 {
		t.Errorf("stub hits = %d, want 1 (cache must absorb the repeat)", srv.Hits())
	}
	if events[1].Explanation != "An account was successfully logged on." {
		t.Errorf("Explanation = %q", events[1].Explanation)
	}
}

func TestApply_FailingEncyclopedia(t *testing.T) {
	srv := testutil.NewFailingLookupServer()
	defer srv.Close()
	client := lookup.NewClient(srv.URL, 2*time.Second)
	var diag strings.Builder
	e := New(client.Explain, true, &diag)
	events := []types.Event{{EventID: "1", Message: "m"}}
	e.Apply(context.Background(), events)
	if events[0].Explanation != types.ExplanationNA {
		t.Errorf("Explanation = %q, want N/A", events[0].Explanation)
	}
	if diag.Len() == 0 {
		t.Error("expected a diagnostic for the failed lookup")
	}
}
