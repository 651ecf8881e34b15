package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/textwire/internal/harness"
	"github.com/roach88/textwire/internal/unixtime"
	"github.com/roach88/textwire/internal/wire"
)

// runNamespace scopes run IDs so they never collide with other
// name-based UUIDs.
var runNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/roach88/textwire/runs"))

// Run is one recorded scenario execution.
type Run struct {
	ID        string
	Scenario  string
	StartedAt unixtime.Millis
	Pass      bool
	Errors    []string

	// Events is populated by ReadRun only.
	Events []Event
}

// Event is one evaluated case of a run.
type Event struct {
	Seq       int64
	Case      string
	Codec     string
	Op        string
	Input     string
	InputKind string
	Output    string
	Error     string
	Message   string
}

// NewRun builds the record of a harness result. The ID is derived from
// the start time (at millisecond resolution) and the canonical trace
// snapshot, so identical runs share an ID.
func NewRun(scenario string, startedAt time.Time, result *harness.Result) (Run, error) {
	snapshot, err := harness.Snapshot(scenario, result)
	if err != nil {
		return Run{}, fmt.Errorf("snapshot run: %w", err)
	}

	at := unixtime.At[unixtime.Millisecond](startedAt)
	key, err := wire.MarshalCanonical(map[string]any{
		"started_at": at.String(),
		"snapshot":   string(snapshot),
	})
	if err != nil {
		return Run{}, fmt.Errorf("run id: %w", err)
	}

	events := make([]Event, len(result.Trace))
	for i, e := range result.Trace {
		events[i] = Event{
			Seq:       e.Seq,
			Case:      e.Case,
			Codec:     e.Codec,
			Op:        e.Op,
			Input:     harness.InputText(e.Input),
			InputKind: wire.Kind(e.Input),
			Output:    e.Output,
			Error:     e.Error,
			Message:   e.Message,
		}
	}

	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}

	return Run{
		ID:        uuid.NewSHA1(runNamespace, key).String(),
		Scenario:  scenario,
		StartedAt: at,
		Pass:      result.Pass,
		Errors:    errs,
		Events:    events,
	}, nil
}
