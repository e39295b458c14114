package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/jsonutil"
)

func TestEventEncoding(t *testing.T) {
	t.Parallel()

	ev := Event{
		SessionID:  "sess-1",
		EnsID:      "ens-42",
		Stage:      StageCompleted,
		PrimaryURL: "nats://ens-42/a.html",
		Timestamp:  time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC),
	}
	data, err := jsonutil.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"session_id":"sess-1"`, `"stage":"completed"`, `"primary_url"`} {
		if !strings.Contains(s, want) {
			t.Errorf("payload %s missing %s", s, want)
		}
	}
	// Optional fields stay off the wire when empty.
	if strings.Contains(s, "derived_url") || strings.Contains(s, `"error"`) {
		t.Errorf("empty optional fields encoded: %s", s)
	}
}

func TestStageValues(t *testing.T) {
	t.Parallel()

	stages := []Stage{StageAssembling, StageRendering, StageUploading, StageCompleted, StageFailed}
	seen := make(map[Stage]bool)
	for _, s := range stages {
		if s == "" || seen[s] {
			t.Errorf("stage %q empty or duplicated", s)
		}
		seen[s] = true
	}
}
