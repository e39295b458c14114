// Package notify publishes report status events. Delivery is at most once
// per event and loss is acceptable: events carry status, never
// authoritative state.
package notify

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/jsonutil"
)

// Stage identifies where in the pipeline a status event was emitted.
type Stage string

const (
	StageAssembling Stage = "assembling"
	StageRendering  Stage = "rendering"
	StageUploading  Stage = "uploading"
	StageCompleted  Stage = "completed"
	StageFailed     Stage = "failed"
)

// Event is the JSON status payload pushed to connected clients.
type Event struct {
	SessionID  string    `json:"session_id"`
	EnsID      string    `json:"ens_id,omitempty"`
	Stage      Stage     `json:"stage"`
	PrimaryURL string    `json:"primary_url,omitempty"`
	DerivedURL string    `json:"derived_url,omitempty"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher fans status events out over NATS core subjects. Fire and
// forget: publish errors are logged, never propagated, because generation
// must not depend on notification delivery.
type Publisher struct {
	nc      *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewPublisher wires a status publisher. subjectPrefix defaults to
// "reports.status"; events go to "<prefix>.<session_id>".
func NewPublisher(nc *nats.Conn, subjectPrefix string, logger *slog.Logger) *Publisher {
	if subjectPrefix == "" {
		subjectPrefix = "reports.status"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{nc: nc, subject: subjectPrefix, logger: logger}
}

// Publish pushes one status event. Never returns an error.
func (p *Publisher) Publish(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	data, err := jsonutil.Marshal(ev)
	if err != nil {
		p.logger.Warn("encode status event", "error", err)
		return
	}
	subject := fmt.Sprintf("%s.%s", p.subject, ev.SessionID)
	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Warn("publish status event", "subject", subject, "error", err)
	}
}
