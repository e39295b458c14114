// Package reportgen orchestrates one report generation end to end:
// assemble → render → export, with status fan-out at each stage.
package reportgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/assemble"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/export"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/notify"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/render"
)

// Exporter is the export-stage boundary.
type Exporter interface {
	Export(ctx context.Context, artifacts *render.Artifacts, destinationID, baseName string) (*export.Result, error)
}

// Notifier pushes status events to connected clients. Fire and forget.
type Notifier interface {
	Publish(notify.Event)
}

// SessionStore records the latest status per session for late readers.
type SessionStore interface {
	Put(ctx context.Context, ev notify.Event) error
}

// Metrics receives pipeline observations.
type Metrics interface {
	ReportOutcome(outcome string)
	UploadFailure()
	CleanupFailure()
	ObserveStage(stage string, d time.Duration)
}

// Result is the outcome of one generation. Warnings carry non-fatal upload
// and cleanup failures; an empty URL next to a warning means that
// artifact's upload failed (degraded success).
type Result struct {
	GenerationID string
	PrimaryURL   string
	DerivedURL   string
	Warnings     []error
}

// Degraded reports whether the generation succeeded with warnings.
func (r *Result) Degraded() bool {
	return len(r.Warnings) > 0
}

// Generator wires the pipeline stages. All collaborators are constructed
// once at process start and passed in; the generator holds no per-request
// state and is safe for concurrent use.
type Generator struct {
	Assembler *assemble.Assembler
	Renderer  *render.Renderer
	Exporter  Exporter
	Notifier  Notifier
	Sessions  SessionStore
	Metrics   Metrics
	Logger    *slog.Logger
}

// Generate runs the full pipeline for one record. Fatal stage errors come
// back wrapped in their kind with the original cause attached; non-fatal
// upload/cleanup problems surface as warnings on the Result.
func (g *Generator) Generate(ctx context.Context, record *assemble.Record) (*Result, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sessionID := record.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	genID := uuid.NewString()
	logger = logger.With("generation_id", genID, "session", sessionID, "entity", record.Name)

	g.status(ctx, notify.Event{SessionID: sessionID, EnsID: record.EnsID, Stage: notify.StageAssembling})

	start := time.Now()
	patches, err := g.Assembler.Assemble(record)
	g.observe("assemble", start)
	if err != nil {
		return nil, g.fail(ctx, logger, sessionID, record.EnsID, fmt.Errorf("%w: %w", ErrAssembly, err))
	}

	g.status(ctx, notify.Event{SessionID: sessionID, EnsID: record.EnsID, Stage: notify.StageRendering})

	start = time.Now()
	artifacts, err := g.Renderer.Render(ctx, patches, record.Name)
	g.observe("render", start)
	if err != nil {
		return nil, g.fail(ctx, logger, sessionID, record.EnsID, fmt.Errorf("%w: %w", ErrRender, err))
	}

	g.status(ctx, notify.Event{SessionID: sessionID, EnsID: record.EnsID, Stage: notify.StageUploading})

	start = time.Now()
	exported, err := g.Exporter.Export(ctx, artifacts, record.EnsID, record.Name)
	g.observe("export", start)
	if err != nil {
		return nil, g.fail(ctx, logger, sessionID, record.EnsID, fmt.Errorf("%w: %w", ErrExport, err))
	}

	res := &Result{
		GenerationID: genID,
		PrimaryURL:   exported.PrimaryURL,
		DerivedURL:   exported.DerivedURL,
		Warnings:     exported.Warnings,
	}
	g.countWarnings(exported.Warnings)

	outcome := "ok"
	if res.Degraded() {
		outcome = "degraded"
		logger.Warn("report generated with warnings", "warnings", len(res.Warnings))
	} else {
		logger.Info("report generated", "primary_url", res.PrimaryURL, "derived_url", res.DerivedURL)
	}
	if g.Metrics != nil {
		g.Metrics.ReportOutcome(outcome)
	}

	g.status(ctx, notify.Event{
		SessionID:  sessionID,
		EnsID:      record.EnsID,
		Stage:      notify.StageCompleted,
		PrimaryURL: res.PrimaryURL,
		DerivedURL: res.DerivedURL,
	})
	return res, nil
}

func (g *Generator) fail(ctx context.Context, logger *slog.Logger, sessionID, ensID string, err error) error {
	logger.Error("report generation failed", "error", err)
	if g.Metrics != nil {
		g.Metrics.ReportOutcome("failed")
	}
	g.status(ctx, notify.Event{SessionID: sessionID, EnsID: ensID, Stage: notify.StageFailed, Error: err.Error()})
	return err
}

// status pushes an event and records it for late readers. Both paths are
// best effort.
func (g *Generator) status(ctx context.Context, ev notify.Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	if g.Notifier != nil {
		g.Notifier.Publish(ev)
	}
	if g.Sessions != nil {
		if err := g.Sessions.Put(ctx, ev); err != nil && g.Logger != nil {
			g.Logger.Warn("record session status", "error", err)
		}
	}
}

func (g *Generator) observe(stage string, start time.Time) {
	if g.Metrics != nil {
		g.Metrics.ObserveStage(stage, time.Since(start))
	}
}

func (g *Generator) countWarnings(warnings []error) {
	if g.Metrics == nil {
		return
	}
	for _, w := range warnings {
		switch {
		case errors.Is(w, export.ErrUpload):
			g.Metrics.UploadFailure()
		case errors.Is(w, export.ErrCleanup):
			g.Metrics.CleanupFailure()
		}
	}
}
