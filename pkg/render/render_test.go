package render

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/docmodel"
)

// fakeConverter writes a fixed payload to the destination, or fails.
type fakeConverter struct {
	payload []byte
	err     error
	gotJob  ConvertJob
}

func (f *fakeConverter) Convert(ctx context.Context, job ConvertJob) error {
	f.gotJob = job
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(job.DestPath, f.payload, 0o644)
}

func fullPatches() docmodel.PatchSet {
	patches := docmodel.PatchSet{}
	patches.Set("title", docmodel.Text{Value: "Acme"})
	patches.Set("created_date", docmodel.Text{Value: "3rd March 2026"})
	patches.Set("body", docmodel.Text{Value: "content"})
	return patches
}

func TestRendererProducesBothArtifacts(t *testing.T) {
	t.Parallel()

	tpl := writeTemplate(t, testTemplate)
	conv := &fakeConverter{payload: []byte("%PDF-fake")}
	r := NewRenderer(tpl, conv, nil)

	artifacts, err := r.Render(context.Background(), fullPatches(), "Acme")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(artifacts.Primary), "Acme") {
		t.Error("primary artifact missing merged content")
	}
	if string(artifacts.Derived) != "%PDF-fake" {
		t.Errorf("derived artifact = %q", artifacts.Derived)
	}
	if artifacts.Title != "Acme" {
		t.Errorf("title = %q", artifacts.Title)
	}
	if conv.gotJob.Title != "Acme" || len(conv.gotJob.Slots) != 3 {
		t.Errorf("convert job = %+v", conv.gotJob)
	}
}

func TestRendererMergeFailureProducesNothing(t *testing.T) {
	t.Parallel()

	tpl := writeTemplate(t, testTemplate)
	conv := &fakeConverter{payload: []byte("x")}
	r := NewRenderer(tpl, conv, nil)

	partial := docmodel.PatchSet{}
	partial.Set("title", docmodel.Text{Value: "Acme"})
	artifacts, err := r.Render(context.Background(), partial, "Acme")
	if err == nil {
		t.Fatal("mismatched patch set accepted")
	}
	if artifacts != nil {
		t.Error("partial artifacts returned on merge failure")
	}
	if conv.gotJob.SourcePath != "" {
		t.Error("converter ran despite merge failure")
	}
}

func TestRendererConversionFailureProducesNothing(t *testing.T) {
	t.Parallel()

	tpl := writeTemplate(t, testTemplate)
	r := NewRenderer(tpl, &fakeConverter{err: errors.New("browser crashed")}, nil)

	artifacts, err := r.Render(context.Background(), fullPatches(), "Acme")
	if err == nil {
		t.Fatal("conversion failure not propagated")
	}
	if artifacts != nil {
		t.Error("partial artifacts returned on conversion failure")
	}
}

func TestRendererCleansScratchDir(t *testing.T) {
	t.Parallel()

	tpl := writeTemplate(t, testTemplate)
	conv := &fakeConverter{payload: []byte("x")}
	r := NewRenderer(tpl, conv, nil)

	if _, err := r.Render(context.Background(), fullPatches(), "Acme"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := os.Stat(conv.gotJob.SourcePath); !os.IsNotExist(err) {
		t.Errorf("scratch source still present: %v", err)
	}
}

func TestFormatExt(t *testing.T) {
	t.Parallel()

	if got := FormatPrimary.Ext(); got != "html" {
		t.Errorf("primary ext = %q", got)
	}
	if got := FormatDerived.Ext(); got != "pdf" {
		t.Errorf("derived ext = %q", got)
	}
}
