package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/docmodel"
)

// Format distinguishes the two artifact kinds a render produces.
type Format string

const (
	// FormatPrimary is the merged document artifact.
	FormatPrimary Format = "primary"
	// FormatDerived is the print-ready artifact converted from it.
	FormatDerived Format = "derived"
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatDerived {
		return "pdf"
	}
	return "html"
}

// Artifacts holds both rendered outputs of one generation.
type Artifacts struct {
	Primary []byte
	Derived []byte
	Title   string
}

// Renderer merges patch sets into the template and drives the converter.
// Construct once; safe for concurrent use.
type Renderer struct {
	tpl       *Template
	converter Converter
	logger    *slog.Logger
}

// NewRenderer wires a renderer from its collaborators. A nil logger falls
// back to slog.Default.
func NewRenderer(tpl *Template, conv Converter, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{tpl: tpl, converter: conv, logger: logger}
}

// Slots exposes the template's declared slot contract.
func (r *Renderer) Slots() []string {
	return r.tpl.Slots()
}

// Render merges the patch set into the template and converts the result
// into the derived print form. Merge failures (patch/template mismatch)
// and conversion failures are both render-stage errors; no partial
// artifacts are returned.
func (r *Renderer) Render(ctx context.Context, patches docmodel.PatchSet, title string) (*Artifacts, error) {
	primary, err := r.tpl.Merge(patches)
	if err != nil {
		return nil, err
	}

	// The converter boundary is file-based; stage the primary artifact in
	// a scratch directory for the duration of the conversion.
	dir, err := os.MkdirTemp("", "report-render-*")
	if err != nil {
		return nil, fmt.Errorf("scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	srcPath := filepath.Join(dir, "primary."+FormatPrimary.Ext())
	dstPath := filepath.Join(dir, "derived."+FormatDerived.Ext())
	if err := os.WriteFile(srcPath, primary, 0o644); err != nil {
		return nil, fmt.Errorf("stage primary artifact: %w", err)
	}

	r.logger.Debug("converting artifact", "source", srcPath)
	if err := r.converter.Convert(ctx, ConvertJob{
		SourcePath: srcPath,
		DestPath:   dstPath,
		Title:      title,
		Slots:      r.tpl.Slots(),
		Patches:    patches,
	}); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	derived, err := os.ReadFile(dstPath)
	if err != nil {
		return nil, fmt.Errorf("read derived artifact: %w", err)
	}

	return &Artifacts{Primary: primary, Derived: derived, Title: title}, nil
}
