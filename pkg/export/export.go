// Package export persists rendered artifacts to durable storage and cleans
// up the local transient copies.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/render"
)

// ErrUpload marks a failed remote write. Upload failures degrade the
// result (empty URL plus a warning) instead of aborting the pipeline.
var ErrUpload = errors.New("export: upload failed")

// ErrCleanup marks a failed local deletion. Non-fatal; the returned URLs
// are unaffected.
var ErrCleanup = errors.New("export: cleanup failed")

// Uploader is the remote blob-store boundary.
type Uploader interface {
	// Upload writes blob under container/name and returns its durable URL.
	Upload(ctx context.Context, container, name string, blob []byte) (string, error)
}

// Result carries the remote URLs of both artifacts plus any non-fatal
// warnings (failed uploads, failed cleanup) the caller should surface.
type Result struct {
	PrimaryURL string
	DerivedURL string
	Warnings   []error
}

// Pipeline writes artifacts to a transient directory, uploads both to the
// blob store and then deletes the local copies. Cleanup always runs, even
// when an upload failed, so transient files never leak.
type Pipeline struct {
	uploader Uploader
	workdir  string
	logger   *slog.Logger
}

// NewPipeline wires an export pipeline. workdir is the transient staging
// directory (empty means the OS temp dir); a nil logger falls back to
// slog.Default.
func NewPipeline(uploader Uploader, workdir string, logger *slog.Logger) *Pipeline {
	if workdir == "" {
		workdir = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{uploader: uploader, workdir: workdir, logger: logger}
}

// Export persists both artifacts under <destinationID>/<baseName>.<ext>.
// The two uploads run concurrently; they are independent and
// order-insensitive. No retries happen here — retry policy belongs to the
// caller. The returned error is reserved for staging failures; upload and
// cleanup problems come back as warnings on the Result.
func (p *Pipeline) Export(ctx context.Context, artifacts *render.Artifacts, destinationID, baseName string) (*Result, error) {
	type artifact struct {
		format render.Format
		data   []byte
	}
	pair := []artifact{
		{render.FormatPrimary, artifacts.Primary},
		{render.FormatDerived, artifacts.Derived},
	}

	// Stage both files first so cleanup has a fixed set to work from.
	paths := make([]string, len(pair))
	for i, a := range pair {
		paths[i] = filepath.Join(p.workdir, baseName+"."+a.format.Ext())
		if err := os.WriteFile(paths[i], a.data, 0o644); err != nil {
			p.cleanup(paths[:i])
			return nil, fmt.Errorf("stage %s artifact: %w", a.format, err)
		}
	}

	urls := make([]string, len(pair))
	errs := make([]error, len(pair))
	var wg sync.WaitGroup
	for i, a := range pair {
		wg.Add(1)
		go func(i int, a artifact) {
			defer wg.Done()
			name := baseName + "." + a.format.Ext()
			url, err := p.uploader.Upload(ctx, destinationID, name, a.data)
			if err != nil {
				errs[i] = fmt.Errorf("%w: %s %s: %v", ErrUpload, a.format, name, err)
				return
			}
			urls[i] = url
		}(i, a)
	}
	wg.Wait()

	res := &Result{PrimaryURL: urls[0], DerivedURL: urls[1]}
	for _, err := range errs {
		if err != nil {
			p.logger.Warn("artifact upload failed", "error", err)
			res.Warnings = append(res.Warnings, err)
		}
	}

	// Cleanup is unconditional: a failed upload must not leave transient
	// files behind.
	for _, err := range p.cleanup(paths) {
		p.logger.Warn("transient cleanup failed", "error", err)
		res.Warnings = append(res.Warnings, err)
	}

	return res, nil
}

func (p *Pipeline) cleanup(paths []string) []error {
	var errs []error
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrCleanup, path, err))
		}
	}
	return errs
}
