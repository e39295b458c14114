package render

import (
	"context"
	"fmt"
	"os"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/docmodel"
)

// ConvertJob describes one primary→print conversion. SourcePath is the
// merged primary artifact on disk; the patch material and its slot order
// are included so converters that re-render natively don't need to parse
// the source back.
type ConvertJob struct {
	SourcePath string
	DestPath   string
	Title      string
	Slots      []string
	Patches    docmodel.PatchSet
}

// Converter derives the print-ready artifact from a rendered primary
// document. Implementations may be slow and may fail independently of
// patch assembly; callers report their errors as render-stage failures.
type Converter interface {
	Convert(ctx context.Context, job ConvertJob) error
}

// ChromeConverter prints the primary HTML artifact to PDF through a
// headless Chrome instance. The browser is an external process: treat
// conversions as slow and bound them with the caller's context.
type ChromeConverter struct {
	// ExecPath overrides the browser binary location. Empty uses the
	// chromedp default lookup.
	ExecPath string
}

func (c *ChromeConverter) Convert(ctx context.Context, job ConvertJob) error {
	if _, err := os.Stat(job.SourcePath); err != nil {
		return fmt.Errorf("convert source: %w", err)
	}

	opts := chromedp.DefaultExecAllocatorOptions[:]
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+job.SourcePath),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("print to pdf: %w", err)
	}
	if err := os.WriteFile(job.DestPath, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
