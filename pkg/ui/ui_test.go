package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func plainPrinter(buf *bytes.Buffer) *Printer {
	return NewPrinter(buf, true)
}

func TestSuccessPrintsBothURLs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	plainPrinter(&buf).Success("Acme Holdings", "nats://ens-42/a.html", "nats://ens-42/a.pdf")

	out := buf.String()
	for _, want := range []string{"✓ Acme Holdings", "primary: nats://ens-42/a.html", "derived: nats://ens-42/a.pdf"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestURLMissingMarksFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	plainPrinter(&buf).URL("derived", "")
	if !strings.Contains(buf.String(), "(upload failed)") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWarnAndError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := plainPrinter(&buf)
	p.Warn("cleanup failed for /tmp/x.pdf")
	p.Error("Acme Holdings", errors.New("render failed"))

	out := buf.String()
	if !strings.Contains(out, "! cleanup failed") {
		t.Errorf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "✗ Acme Holdings: render failed") {
		t.Errorf("error line missing: %q", out)
	}
}

func TestNoColorStripsStyling(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	plainPrinter(&buf).Success("X", "u1", "u2")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("ANSI escapes in no-color output: %q", buf.String())
	}
}
