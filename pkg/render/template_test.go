package render

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/docmodel"
)

const testTemplate = `<html><body>
<h1>{{slot "title"}}</h1>
<p>{{slot "created_date"}}</p>
<div>{{slot "body"}}</div>
<p>{{slot "title"}}</p>
</body></html>`

func writeTemplate(t *testing.T, src string) *Template {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.html.tmpl")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	tpl, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	return tpl
}

func TestLoadTemplateCollectsSlotsInOrder(t *testing.T) {
	t.Parallel()

	tpl := writeTemplate(t, testTemplate)
	// Repeated anchors count once, in first-seen order.
	want := []string{"title", "created_date", "body"}
	if got := tpl.Slots(); !reflect.DeepEqual(got, want) {
		t.Errorf("Slots() = %v, want %v", got, want)
	}
}

func TestLoadTemplateMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadTemplate(filepath.Join(t.TempDir(), "absent.tmpl")); err == nil {
		t.Fatal("missing template accepted")
	}
}

func TestMergeFillsAnchors(t *testing.T) {
	t.Parallel()

	tpl := writeTemplate(t, testTemplate)
	patches := docmodel.PatchSet{}
	patches.Set("title", docmodel.Text{Value: "Acme Holdings"})
	patches.Set("created_date", docmodel.Text{Value: "3rd March 2026"})
	patches.Set("body", docmodel.Paragraph{Children: []docmodel.Node{
		docmodel.Text{Value: "summary", Bold: true},
	}})

	out, err := tpl.Merge(patches)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "Acme Holdings") {
		t.Error("title not merged")
	}
	if !strings.Contains(html, "<b>summary</b>") {
		t.Errorf("body paragraph not rendered: %s", html)
	}
	if strings.Contains(html, "{{") {
		t.Error("unexpanded template action in output")
	}
}

// The slot scan executes a template; merging must still work afterwards,
// and more than once, on the same loaded template.
func TestMergeAfterSlotScan(t *testing.T) {
	t.Parallel()

	tpl, err := ParseTemplate([]byte(`<p>{{slot "title"}}</p>`))
	if err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	for i := 0; i < 3; i++ {
		patches := docmodel.PatchSet{}
		patches.Set("title", docmodel.Text{Value: "Acme Holdings"})
		out, err := tpl.Merge(patches)
		if err != nil {
			t.Fatalf("Merge #%d: %v", i+1, err)
		}
		if !strings.Contains(string(out), "Acme Holdings") {
			t.Fatalf("Merge #%d output = %q", i+1, out)
		}
	}
}

func TestMergeRejectsMismatchedPatchSet(t *testing.T) {
	t.Parallel()

	tpl := writeTemplate(t, testTemplate)

	missing := docmodel.PatchSet{}
	missing.Set("title", docmodel.Text{Value: "x"})
	if _, err := tpl.Merge(missing); err == nil {
		t.Fatal("partial patch set accepted")
	}

	extra := docmodel.PatchSet{}
	extra.Set("title", docmodel.Text{Value: "x"})
	extra.Set("created_date", docmodel.Text{Value: "x"})
	extra.Set("body", docmodel.Text{Value: "x"})
	extra.Set("rogue", docmodel.Text{Value: "x"})
	if _, err := tpl.Merge(extra); err == nil {
		t.Fatal("extra patch key accepted")
	}
}

func TestMergeConcurrent(t *testing.T) {
	t.Parallel()

	tpl := writeTemplate(t, testTemplate)
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			patches := docmodel.PatchSet{}
			patches.Set("title", docmodel.Text{Value: "t"})
			patches.Set("created_date", docmodel.Text{Value: "d"})
			patches.Set("body", docmodel.Text{Value: "b"})
			_, err := tpl.Merge(patches)
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent merge: %v", err)
		}
	}
}

func TestShippedTemplateMatchesAssemblerContract(t *testing.T) {
	t.Parallel()

	tpl, err := LoadTemplate(filepath.Join("..", "..", "templates", "report.html.tmpl"))
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	slots := tpl.Slots()
	if len(slots) != 50 {
		t.Errorf("shipped template declares %d slots, want 50", len(slots))
	}
	seen := make(map[string]bool)
	for _, s := range slots {
		if seen[s] {
			t.Errorf("duplicate slot %q", s)
		}
		seen[s] = true
	}
}
