// Package render merges a patch set into the report template and derives
// the print-ready artifact from the result.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/docmodel"
)

// Template is the parsed report template plus the slot contract it
// declares. Slot anchors appear in the asset as {{slot "name"}} calls; the
// declared set is extracted once at load time so patch/template mismatches
// surface before any artifact is written.
type Template struct {
	tpl   *template.Template
	slots []string
}

// LoadTemplate parses the template asset and records every slot it
// declares, in declaration order.
func LoadTemplate(path string) (*Template, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return ParseTemplate(src)
}

// ParseTemplate parses template source held in memory (embedded assets).
func ParseTemplate(src []byte) (*Template, error) {
	var declared []string
	seen := make(map[string]bool)
	collect := template.FuncMap{
		"slot": func(name string) template.HTML {
			if !seen[name] {
				seen[name] = true
				declared = append(declared, name)
			}
			return ""
		},
	}

	// Dry-run execution on a throwaway parse records the declared slot
	// set. html/template forbids Clone after execution, so the template
	// kept for merging must never be the one that ran the scan.
	scan, err := template.New("report").Funcs(collect).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	if err := scan.Execute(io.Discard, nil); err != nil {
		return nil, fmt.Errorf("scan template slots: %w", err)
	}

	tpl, err := template.New("report").Funcs(template.FuncMap{
		"slot": func(string) template.HTML { return "" },
	}).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Template{tpl: tpl, slots: declared}, nil
}

// Slots returns the slot names the template declares, in declaration order.
func (t *Template) Slots() []string {
	out := make([]string, len(t.slots))
	copy(out, t.slots)
	return out
}

// Merge validates the patch set against the declared slot contract and
// executes the template with each anchor replaced by its rendered content.
func (t *Template) Merge(patches docmodel.PatchSet) ([]byte, error) {
	if err := patches.Validate(t.slots); err != nil {
		return nil, err
	}

	// Clone per merge: Funcs rebinding on the shared template would race
	// with concurrent requests.
	tpl, err := t.tpl.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone template: %w", err)
	}
	tpl.Funcs(template.FuncMap{
		"slot": func(name string) template.HTML {
			return NodesHTML(patches[name])
		},
	})

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("merge patches: %w", err)
	}
	return buf.Bytes(), nil
}
