// Package compose turns raw multi-line strings into ordered paragraph/run
// trees for the report document model.
package compose

import (
	"regexp"
	"strings"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/docmodel"
)

var (
	lineBreaks = regexp.MustCompile(`\n+`)
	blankLines = regexp.MustCompile(`\n{2,}`)
)

// Style carries optional run styling applied to every composed run.
type Style struct {
	Bold          bool
	SpacingBefore int
	SpacingAfter  int
}

// Compose splits raw on blank-line boundaries and produces one paragraph
// per non-empty segment. Within a segment the first line carries no leading
// break; subsequent lines carry an explicit break run so multi-line details
// stay visually separated without extra paragraph spacing. Empty or
// whitespace-only input yields an empty sequence.
func Compose(raw string, style Style) []docmodel.Node {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	var out []docmodel.Node
	for _, seg := range blankLines.Split(trimmed, -1) {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		var runs []docmodel.Node
		for i, line := range strings.Split(seg, "\n") {
			runs = append(runs, docmodel.Text{Value: line, Bold: style.Bold, Break: i > 0})
		}
		out = append(out, docmodel.Paragraph{
			SpacingBefore: style.SpacingBefore,
			SpacingAfter:  style.SpacingAfter,
			Children:      runs,
		})
	}
	return out
}

// Lines splits raw into break-separated runs inside a single paragraph:
// the first line plain, every following line prefixed with a line break.
func Lines(raw string) []docmodel.Node {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	var runs []docmodel.Node
	for i, line := range lineBreaks.Split(trimmed, -1) {
		runs = append(runs, docmodel.Text{Value: line, Break: i > 0})
	}
	return runs
}

// BreakParagraphs splits raw on one-or-more line breaks and renders each
// segment as its own paragraph whose run carries a leading break, spacing
// the overall summary without paragraph margins.
func BreakParagraphs(raw string) []docmodel.Node {
	var out []docmodel.Node
	for _, seg := range lineBreaks.Split(raw, -1) {
		out = append(out, docmodel.Paragraph{
			Children: []docmodel.Node{docmodel.Text{Value: seg, Break: true}},
		})
	}
	return out
}

// Bulleted renders each input element as its own bulleted paragraph with
// fixed pre/post spacing. Multi-line elements become break-separated runs
// within the bullet, followed by a trailing break to pad the list entry.
// Used for the narrative risk-area summaries.
func Bulleted(lines []string) []docmodel.Node {
	var out []docmodel.Node
	for _, entry := range lines {
		runs := Lines(entry)
		if runs == nil {
			continue
		}
		runs = append(runs, docmodel.Text{Break: true})
		out = append(out, docmodel.Paragraph{
			SpacingBefore: 300,
			SpacingAfter:  300,
			Bullet:        true,
			Children:      runs,
		})
	}
	return out
}

// ParagraphPerLine renders each physical line of raw as its own plain
// paragraph. Used for shareholder and key-executive lists.
func ParagraphPerLine(raw string) []docmodel.Node {
	var out []docmodel.Node
	for _, line := range strings.Split(raw, "\n") {
		out = append(out, docmodel.Paragraph{
			Children: []docmodel.Node{docmodel.Text{Value: line}},
		})
	}
	return out
}
