// Package findings builds the findings-table content trees for each risk
// category, including the shared no-hits fallback.
package findings

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/compose"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/docmodel"
)

const (
	headerFill = "F2F2F2"
	bodyFill   = "FFFFFF"
	minRowH    = 500
)

var upper = cases.Upper(language.English)

// KpiRow is one supporting detail row of a findings section.
type KpiRow struct {
	Definition string `json:"kpi_definition"`
	Rating     string `json:"kpi_rating"`
	Details    string `json:"kpi_details"`
}

// Section is one category's findings: a subject title, the category rating
// and the detail rows. A section with zero rows is represented, not
// omitted; the builders render the no-hits fallback for it.
type Section struct {
	Title      string
	Rating     string
	InnerTitle string
	Rows       []KpiRow
}

// cell builds a standard findings cell: one centered paragraph, shared
// light-gray borders.
func cell(text string, fill string, align docmodel.Alignment, bold bool, span int) docmodel.Cell {
	return docmodel.Cell{
		VerticalAlign: docmodel.VAlignCenter,
		Shading:       fill,
		ColumnSpan:    span,
		Borders:       docmodel.LightGrayBorders,
		Children: []docmodel.Node{
			docmodel.Paragraph{
				Alignment: align,
				Children:  []docmodel.Node{docmodel.Text{Value: text, Bold: bold, Size: 20}},
			},
		},
	}
}

func headerCell(text string) docmodel.Cell {
	return cell(text, headerFill, docmodel.AlignCenter, true, 0)
}

func valueCell(text string) docmodel.Cell {
	return cell(text, bodyFill, docmodel.AlignCenter, false, 0)
}

// NoHits returns the single fallback node shown when a category has no
// recorded rows: a full-width single-row shaded cell with bold text
// "<LABEL> - NO TRUE HITS IDENTIFIED". The label prefix is omitted when
// empty.
func NoHits(label string) []docmodel.Node {
	text := "NO TRUE HITS IDENTIFIED"
	if label != "" {
		text = upper.String(label) + " - " + text
	}
	return []docmodel.Node{
		docmodel.Table{
			WidthPercent: 100,
			Rows: []docmodel.Row{{
				HeightAtLeast: minRowH,
				Cells: []docmodel.Cell{{
					VerticalAlign: docmodel.VAlignCenter,
					Shading:       headerFill,
					Children: []docmodel.Node{
						docmodel.Paragraph{
							Alignment: docmodel.AlignCenter,
							Children:  []docmodel.Node{docmodel.Text{Value: text, Bold: true, Size: 20}},
						},
					},
				}},
			}},
		},
	}
}

// BuildFlat renders a findings section in the flat form: one table per
// detail row, each with a 2-column header row of label/value pairs, a
// spanning "Findings" label row, and a spanning body row holding the
// multi-line details as composed paragraphs. An empty section yields the
// no-hits fallback — the builder's only branch point.
func BuildFlat(section Section, label string) []docmodel.Node {
	if len(section.Rows) == 0 {
		return NoHits(label)
	}

	var out []docmodel.Node
	for _, row := range section.Rows {
		body := compose.Compose(row.Details, compose.Style{SpacingBefore: 50, SpacingAfter: 50})
		out = append(out,
			docmodel.Table{
				WidthPercent: 100,
				Alignment:    docmodel.AlignCenter,
				Rows: []docmodel.Row{
					{
						HeightAtLeast: minRowH,
						Cells: []docmodel.Cell{
							cell("Name & Relation", headerFill, docmodel.AlignLeft, true, 0),
							valueCell(row.Definition),
							headerCell("Rating"),
							valueCell(row.Rating),
						},
					},
					{
						HeightAtLeast: minRowH,
						Cells: []docmodel.Cell{
							cell("Findings", headerFill, docmodel.AlignLeft, true, 4),
						},
					},
					{
						HeightAtLeast: minRowH,
						Cells: []docmodel.Cell{{
							Shading:    bodyFill,
							ColumnSpan: 4,
							Borders:    docmodel.LightGrayBorders,
							Children:   body,
						}},
					},
				},
			},
			docmodel.Paragraph{},
		)
	}
	return out
}

// BuildNested renders a findings section in the nested form used by cyber
// security and ESG: an outer header/body table whose body cell embeds an
// indicator sub-table with one row per KPI. An empty section yields the
// no-hits fallback.
func BuildNested(section Section, label string) []docmodel.Node {
	if len(section.Rows) == 0 {
		return NoHits(label)
	}

	inner := docmodel.Table{
		WidthPercent: 100,
		Rows: []docmodel.Row{{
			HeightAtLeast: minRowH,
			Cells: []docmodel.Cell{
				headerCell(section.InnerTitle),
				headerCell("Rating"),
				headerCell("Notes"),
			},
		}},
	}
	for _, row := range section.Rows {
		inner.Rows = append(inner.Rows, docmodel.Row{
			HeightAtLeast: minRowH,
			Cells: []docmodel.Cell{
				valueCell(row.Definition),
				valueCell(row.Rating),
				valueCell(row.Details),
			},
		})
	}

	return []docmodel.Node{
		docmodel.Table{
			WidthPercent: 100,
			Rows: []docmodel.Row{
				{
					HeightAtLeast: minRowH,
					Cells: []docmodel.Cell{
						cell("Name & Relation", headerFill, docmodel.AlignLeft, true, 0),
						valueCell(section.Title),
						headerCell("Rating"),
						valueCell(section.Rating),
					},
				},
				{
					HeightAtLeast: minRowH,
					Cells: []docmodel.Cell{
						cell("Findings", headerFill, docmodel.AlignLeft, true, 4),
					},
				},
				{
					HeightAtLeast: minRowH,
					Cells: []docmodel.Cell{{
						Shading:    bodyFill,
						ColumnSpan: 4,
						Borders:    docmodel.LightGrayBorders,
						Children: []docmodel.Node{
							docmodel.Paragraph{},
							inner,
							docmodel.Paragraph{},
						},
					}},
				},
			},
		},
		docmodel.Paragraph{},
	}
}

// Build dispatches on the category's render style.
func Build(cat Category, section Section) []docmodel.Node {
	if cat.Style == Nested {
		section.InnerTitle = cat.InnerTitle
		return BuildNested(section, cat.Label)
	}
	return BuildFlat(section, cat.Label)
}
