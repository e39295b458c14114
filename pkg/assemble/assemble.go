// Package assemble turns a flat risk-assessment record into the named patch
// set the report template consumes.
package assemble

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/compose"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/docmodel"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/findings"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/rating"
)

// Assembler builds patch sets. Construct once and reuse; it holds no
// per-request state.
type Assembler struct {
	// TitleImage is the backdrop image placed behind the title. Empty
	// disables the image. A set but unreadable path is an assembly error.
	TitleImage string

	// Now supplies the report creation date. Nil means time.Now. Injected
	// so assembly stays deterministic under test.
	Now func() time.Time
}

// sectionFor selects either the category's real findings data or an empty
// placeholder section based on its flag. The flag wins: a false flag yields
// the no-hits fallback even when data rows are present.
func sectionFor(cat findings.Category, r *Record) findings.Section {
	type src struct {
		flag bool
		rows []findings.KpiRow
	}
	sources := map[findings.CategoryKey]src{
		findings.Sanctions:           {r.SanctionsFindings, r.SanctionsData},
		findings.PEP:                 {r.PEPFindings, r.PEPData},
		findings.AntiBribery:         {r.BriberyFindings, r.BriberyData},
		findings.AntiCorruption:      {r.CorruptionFindings, r.CorruptionData},
		findings.GovernmentOwnership: {r.StateOwnershipFindings, r.StateOwnershipData},
		findings.Financial:           {r.FinancialFindings, r.FinancialData},
		findings.Bankruptcy:          {r.BankruptcyFindings, r.BankruptcyData},
		findings.AdverseMedia:        {r.AdverseMediaFindings, r.AdverseMediaData},
		findings.Regulatory:          {r.RegulatoryFindings, r.RegulatoryData},
		findings.Legal:               {r.LegalFindings, r.LegalData},
		findings.CyberSecurity:       {r.CyberFindings, r.CyberData},
		findings.ESG:                 {r.ESGFindings, r.ESGData},
	}

	s := findings.Section{Title: r.Name + " (Self)"}
	switch cat.Key {
	case findings.CyberSecurity:
		s.Rating = r.CyberRating
	case findings.ESG:
		s.Rating = r.ESGRating
	}
	if d, ok := sources[cat.Key]; ok && d.flag {
		s.Rows = d.rows
	}
	return s
}

// Assemble produces the complete patch set for one record. The returned
// mapping contains exactly the slot names the report template declares;
// callers never see a partial patch set — any internal fault aborts with a
// wrapped error instead.
func (a *Assembler) Assemble(r *Record) (docmodel.PatchSet, error) {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	patches := docmodel.PatchSet{}

	if err := a.patchTitle(patches, r); err != nil {
		return nil, fmt.Errorf("assemble patches: %w", err)
	}
	a.patchCreatedDate(patches, now())
	patchProfile(patches, r)
	patchOverall(patches, r)
	patchRiskAreas(patches, r)
	patchFindings(patches, r)

	patches.Set("page_break", docmodel.Paragraph{PageBreak: true})

	return patches, nil
}

func (a *Assembler) patchTitle(patches docmodel.PatchSet, r *Record) error {
	nodes := []docmodel.Node{docmodel.Text{Value: r.Name}}
	if a.TitleImage != "" {
		if _, err := os.Stat(a.TitleImage); err != nil {
			return fmt.Errorf("title image: %w", err)
		}
		nodes = append(nodes, docmodel.Image{
			Path:       a.TitleImage,
			Width:      500,
			Height:     400,
			BehindText: true,
		})
	}
	patches.Set("title", docmodel.Paragraph{Children: nodes})
	return nil
}

func (a *Assembler) patchCreatedDate(patches docmodel.PatchSet, t time.Time) {
	day := t.Day()
	patches.Set("created_date", docmodel.Paragraph{Children: []docmodel.Node{
		docmodel.Text{Value: strconv.Itoa(day), Bold: true},
		docmodel.Text{Value: OrdinalSuffix(day), Superscript: true},
		docmodel.Text{Value: " " + t.Month().String() + " " + strconv.Itoa(t.Year())},
	}})
}

func textSlot(patches docmodel.PatchSet, slot, value string) {
	patches.Set(slot, docmodel.Paragraph{Children: []docmodel.Node{
		docmodel.Text{Value: value},
	}})
}

func patchProfile(patches docmodel.PatchSet, r *Record) {
	textSlot(patches, "company_name", r.Name)
	textSlot(patches, "company_location", r.Location)
	textSlot(patches, "company_address", r.Address)
	textSlot(patches, "company_website", r.Website)
	textSlot(patches, "company_active_status", r.ActiveStatus)
	textSlot(patches, "company_operation_type", r.OperationType)
	textSlot(patches, "company_legal_status", r.LegalStatus)
	textSlot(patches, "company_national_identifier", r.NationalID)
	textSlot(patches, "company_alias", r.Alias)
	textSlot(patches, "company_incorporation_date", r.IncorporationDate)
	textSlot(patches, "company_subsidiaries", r.Subsidiaries)
	textSlot(patches, "company_corporate_group", r.CorporateGroup)
	textSlot(patches, "company_revenue", r.Revenue)
	textSlot(patches, "company_employee", r.EmployeeCount)

	patches.Set("shareholders", compose.ParagraphPerLine(r.Shareholders)...)
	patches.Set("key_executives", compose.ParagraphPerLine(r.KeyExecutives)...)
}

// patchOverall builds the fixed-layout overall-rating table and the
// free-text summary of findings.
func patchOverall(patches docmodel.PatchSet, r *Record) {
	colors := rating.Classify(r.RiskLevel)
	patches.Set("overall_rating", docmodel.Table{
		WidthPercent: 70,
		ColumnWidths: []int{8000, 4000},
		Alignment:    docmodel.AlignCenter,
		Rows: []docmodel.Row{{
			HeightAtLeast: 500,
			Cells: []docmodel.Cell{
				{
					VerticalAlign: docmodel.VAlignCenter,
					Borders:       docmodel.LightGrayBorders,
					Children: []docmodel.Node{docmodel.Paragraph{
						Alignment: docmodel.AlignCenter,
						Children:  []docmodel.Node{docmodel.Text{Value: "OVERALL RISK RATING", Bold: true, Size: 24}},
					}},
				},
				{
					VerticalAlign: docmodel.VAlignCenter,
					Borders:       docmodel.LightGrayBorders,
					Shading:       colors.Background,
					Children: []docmodel.Node{docmodel.Paragraph{
						Alignment: docmodel.AlignCenter,
						Children:  []docmodel.Node{docmodel.Text{Value: r.RiskLevel, Bold: true, Size: 24, Color: colors.Foreground}},
					}},
				},
			},
		}},
	})

	patches.Set("overall_summary", compose.BreakParagraphs(r.SummaryOfFindings)...)
}

// patchRiskAreas fans the eight fixed areas out into the summary table, the
// letter-keyed highlight slots and the per-area bulleted narrative slots.
func patchRiskAreas(patches docmodel.PatchSet, r *Record) {
	const headFill = "595959"

	rows := []docmodel.Row{{
		HeightAtLeast: 500,
		Cells: []docmodel.Cell{
			{
				VerticalAlign: docmodel.VAlignCenter,
				WidthPercent:  80,
				Borders:       docmodel.LightGrayBorders,
				Shading:       headFill,
				Children: []docmodel.Node{docmodel.Paragraph{
					Alignment: docmodel.AlignCenter,
					Children:  []docmodel.Node{docmodel.Text{Value: "Risk Areas", Bold: true, Color: "FFFFFF"}},
				}},
			},
			{
				VerticalAlign: docmodel.VAlignCenter,
				Borders:       docmodel.LightGrayBorders,
				Shading:       headFill,
				Children: []docmodel.Node{docmodel.Paragraph{
					Alignment: docmodel.AlignCenter,
					Children:  []docmodel.Node{docmodel.Text{Value: "Risk Rating", Bold: true, Color: "FFFFFF"}},
				}},
			},
		},
	}}

	for i, area := range Areas {
		label := area.Rating(r)
		colors := rating.Classify(label)

		rows = append(rows, docmodel.Row{
			HeightAtLeast: 500,
			Cells: []docmodel.Cell{
				{
					VerticalAlign: docmodel.VAlignCenter,
					Borders:       docmodel.LightGrayBorders,
					Children: []docmodel.Node{docmodel.Paragraph{
						Children: []docmodel.Node{docmodel.Text{Value: area.Label}},
					}},
				},
				{
					VerticalAlign: docmodel.VAlignCenter,
					Borders:       docmodel.LightGrayBorders,
					Shading:       colors.Background,
					Children: []docmodel.Node{docmodel.Paragraph{
						Alignment: docmodel.AlignCenter,
						Children:  []docmodel.Node{docmodel.Text{Value: label, Color: colors.Foreground}},
					}},
				},
			},
		})

		patches.Set(LetterSlot(i), highlight(label, colors))
		patches.Set("riskAreas_"+area.Key, compose.Bulleted(area.Summary(r))...)
	}

	patches.Set("risk_areas", docmodel.Table{
		WidthPercent: 75,
		Alignment:    docmodel.AlignLeft,
		Borders:      docmodel.LightGrayBorders,
		Rows:         rows,
	})
}

// highlight renders a rating as a centered, color-filled paragraph padded
// with breaks above and below.
func highlight(label string, colors rating.Colors) docmodel.Paragraph {
	return docmodel.Paragraph{
		Alignment:   docmodel.AlignCenter,
		Shading:     colors.Background,
		LineSpacing: 180,
		Children: []docmodel.Node{
			docmodel.Text{Break: true},
			docmodel.Text{Value: label, Bold: true, Color: colors.Foreground},
			docmodel.Text{Break: true},
		},
	}
}

func patchFindings(patches docmodel.PatchSet, r *Record) {
	for _, cat := range findings.Categories {
		patches.Set(cat.Slot, findings.Build(cat, sectionFor(cat, r))...)
	}
}
