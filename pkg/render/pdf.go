package render

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	gofpdf "github.com/go-pdf/fpdf"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/docmodel"
)

// PDFConverter renders the print artifact natively with fpdf, walking the
// patch set in template slot order. It needs no external process, so it is
// the default converter.
type PDFConverter struct{}

func (PDFConverter) Convert(ctx context.Context, job ConvertJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(job.SourcePath); err != nil {
		return fmt.Errorf("convert source: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(job.Title, false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	p := &pdfPrinter{pdf: pdf}
	for _, slot := range job.Slots {
		for _, node := range job.Patches[slot] {
			p.node(node)
		}
	}

	if pdf.Err() {
		return fmt.Errorf("render pdf: %w", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(job.DestPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// pdfPrinter walks content nodes onto an fpdf page.
type pdfPrinter struct {
	pdf *gofpdf.Fpdf
}

func (p *pdfPrinter) node(n docmodel.Node) {
	switch v := n.(type) {
	case docmodel.Paragraph:
		p.paragraph(v)
	case docmodel.Table:
		p.table(v)
	case docmodel.Text:
		p.paragraph(docmodel.Paragraph{Children: []docmodel.Node{v}})
	case docmodel.Image:
		p.image(v)
	}
}

func (p *pdfPrinter) paragraph(par docmodel.Paragraph) {
	if par.PageBreak {
		p.pdf.AddPage()
		return
	}

	text := flatten(par.Children)
	if par.Bullet {
		text = "• " + text
	}

	style, size, color := runStyle(par.Children)
	p.pdf.SetFont("Helvetica", style, size)
	p.pdf.SetTextColor(color[0], color[1], color[2])

	fill := par.Shading != ""
	if fill {
		r, g, b := parseHex(par.Shading)
		p.pdf.SetFillColor(r, g, b)
	}

	align := "L"
	switch par.Alignment {
	case docmodel.AlignCenter:
		align = "C"
	case docmodel.AlignRight:
		align = "R"
	}

	if strings.TrimSpace(text) == "" && !fill {
		p.pdf.Ln(4)
		return
	}
	p.pdf.MultiCell(0, 6, text, "", align, fill)
	p.pdf.Ln(1)
}

func (p *pdfPrinter) table(t docmodel.Table) {
	pageW, _ := p.pdf.GetPageSize()
	left, _, right, _ := p.pdf.GetMargins()
	usable := pageW - left - right
	width := usable
	if t.WidthPercent > 0 {
		width = usable * float64(t.WidthPercent) / 100
	}

	cols := 1
	for _, row := range t.Rows {
		n := 0
		for _, c := range row.Cells {
			span := c.ColumnSpan
			if span < 1 {
				span = 1
			}
			n += span
		}
		if n > cols {
			cols = n
		}
	}

	for _, row := range t.Rows {
		p.tableRow(row, width, cols)
	}
	p.pdf.Ln(2)
}

func (p *pdfPrinter) tableRow(row docmodel.Row, width float64, cols int) {
	// Spanning single-cell rows hold the long-form findings details;
	// render them with a wrapping MultiCell. Everything else fits on one
	// line per the template's fixed layouts.
	if len(row.Cells) == 1 {
		c := row.Cells[0]
		p.cellStyle(c)
		fill := c.Shading != "" && !strings.EqualFold(c.Shading, "FFFFFF")
		p.pdf.MultiCell(width, 7, flatten(c.Children), "1", cellAlign(c), fill)
		return
	}

	for _, c := range row.Cells {
		span := c.ColumnSpan
		if span < 1 {
			span = 1
		}
		w := width * float64(span) / float64(cols)
		p.cellStyle(c)
		fill := c.Shading != "" && !strings.EqualFold(c.Shading, "FFFFFF")
		p.pdf.CellFormat(w, 8, flatten(c.Children), "1", 0, cellAlign(c), fill, 0, "")
	}
	p.pdf.Ln(-1)
}

func (p *pdfPrinter) cellStyle(c docmodel.Cell) {
	style, size, color := runStyle(c.Children)
	p.pdf.SetFont("Helvetica", style, size)
	p.pdf.SetTextColor(color[0], color[1], color[2])
	if c.Shading != "" {
		r, g, b := parseHex(c.Shading)
		p.pdf.SetFillColor(r, g, b)
	}
}

func (p *pdfPrinter) image(img docmodel.Image) {
	if _, err := os.Stat(img.Path); err != nil {
		return
	}
	opts := gofpdf.ImageOptions{ReadDpi: true}
	p.pdf.ImageOptions(img.Path, p.pdf.GetX(), p.pdf.GetY(), float64(img.Width)/4, float64(img.Height)/4, true, opts, 0, "")
}

func cellAlign(c docmodel.Cell) string {
	for _, n := range c.Children {
		if par, ok := n.(docmodel.Paragraph); ok {
			switch par.Alignment {
			case docmodel.AlignCenter:
				return "C"
			case docmodel.AlignRight:
				return "R"
			}
			return "L"
		}
	}
	return "L"
}

// flatten collapses a node tree into plain text, joining break runs and
// nested paragraphs with newlines.
func flatten(nodes []docmodel.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case docmodel.Text:
			if v.Break && b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(v.Value)
		case docmodel.Paragraph:
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(flatten(v.Children))
		case docmodel.Table:
			for _, row := range v.Rows {
				for i, c := range row.Cells {
					if i > 0 {
						b.WriteString("  ")
					}
					b.WriteString(flatten(c.Children))
				}
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// runStyle derives the fpdf font style, size and text color from the first
// styled run in the tree.
func runStyle(nodes []docmodel.Node) (style string, size float64, color [3]int) {
	size = 10
	color = [3]int{0, 0, 0}
	for _, n := range nodes {
		switch v := n.(type) {
		case docmodel.Text:
			if v.Value == "" {
				continue
			}
			if v.Bold {
				style = "B"
			}
			if v.Size > 0 {
				size = float64(v.Size) / 2
			}
			if v.Color != "" {
				r, g, b := parseHex(v.Color)
				color = [3]int{r, g, b}
			}
			return style, size, color
		case docmodel.Paragraph:
			return runStyle(v.Children)
		}
	}
	return style, size, color
}

func parseHex(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	rv, _ := strconv.ParseInt(hex[0:2], 16, 32)
	gv, _ := strconv.ParseInt(hex[2:4], 16, 32)
	bv, _ := strconv.ParseInt(hex[4:6], 16, 32)
	return int(rv), int(gv), int(bv)
}
