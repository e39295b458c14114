package render

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/docmodel"
)

// NodesHTML renders a content-node tree into HTML for the primary
// artifact. Output is deterministic for structurally identical trees.
func NodesHTML(nodes []docmodel.Node) template.HTML {
	var b strings.Builder
	for _, n := range nodes {
		writeNode(&b, n)
	}
	return template.HTML(b.String())
}

func writeNode(b *strings.Builder, n docmodel.Node) {
	switch v := n.(type) {
	case docmodel.Text:
		writeText(b, v)
	case docmodel.Paragraph:
		writeParagraph(b, v)
	case docmodel.Table:
		writeTable(b, v)
	case docmodel.Image:
		writeImage(b, v)
	case docmodel.Row, docmodel.Cell:
		// Rows and cells only occur inside tables; a bare one is a
		// construction bug and renders as nothing.
	}
}

func writeText(b *strings.Builder, t docmodel.Text) {
	if t.Break {
		b.WriteString("<br/>")
	}
	var styles []string
	if t.Color != "" {
		styles = append(styles, "color:#"+t.Color)
	}
	if t.Size > 0 {
		// Sizes are carried in half-points.
		styles = append(styles, fmt.Sprintf("font-size:%dpt", t.Size/2))
	}
	open, closing := "", ""
	if len(styles) > 0 {
		open = `<span style="` + strings.Join(styles, ";") + `">`
		closing = "</span>"
	}
	if t.Bold {
		open += "<b>"
		closing = "</b>" + closing
	}
	if t.Superscript {
		open += "<sup>"
		closing = "</sup>" + closing
	}
	b.WriteString(open)
	b.WriteString(html.EscapeString(t.Value))
	b.WriteString(closing)
}

func writeParagraph(b *strings.Builder, p docmodel.Paragraph) {
	if p.PageBreak {
		b.WriteString(`<div style="page-break-before:always"></div>`)
	}
	var styles []string
	if p.Alignment != "" {
		styles = append(styles, "text-align:"+string(p.Alignment))
	}
	if p.Shading != "" {
		styles = append(styles, "background-color:#"+p.Shading)
	}
	if p.SpacingBefore > 0 {
		styles = append(styles, fmt.Sprintf("margin-top:%dpt", p.SpacingBefore/20))
	}
	if p.SpacingAfter > 0 {
		styles = append(styles, fmt.Sprintf("margin-bottom:%dpt", p.SpacingAfter/20))
	}

	tag := "p"
	if p.Bullet {
		b.WriteString("<ul>")
		tag = "li"
	}
	b.WriteString("<" + tag)
	if len(styles) > 0 {
		b.WriteString(` style="` + strings.Join(styles, ";") + `"`)
	}
	b.WriteString(">")
	for _, c := range p.Children {
		writeNode(b, c)
	}
	b.WriteString("</" + tag + ">")
	if p.Bullet {
		b.WriteString("</ul>")
	}
}

func writeTable(b *strings.Builder, t docmodel.Table) {
	var styles []string
	styles = append(styles, "border-collapse:collapse")
	if t.WidthPercent > 0 {
		styles = append(styles, fmt.Sprintf("width:%d%%", t.WidthPercent))
	}
	if t.Alignment == docmodel.AlignCenter {
		styles = append(styles, "margin-left:auto", "margin-right:auto")
	}
	b.WriteString(`<table style="` + strings.Join(styles, ";") + `">`)
	for _, row := range t.Rows {
		writeRow(b, row)
	}
	b.WriteString("</table>")
}

func writeRow(b *strings.Builder, r docmodel.Row) {
	if r.HeightAtLeast > 0 {
		fmt.Fprintf(b, `<tr style="height:%dpt">`, r.HeightAtLeast/20)
	} else {
		b.WriteString("<tr>")
	}
	for _, c := range r.Cells {
		writeCell(b, c)
	}
	b.WriteString("</tr>")
}

func writeCell(b *strings.Builder, c docmodel.Cell) {
	var styles []string
	if c.Shading != "" {
		styles = append(styles, "background-color:#"+c.Shading)
	}
	if c.Borders != nil {
		styles = append(styles, fmt.Sprintf("border:%dpx solid #%s", c.Borders.Size, c.Borders.Color))
	}
	if c.WidthPercent > 0 {
		styles = append(styles, fmt.Sprintf("width:%d%%", c.WidthPercent))
	}
	if c.VerticalAlign != "" {
		styles = append(styles, "vertical-align:"+map[docmodel.VerticalAlign]string{
			docmodel.VAlignTop:    "top",
			docmodel.VAlignCenter: "middle",
			docmodel.VAlignBottom: "bottom",
		}[c.VerticalAlign])
	}

	b.WriteString("<td")
	if c.ColumnSpan > 1 {
		fmt.Fprintf(b, ` colspan="%d"`, c.ColumnSpan)
	}
	if len(styles) > 0 {
		b.WriteString(` style="` + strings.Join(styles, ";") + `"`)
	}
	b.WriteString(">")
	for _, child := range c.Children {
		writeNode(b, child)
	}
	b.WriteString("</td>")
}

func writeImage(b *strings.Builder, img docmodel.Image) {
	style := fmt.Sprintf("width:%dpx;height:%dpx", img.Width, img.Height)
	if img.BehindText {
		style += ";position:absolute;z-index:-1;left:0"
	}
	fmt.Fprintf(b, `<img src="%s" style="%s"/>`, html.EscapeString(img.Path), style)
}
