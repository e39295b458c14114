// Package docmodel defines the content-node tree that report patches are
// built from. Each node is owned exclusively by its parent container; trees
// carry no back-references and are rebuilt fresh for every report, so a
// PatchSet can be rendered concurrently with unrelated requests.
package docmodel

// Alignment controls horizontal placement of paragraph or table content.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// VerticalAlign controls vertical placement of cell content.
type VerticalAlign string

const (
	VAlignTop    VerticalAlign = "top"
	VAlignCenter VerticalAlign = "center"
	VAlignBottom VerticalAlign = "bottom"
)

// BorderStyle describes one uniform border applied to all four sides.
type BorderStyle struct {
	// Color is a hex RGB value without the leading '#'.
	Color string
	Size  int
}

// LightGrayBorders is the single border style shared by every cell inside a
// findings table.
var LightGrayBorders = &BorderStyle{Color: "D3D3D3", Size: 1}

// Node is the tagged union of renderable content. Exactly one of the
// concrete types below implements it.
type Node interface {
	isNode()
}

// Text is a styled text run inside a paragraph.
type Text struct {
	Value       string
	Bold        bool
	Color       string // hex RGB, empty = inherit
	Size        int    // half-points, 0 = inherit
	Superscript bool
	// Break inserts a line break before the run without starting a new
	// paragraph. Used for multi-line findings details.
	Break bool
}

// Paragraph is an ordered sequence of runs with block-level styling.
type Paragraph struct {
	Alignment     Alignment
	Children      []Node
	SpacingBefore int
	SpacingAfter  int
	LineSpacing   int
	Bullet        bool
	PageBreak     bool
	Shading       string // hex RGB fill, empty = none
}

// Table is a nested table of rows.
type Table struct {
	Rows         []Row
	WidthPercent int
	ColumnWidths []int
	Alignment    Alignment
	Borders      *BorderStyle
}

// Row is one table row.
type Row struct {
	// HeightAtLeast is the minimum row height in twentieths of a point.
	HeightAtLeast int
	Cells         []Cell
}

// Cell holds block content inside a row.
type Cell struct {
	Children      []Node
	Shading       string // hex RGB fill, empty = none
	ColumnSpan    int    // 0 or 1 means a single column
	Borders       *BorderStyle
	WidthPercent  int
	VerticalAlign VerticalAlign
}

// Image is a picture placed into the document, optionally floating behind
// the text layer (used for the title page backdrop).
type Image struct {
	Path       string
	Width      int
	Height     int
	BehindText bool
}

func (Text) isNode()      {}
func (Paragraph) isNode() {}
func (Table) isNode()     {}
func (Row) isNode()       {}
func (Cell) isNode()      {}
func (Image) isNode()     {}
