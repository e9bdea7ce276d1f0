// Package layout builds the typed box tree from a styled element tree and
// assigns every box a position and size in PDF points. Construction and
// layout share one package because both are a single depth-first walk
// that is cheapest to express alongside the Layout method it immediately
// feeds.
package layout

import (
	"github.com/mcpeakdev/rpdf/internal/imaging"
	"github.com/mcpeakdev/rpdf/internal/parser/html"
	"github.com/mcpeakdev/rpdf/internal/style"
)

// Kind is the box variant: Block/Flex/List/Table/Image/Text. This module
// uses one struct with a Kind tag rather than one Go type per kind: the
// box vocabulary is closed and small, so a tagged union is less code for
// the same polymorphism and keeps box-model geometry (shared by every
// kind) in a single place instead of duplicated across six Get/Set
// implementations.
type Kind int

const (
	KindBlock Kind = iota
	KindFlex
	KindList
	KindTable
	KindImage
	KindText
)

// InlineRun is a run of text sharing one ComputedStyle, coalesced from
// adjacent text nodes and <span> children.
type InlineRun struct {
	Text  string
	Style style.ComputedStyle
}

// LineToken is one positioned word (or run of words) on a laid-out line,
// the unit the PDF writer turns into a Tj text-show operator.
type LineToken struct {
	Text      string
	X         float64 // relative to the box's content-box left edge
	BaselineY float64 // relative to the box's content-box top edge
	Style     style.ComputedStyle
}

// Line is one line of a Text box after line-breaking. Top/Height are
// relative to the Text box's content-box top edge, letting the
// paginator split a Text box's Lines at line boundaries without
// recomputing line metrics.
type Line struct {
	Top, Height float64
	Tokens      []LineToken
}

// Box is the unit of the box tree: one node per Block/Flex/List/Table/
// Image/Text box. Geometry fields are zero until Layout fills them in.
type Box struct {
	Kind  Kind
	Node  *html.Node
	Style style.ComputedStyle

	Children []*Box      // Block, Flex, List(items), document body
	Rows     [][]*Box    // Table only: rows of cell Boxes (each a Block box)
	Ordered  bool        // List only: <ol> vs <ul>
	Runs     []InlineRun // Text only: coalesced inline runs
	Image    *imaging.Decoded
	ImageKey string

	// Geometry, filled in by Layout. X/Y are the box's border-box
	// top-left corner in a top-down coordinate space (Y increases
	// downward); the paginator/PDF writer flip to PDF's bottom-left
	// origin when emitting primitives.
	X, Y, W, H float64

	MarginTop, MarginRight, MarginBottom, MarginLeft    float64
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft float64
	BorderWidth float64

	ContentW, ContentH float64
	Lines              []Line // Text only, after line-breaking

	ColWidths []float64 // Table only

	ListMarker string // set by the parent List when laying out an item: "• " or "N. "
}

// ContentX/ContentY return the top-left of the content box (inside
// border+padding), the origin children are positioned relative to.
func (b *Box) ContentX() float64 {
	return b.X + b.MarginLeft + b.BorderWidth + b.PaddingLeft
}
func (b *Box) ContentY() float64 {
	return b.Y + b.MarginTop + b.BorderWidth + b.PaddingTop
}

// OuterHeight is the full margin-box height: the amount a sibling's
// cursor advances past this box in normal block flow.
func (b *Box) OuterHeight() float64 {
	return b.MarginTop + b.BorderWidth + b.PaddingTop + b.ContentH + b.PaddingBottom + b.BorderWidth + b.MarginBottom
}

// MarkerBaselineY returns the absolute top-down Y of the baseline a list
// marker should align to: the first line of this box's first Text
// descendant (following the first-child chain down through any wrapping
// Block boxes), or one font-size below the content top if it has none.
func (b *Box) MarkerBaselineY() float64 {
	cur := b
	for cur.Kind != KindText && len(cur.Children) > 0 {
		cur = cur.Children[0]
	}
	if cur.Kind == KindText && len(cur.Lines) > 0 && len(cur.Lines[0].Tokens) > 0 {
		return cur.ContentY() + cur.Lines[0].Tokens[0].BaselineY
	}
	return b.ContentY() + b.Style.FontSizePt
}
