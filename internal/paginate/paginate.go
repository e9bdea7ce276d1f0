// Package paginate implements the second pass over the box tree
// layout.Build/Layout produce. It walks the unbounded, single-tall-page
// box tree the layout engine emits and slices it into fixed-height
// pages, honoring break-before/break-after/avoid-break-inside, splitting
// only at child box boundaries (or, for a Text box, at line boundaries).
package paginate

import (
	"github.com/mcpeakdev/rpdf/internal/fontmetrics"
	"github.com/mcpeakdev/rpdf/internal/layout"
	"github.com/mcpeakdev/rpdf/internal/rendererr"
	"github.com/mcpeakdev/rpdf/internal/style"
)

// Primitive is one drawing operation the PDF writer emits verbatim.
// Coordinates are in PDF points relative to the page's bottom-left
// origin, already flipped from the layout engine's top-down space.
type Primitive interface{ isPrimitive() }

type RectPrimitive struct {
	X, Y, W, H  float64
	Fill        bool
	FillColor   style.Color
	Stroke      bool
	StrokeColor style.Color
	StrokeWidth float64
}

type TextPrimitive struct {
	X, BaselineY float64
	Text         string
	Style        style.ComputedStyle
}

type ImagePrimitive struct {
	X, Y, W, H float64
	Key        string
}

func (RectPrimitive) isPrimitive()  {}
func (TextPrimitive) isPrimitive()  {}
func (ImagePrimitive) isPrimitive() {}

// Page is one PDF page's worth of content.
type Page struct {
	WidthPt, HeightPt float64
	Primitives        []Primitive
}

// Paginator slices a laid-out box tree into Pages of the configured size.
type Paginator struct {
	PageWidthPt, PageHeightPt       float64
	MarginPt                        float64
	ContentWidthPt, ContentHeightPt float64
}

func New(pageWidthPt, pageHeightPt, marginPt float64) *Paginator {
	return &Paginator{
		PageWidthPt:     pageWidthPt,
		PageHeightPt:    pageHeightPt,
		MarginPt:        marginPt,
		ContentWidthPt:  pageWidthPt - 2*marginPt,
		ContentHeightPt: pageHeightPt - 2*marginPt,
	}
}

// state tracks progress across the page-slicing walk.
type state struct {
	pages       []*Page
	cur         *Page
	hasContent  bool
	pageOriginY float64 // document Y that maps to this page's content top (0)
	err         error
}

func (p *Paginator) newPage(s *state, originY float64) {
	page := &Page{WidthPt: p.PageWidthPt, HeightPt: p.PageHeightPt}
	s.pages = append(s.pages, page)
	s.cur = page
	s.hasContent = false
	s.pageOriginY = originY
}

// Paginate walks root (the document body Block box layout.Build/Layout
// produced) and returns the page sequence. It fails with LayoutError if a
// single box exceeds a fresh page's content area and has no further
// splittable structure.
func (p *Paginator) Paginate(root *layout.Box) ([]*Page, error) {
	s := &state{}
	p.newPage(s, root.ContentY())
	if root != nil {
		p.placeChildren(s, root.Children)
	}
	if s.err != nil {
		return nil, s.err
	}
	if len(s.pages) > 1 && !s.hasContent {
		s.pages = s.pages[:len(s.pages)-1]
	}
	return s.pages, nil
}

func (p *Paginator) placeChildren(s *state, children []*layout.Box) {
	for i, child := range children {
		if s.err != nil {
			return
		}
		p.placeUnit(s, child)
		if child.Style.BreakAfter && i < len(children)-1 {
			p.newPage(s, nextOriginY(children, i))
		}
	}
}

// nextOriginY picks the document Y the next page should start at: the
// position immediately following the box that just triggered the break.
func nextOriginY(children []*layout.Box, i int) float64 {
	if i+1 < len(children) {
		return children[i+1].Y
	}
	return children[i].Y + children[i].H
}

// placeUnit places one box, recursing into its children when it doesn't
// fit on the current page and isn't marked break-inside:avoid.
func (p *Paginator) placeUnit(s *state, box *layout.Box) {
	if box.Style.BreakBefore && s.hasContent {
		p.newPage(s, box.Y)
	}

	placementY := box.Y - s.pageOriginY
	fits := placementY >= 0 && placementY+box.H <= p.ContentHeightPt

	if !fits {
		if box.Kind == layout.KindText {
			p.placeTextSplit(s, box)
			return
		}
		if box.Kind == layout.KindBlock && len(box.Children) > 0 && !box.Style.AvoidBreakInside {
			p.placeChildren(s, box.Children)
			return
		}
		if s.hasContent {
			p.newPage(s, box.Y)
		}
		if box.H > p.ContentHeightPt {
			s.err = rendererr.New(rendererr.LayoutError, "box exceeds a full page's content height (%.1fpt > %.1fpt)", box.H, p.ContentHeightPt)
			return
		}
	}

	p.emitChildAt(s, box, box.Y-s.pageOriginY)
	s.hasContent = true
}

// placeTextSplit places a Text box's lines, breaking to a new page
// between lines when the remaining lines would overflow.
func (p *Paginator) placeTextSplit(s *state, box *layout.Box) {
	contentTop := box.Y + box.MarginTop + box.BorderWidth + box.PaddingTop
	for _, line := range box.Lines {
		lineY := contentTop + line.Top - s.pageOriginY
		if lineY+line.Height > p.ContentHeightPt {
			p.newPage(s, contentTop+line.Top)
			lineY = contentTop + line.Top - s.pageOriginY
		}
		p.emitLine(s, box, line, lineY)
		s.hasContent = true
	}
}

func (p *Paginator) emitLine(s *state, box *layout.Box, line layout.Line, lineYOnPage float64) {
	contentX := box.X + box.MarginLeft + box.BorderWidth + box.PaddingLeft
	for _, tok := range line.Tokens {
		baselineOnPage := lineYOnPage + (tok.BaselineY - line.Top)
		s.cur.Primitives = append(s.cur.Primitives, TextPrimitive{
			X:         contentX + tok.X,
			BaselineY: p.flipY(baselineOnPage),
			Text:      tok.Text,
			Style:     tok.Style,
		})
		if tok.Style.Underline {
			base := fontmetrics.BaseFontName(fontmetrics.Helvetica, tok.Style.FontBold, tok.Style.FontItalic)
			w := fontmetrics.TextWidthPt(tok.Text, base, tok.Style.FontSizePt)
			s.cur.Primitives = append(s.cur.Primitives, RectPrimitive{
				X: contentX + tok.X, Y: p.flipY(baselineOnPage + 1), W: w, H: 0.6,
				Fill: true, FillColor: tok.Style.Color,
			})
		}
	}
}

// flipY converts a top-down, page-content-relative Y (0 at content top)
// into a PDF bottom-up Y relative to the page's bottom-left origin.
func (p *Paginator) flipY(yFromContentTop float64) float64 {
	return p.PageHeightPt - p.MarginPt - yFromContentTop
}

// emitBox emits the non-text drawing primitives for one box — background
// fill, border stroke, image, list marker — at the given page-relative
// Y, then recurses into its structural children (Flex/List/Table rows),
// each translated by the same page origin. Text boxes never reach here
// (placeUnit and emitChildAt route them to line emission).
func (p *Paginator) emitBox(s *state, box *layout.Box, pageRelY float64) {
	x := box.X + box.MarginLeft
	w := box.BorderWidth*2 + box.PaddingLeft + box.PaddingRight + box.ContentW
	h := box.BorderWidth*2 + box.PaddingTop + box.PaddingBottom + box.ContentH

	if box.Style.BackgroundSet {
		s.cur.Primitives = append(s.cur.Primitives, RectPrimitive{
			X: x, Y: p.flipY(pageRelY + h), W: w, H: h,
			Fill: true, FillColor: box.Style.Background,
		})
	}
	if box.BorderWidth > 0 {
		s.cur.Primitives = append(s.cur.Primitives, RectPrimitive{
			X: x, Y: p.flipY(pageRelY + h), W: w, H: h,
			Stroke: true, StrokeColor: style.Color{}, StrokeWidth: box.BorderWidth,
		})
	}

	switch box.Kind {
	case layout.KindImage:
		s.cur.Primitives = append(s.cur.Primitives, ImagePrimitive{
			X: box.ContentX(), Y: p.flipY(pageRelY + h - box.BorderWidth - box.PaddingTop),
			W: box.ContentW, H: box.ContentH, Key: box.ImageKey,
		})
	case layout.KindTable:
		for _, row := range box.Rows {
			for _, cell := range row {
				p.emitChildAt(s, cell, pageRelY+(cell.Y-box.Y))
			}
		}
	case layout.KindList:
		for _, item := range box.Children {
			itemPageRelY := pageRelY + (item.Y - box.Y)
			if item.ListMarker != "" {
				p.emitListMarker(s, box, item, itemPageRelY)
			}
			p.emitChildAt(s, item, itemPageRelY)
		}
	default:
		for _, child := range box.Children {
			p.emitChildAt(s, child, pageRelY+(child.Y-box.Y))
		}
	}
}

// emitListMarker draws one list item's "• " or "N. " marker in the
// gutter reserved to its left, baseline-aligned with the item's first
// line of text.
func (p *Paginator) emitListMarker(s *state, list, item *layout.Box, itemPageRelY float64) {
	baselineOnPage := itemPageRelY + (item.MarkerBaselineY() - item.Y)
	s.cur.Primitives = append(s.cur.Primitives, TextPrimitive{
		X:         list.ContentX(),
		BaselineY: p.flipY(baselineOnPage),
		Text:      item.ListMarker,
		Style:     item.Style,
	})
}

// emitChildAt places a structural child at a page-relative Y already
// computed by the caller from its parent's placement, bypassing the
// page-break search since the parent has already committed to keeping
// this subtree on one page (only placeUnit decides where breaks happen).
func (p *Paginator) emitChildAt(s *state, box *layout.Box, pageRelY float64) {
	if box.Kind == layout.KindText {
		contentTop := pageRelY + box.MarginTop + box.BorderWidth + box.PaddingTop
		for _, line := range box.Lines {
			p.emitLine(s, box, line, contentTop+line.Top)
		}
		return
	}
	p.emitBox(s, box, pageRelY)
}
