package layout

import "strconv"

// Layout assigns (x, y) as this box's border-box top-left corner and
// recursively lays out its children, dispatching by Kind. Coordinates
// are top-down (Y increases downward from the top of the unbounded
// document canvas); the paginator converts to PDF's bottom-up,
// per-page coordinate space in its second pass.
//
// containerWidth is the full available inline width assigned to a
// block: the containing block's content width, before this box's own
// margin/padding/border are subtracted.
func (bx *Box) Layout(x, y, containerWidth float64) {
	bx.X, bx.Y = x, y
	bx.MarginTop, bx.MarginRight = bx.Style.MarginTop, bx.Style.MarginRight
	bx.MarginBottom, bx.MarginLeft = bx.Style.MarginBottom, bx.Style.MarginLeft
	bx.PaddingTop, bx.PaddingRight = bx.Style.PaddingTop, bx.Style.PaddingRight
	bx.PaddingBottom, bx.PaddingLeft = bx.Style.PaddingBottom, bx.Style.PaddingLeft
	bx.BorderWidth = bx.Style.BorderWidthPt

	if bx.Kind != KindImage {
		if bx.Style.WidthSet {
			if bx.Style.WidthPct > 0 {
				bx.ContentW = bx.Style.WidthPct / 100 * containerWidth
			} else {
				bx.ContentW = bx.Style.WidthPt
			}
		} else {
			bx.ContentW = containerWidth - bx.MarginLeft - bx.MarginRight - 2*bx.BorderWidth - bx.PaddingLeft - bx.PaddingRight
		}
		if bx.ContentW < 0 {
			bx.ContentW = 0
		}
	}

	switch bx.Kind {
	case KindBlock:
		bx.layoutBlockChildren()
	case KindFlex:
		bx.layoutFlexChildren()
	case KindList:
		bx.layoutListItems()
	case KindTable:
		bx.layoutTable()
	case KindImage:
		bx.layoutImage(containerWidth)
	case KindText:
		bx.layoutText()
	}

	if bx.Style.HeightSet {
		bx.ContentH = bx.Style.HeightPt
	}
	bx.W = bx.ContentW + bx.PaddingLeft + bx.PaddingRight + 2*bx.BorderWidth
	bx.H = bx.ContentH + bx.PaddingTop + bx.PaddingBottom + 2*bx.BorderWidth
}

// layoutBlockChildren implements block-flow layout: children stack
// vertically, each positioned at (content_x + margin_left, cursor_y +
// margin_top), with the cursor then advancing by the child's full
// margin-box height. Vertical margins do not collapse.
func (bx *Box) layoutBlockChildren() {
	cursor := bx.ContentY()
	for _, child := range bx.Children {
		child.Layout(bx.ContentX()+child.Style.MarginLeft, cursor+child.Style.MarginTop, bx.ContentW)
		cursor += child.OuterHeight()
	}
	if !bx.Style.HeightSet {
		bx.ContentH = cursor - bx.ContentY()
	}
}

// layoutListItems lays out <ul>/<ol> items as a vertical block stack,
// each one indented and prefixed with a marker: "• " for <ul>, "N. " for
// <ol> starting at 1.
func (bx *Box) layoutListItems() {
	cursor := bx.ContentY()
	for i, item := range bx.Children {
		marker := "• "
		if bx.Ordered {
			marker = strconv.Itoa(i+1) + ". "
		}
		item.ListMarker = marker
		item.Layout(bx.ContentX()+16+item.Style.MarginLeft, cursor+item.Style.MarginTop, bx.ContentW-16)
		cursor += item.OuterHeight()
	}
	if !bx.Style.HeightSet {
		bx.ContentH = cursor - bx.ContentY()
	}
}
