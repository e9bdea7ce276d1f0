package layout

import (
	"strings"

	"github.com/mcpeakdev/rpdf/internal/style"
)

// layoutFlexChildren implements the flex model:
// children lay out along the main axis (row by default, column when
// flex-col is set), each item's main-axis size starting from its
// intrinsic content size, then growing to absorb any remaining free
// space proportionally to flex-grow. Wrapping starts a new line when a
// row overflows and flex-wrap is set; cross-axis alignment follows
// align-items, main-axis distribution follows justify-content once all
// grow has been applied.
func (bx *Box) layoutFlexChildren() {
	if bx.Style.FlexDirectionRow {
		bx.layoutFlexRow()
	} else {
		bx.layoutFlexColumn()
	}
}

// layoutFlexColumn treats flex-col as a vertical stack with gap between
// items; flex-grow and wrapping don't apply on the cross-axis-less
// column direction this module supports.
func (bx *Box) layoutFlexColumn() {
	gap := bx.Style.GapPt
	cursor := bx.ContentY()
	for i, child := range bx.Children {
		if i > 0 {
			cursor += gap
		}
		child.Layout(bx.ContentX()+child.Style.MarginLeft, cursor+child.Style.MarginTop, bx.ContentW)
		cursor += child.OuterHeight()
	}
	if !bx.Style.HeightSet {
		bx.ContentH = cursor - bx.ContentY()
	}
}

func (bx *Box) layoutFlexRow() {
	gap := bx.Style.GapPt
	rows := bx.splitFlexRows(gap)

	cursorY := bx.ContentY()
	for _, row := range rows {
		rowHeight := bx.layoutFlexRowLine(row, cursorY, gap)
		cursorY += rowHeight + gap
	}
	if len(rows) > 0 {
		cursorY -= gap
	}
	if !bx.Style.HeightSet {
		bx.ContentH = cursorY - bx.ContentY()
	}
}

// splitFlexRows groups children into wrap lines: if flex-wrap is unset,
// every child lands on a single line regardless of overflow.
func (bx *Box) splitFlexRows(gap float64) [][]*Box {
	if !bx.Style.FlexWrap {
		return [][]*Box{bx.Children}
	}
	var rows [][]*Box
	var cur []*Box
	used := 0.0
	for _, child := range bx.Children {
		w := child.intrinsicMainSize(bx.ContentW)
		add := w
		if len(cur) > 0 {
			add += gap
		}
		if len(cur) > 0 && used+add > bx.ContentW {
			rows = append(rows, cur)
			cur = nil
			used = 0
			add = w
		}
		cur = append(cur, child)
		used += add
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}
	return rows
}

// intrinsicMainSize measures a flex item's base width before grow is
// applied: its explicit width style if set; otherwise, for a block, the
// sum of its own children's fixed widths; for a text box, the measured
// width of its content laid out on a single unbroken line; for an
// image, its intrinsic pixel width.
func (child *Box) intrinsicMainSize(containerWidth float64) float64 {
	if child.Style.WidthSet {
		if child.Style.WidthPct > 0 {
			return child.Style.WidthPct / 100 * containerWidth
		}
		return child.Style.WidthPt
	}
	switch child.Kind {
	case KindText:
		return textIntrinsicWidth(child)
	case KindImage:
		if child.Image != nil {
			return float64(child.Image.IntrinsicW)
		}
		return 0
	default:
		var sum float64
		for _, c := range child.Children {
			if !c.Style.WidthSet {
				continue
			}
			if c.Style.WidthPct > 0 {
				sum += c.Style.WidthPct / 100 * containerWidth
			} else {
				sum += c.Style.WidthPt
			}
		}
		return sum
	}
}

// textIntrinsicWidth measures a Text box's content as if laid out on a
// single line with no wrapping: the max-content width line-breaking
// would otherwise reduce to fit the container.
func textIntrinsicWidth(b *Box) float64 {
	spaceWidths := map[float64]float64{}
	var width float64
	first := true
	for _, run := range b.Runs {
		for _, w := range strings.Fields(run.Text) {
			if !first {
				width += spaceWidth(spaceWidths, run.Style)
			}
			width += measureWidth(w, run.Style)
			first = false
		}
	}
	return width
}

// layoutFlexRowLine lays out one wrap-line of flex items left to right,
// distributing any leftover main-axis space across items by flex-grow,
// then positions the line per justify-content. Cross-axis (align-items)
// placement is resolved in a second pass once every item's height is
// known. Returns the line's height.
func (bx *Box) layoutFlexRowLine(row []*Box, y, gap float64) float64 {
	n := len(row)
	if n == 0 {
		return 0
	}
	base := make([]float64, n)
	totalGrow := 0.0
	totalBase := 0.0
	for i, child := range row {
		base[i] = child.intrinsicMainSize(bx.ContentW)
		totalBase += base[i]
		totalGrow += child.Style.FlexGrow
	}
	totalGaps := gap * float64(n-1)
	free := bx.ContentW - totalBase - totalGaps
	widths := make([]float64, n)
	for i := range row {
		widths[i] = base[i]
		if free > 0 && totalGrow > 0 {
			widths[i] += free * (row[i].Style.FlexGrow / totalGrow)
		}
	}

	usedWidth := totalGaps
	for _, w := range widths {
		usedWidth += w
	}
	startX := bx.ContentX()
	extra := bx.ContentW - usedWidth
	gapBetween := gap
	switch bx.Style.JustifyContent {
	case style.JustifyCenter:
		if extra > 0 {
			startX += extra / 2
		}
	case style.JustifyBetween:
		if n > 1 && extra > 0 {
			gapBetween = gap + extra/float64(n-1)
		}
	case style.JustifyAround:
		if extra > 0 {
			gapBetween = gap + extra/float64(n)
			startX += (extra / float64(n)) / 2
		}
	case style.JustifyEvenly:
		if extra > 0 {
			gapBetween = gap + extra/float64(n+1)
			startX += extra / float64(n+1)
		}
	}

	// First pass: lay out every item top-aligned at y so its height is known.
	x := startX
	rowHeight := 0.0
	for i, child := range row {
		child.Layout(x+child.Style.MarginLeft, y+child.Style.MarginTop, widths[i])
		if child.OuterHeight() > rowHeight {
			rowHeight = child.OuterHeight()
		}
		x += widths[i] + gapBetween
	}

	// Second pass: shift each item down per align-items now that rowHeight
	// (the cross-axis extent of the line) is known.
	if bx.Style.AlignItems != style.AlignItemsStart {
		for _, child := range row {
			delta := 0.0
			switch bx.Style.AlignItems {
			case style.AlignItemsCenter:
				delta = (rowHeight - child.OuterHeight()) / 2
			case style.AlignItemsEnd:
				delta = rowHeight - child.OuterHeight()
			}
			if delta > 0 {
				child.shiftY(delta)
			}
		}
	}
	return rowHeight
}

// shiftY translates a box and its whole subtree down by delta points,
// used to reposition an already-laid-out flex item for cross-axis
// alignment without re-running the layout algorithm.
func (b *Box) shiftY(delta float64) {
	b.Y += delta
	for _, c := range b.Children {
		c.shiftY(delta)
	}
	for _, row := range b.Rows {
		for _, c := range row {
			c.shiftY(delta)
		}
	}
}
