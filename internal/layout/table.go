package layout

// layoutTable implements the table algorithm: the first row is
// authoritative for the column count; columns split the table's content
// width evenly (e.g. a 2-column w-full table on a 515pt content area
// yields 257.5pt per column) unless a cell in that first row carries an
// explicit width; row height is the max of its cells' outer heights; a
// cell's background, if set, paints before its content.
func (bx *Box) layoutTable() {
	if len(bx.Rows) == 0 {
		bx.ContentH = 0
		return
	}
	cols := len(bx.Rows[0])
	bx.ColWidths = bx.computeColWidths(cols)

	cursor := bx.ContentY()
	for _, row := range bx.Rows {
		rowHeight := bx.layoutTableRow(row, cursor)
		cursor += rowHeight
	}
	if !bx.Style.HeightSet {
		bx.ContentH = cursor - bx.ContentY()
	}
}

// computeColWidths splits ContentW across cols, giving an explicit
// first-row cell width priority and distributing the remainder evenly
// across the rest.
func (bx *Box) computeColWidths(cols int) []float64 {
	widths := make([]float64, cols)
	if cols == 0 {
		return widths
	}
	explicit := make([]bool, cols)
	remaining := bx.ContentW
	unexplicitCount := cols
	for i, cell := range bx.Rows[0] {
		if i >= cols {
			break
		}
		if cell.Style.WidthSet {
			w := cell.Style.WidthPt
			if cell.Style.WidthPct > 0 {
				w = cell.Style.WidthPct / 100 * bx.ContentW
			}
			widths[i] = w
			explicit[i] = true
			remaining -= w
			unexplicitCount--
		}
	}
	if unexplicitCount > 0 {
		share := remaining / float64(unexplicitCount)
		if share < 0 {
			share = 0
		}
		for i := range widths {
			if !explicit[i] {
				widths[i] = share
			}
		}
	}
	return widths
}

// layoutTableRow lays out one row's cells left to right at the given
// top y and returns the row's height (the max cell outer height).
// Painting happens later, in the paginator.
func (bx *Box) layoutTableRow(row []*Box, y float64) float64 {
	x := bx.ContentX()
	rowHeight := 0.0
	for i, cell := range row {
		w := bx.ContentW / float64(len(row))
		if i < len(bx.ColWidths) {
			w = bx.ColWidths[i]
		}
		cell.Layout(x, y, w)
		if cell.OuterHeight() > rowHeight {
			rowHeight = cell.OuterHeight()
		}
		x += w
	}
	// second pass: stretch every cell in the row to the row's full height
	// so adjacent cell backgrounds/borders align.
	for _, cell := range row {
		cell.H = rowHeight
		cell.ContentH = rowHeight - cell.PaddingTop - cell.PaddingBottom - 2*cell.BorderWidth
	}
	return rowHeight
}
