package layout

// layoutImage sizes an Image box: explicit width/height style wins; an
// explicit width with no height (or vice versa) scales the other
// dimension to preserve the decoded image's intrinsic aspect ratio; with
// neither set, the intrinsic pixel dimensions are used directly as point
// dimensions (96 CSS px == 1in of source pixels is not modeled — image
// px maps to pt 1:1).
func (bx *Box) layoutImage(containerWidth float64) {
	var iw, ih float64
	if bx.Image != nil {
		iw, ih = float64(bx.Image.IntrinsicW), float64(bx.Image.IntrinsicH)
	}
	aspect := 1.0
	if ih > 0 {
		aspect = iw / ih
	}

	widthSet := bx.Style.WidthSet
	heightSet := bx.Style.HeightSet

	width := iw
	if widthSet {
		if bx.Style.WidthPct > 0 {
			width = bx.Style.WidthPct / 100 * containerWidth
		} else {
			width = bx.Style.WidthPt
		}
	}
	height := ih
	if heightSet {
		height = bx.Style.HeightPt
	}

	switch {
	case widthSet && !heightSet && aspect > 0:
		height = width / aspect
	case heightSet && !widthSet:
		width = height * aspect
	}

	bx.ContentW = width
	bx.ContentH = height
}
