package layout

import (
	"github.com/mcpeakdev/rpdf/internal/fontmetrics"
	"github.com/mcpeakdev/rpdf/internal/style"
)

// measureWidth measures a string via the embedded font-metrics tables:
// no PDF library instance is needed just to measure text.
func measureWidth(text string, s style.ComputedStyle) float64 {
	return fontmetrics.TextWidthPt(text, baseFontName(s), s.FontSizePt)
}

func baseFontName(s style.ComputedStyle) string {
	return fontmetrics.BaseFontName(fontmetrics.Helvetica, s.FontBold, s.FontItalic)
}

// lineHeight is a fixed 1.2x the font size.
func lineHeight(fontSizePt float64) float64 {
	return fontSizePt * 1.2
}
