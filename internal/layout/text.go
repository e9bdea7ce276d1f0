package layout

import (
	"strings"

	"github.com/mcpeakdev/rpdf/internal/style"
)

// layoutText implements inline line-breaking: runs are split into
// words, accumulated onto a line until the next word would
// overflow the available width, then broken at the most recent space
// (a single over-long word is placed alone and allowed to overflow).
// Line height is 1.2 x the line's max font size; horizontal placement
// honors text-align.
func (bx *Box) layoutText() {
	type word struct {
		text  string
		style style.ComputedStyle
	}
	var words []word
	for _, run := range bx.Runs {
		for _, w := range strings.Fields(run.Text) {
			words = append(words, word{text: w, style: run.Style})
		}
	}

	spaceWidths := map[float64]float64{} // cache per font size, avoids remeasuring " " per run style

	var lines []Line
	var cur []LineToken
	var curWidth float64

	flushLine := func() {
		if len(cur) == 0 {
			return
		}
		lines = append(lines, Line{Tokens: cur})
		cur = nil
		curWidth = 0
	}

	for _, w := range words {
		wordWidth := measureWidth(w.text, w.style)
		sep := 0.0
		if len(cur) > 0 {
			sep = spaceWidth(spaceWidths, w.style)
		}
		if len(cur) > 0 && curWidth+sep+wordWidth > bx.ContentW {
			flushLine()
			sep = 0
		}
		x := curWidth + sep
		cur = append(cur, LineToken{Text: w.text, X: x, Style: w.style})
		curWidth = x + wordWidth
	}
	flushLine()

	cursorY := 0.0
	for i := range lines {
		lf := lineMaxFontSize(lines[i])
		if lf == 0 {
			lf = bx.Style.FontSizePt
		}
		lh := lineHeight(lf)
		lineWidth := lineContentWidth(lines[i])
		offset := alignOffset(bx.Runs, bx.ContentW, lineWidth)
		baseline := cursorY + lf
		lines[i].Top = cursorY
		lines[i].Height = lh
		for j := range lines[i].Tokens {
			lines[i].Tokens[j].X += offset
			lines[i].Tokens[j].BaselineY = baseline
		}
		cursorY += lh
	}
	bx.Lines = lines
	if !bx.Style.HeightSet {
		bx.ContentH = cursorY
	}
}

func spaceWidth(cache map[float64]float64, s style.ComputedStyle) float64 {
	if w, ok := cache[s.FontSizePt]; ok {
		return w
	}
	w := measureWidth(" ", s)
	cache[s.FontSizePt] = w
	return w
}

func lineMaxFontSize(l Line) float64 {
	max := 0.0
	for _, t := range l.Tokens {
		if t.Style.FontSizePt > max {
			max = t.Style.FontSizePt
		}
	}
	return max
}

func lineContentWidth(l Line) float64 {
	w := 0.0
	for _, t := range l.Tokens {
		right := t.X + measureWidth(t.Text, t.Style)
		if right > w {
			w = right
		}
	}
	return w
}

// alignOffset computes the horizontal offset for a line of the given
// width per the owning block's text-align (carried on every run's style,
// since text-align is inherited).
func alignOffset(runs []InlineRun, contentWidth, lineWidth float64) float64 {
	if len(runs) == 0 {
		return 0
	}
	switch runs[0].Style.TextAlign {
	case style.AlignRight:
		return contentWidth - lineWidth
	case style.AlignCenter:
		return (contentWidth - lineWidth) / 2
	default:
		return 0
	}
}
