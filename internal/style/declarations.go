package style

import (
	"strconv"
	"strings"
)

// parseDeclarations splits a style="" attribute value the same way
// css.Parser.parseDeclarations does: split on ';', split each piece on
// the first ':', trim both sides. Unlike a general CSS declaration
// parser there is no `!important` handling — the inline-style grammar
// here doesn't define one.
func parseDeclarations(styleAttr string) [][2]string {
	var out [][2]string
	for _, piece := range strings.Split(styleAttr, ";") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		idx := strings.Index(piece, ":")
		if idx < 0 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(piece[:idx]))
		val := strings.TrimSpace(piece[idx+1:])
		if prop == "" || val == "" {
			continue
		}
		out = append(out, [2]string{prop, val})
	}
	return out
}

// ApplyInlineStyle overlays a style="" attribute onto s, the third and
// highest-priority cascade layer. Declarations are applied in source
// order so the last declaration for a given property wins. Unknown
// properties and malformed values are silently ignored.
func ApplyInlineStyle(styleAttr string, s ComputedStyle, containerWidthPt, pageContentHeightPt float64) ComputedStyle {
	for _, d := range parseDeclarations(styleAttr) {
		applyDeclaration(d[0], d[1], &s, containerWidthPt, pageContentHeightPt)
	}
	return s
}

func applyDeclaration(prop, val string, s *ComputedStyle, containerWidthPt, pageContentHeightPt float64) {
	switch prop {
	case "color":
		if c, ok := parseColor(val); ok {
			s.Color = c
		}
	case "background-color":
		if c, ok := parseColor(val); ok {
			s.Background = c
			s.BackgroundSet = true
		}
	case "font-size":
		if pt, ok := parseLength(val, 0); ok {
			s.FontSizePt = pt
		}
	case "font-weight":
		switch val {
		case "bold", "700":
			s.FontBold = true
		case "normal", "400":
			s.FontBold = false
		}
	case "font-style":
		switch val {
		case "italic":
			s.FontItalic = true
		case "normal":
			s.FontItalic = false
		}
	case "text-decoration":
		switch val {
		case "underline":
			s.Underline = true
		case "none":
			s.Underline = false
		}
	case "text-align":
		switch val {
		case "left":
			s.TextAlign = AlignLeft
		case "center":
			s.TextAlign = AlignCenter
		case "right":
			s.TextAlign = AlignRight
		}
	case "width":
		applyLengthOrPercent(val, containerWidthPt, func(pt float64) {
			s.WidthSet = true
			s.WidthPct = 0
			s.WidthPt = pt
		}, func(pct float64) {
			s.WidthSet = true
			s.WidthPct = pct
			s.WidthPt = 0
		})
	case "height":
		applyLengthOrPercent(val, pageContentHeightPt, func(pt float64) {
			s.HeightSet = true
			s.HeightPt = pt
		}, func(pct float64) {
			s.HeightSet = true
			s.HeightPt = pct / 100 * pageContentHeightPt
		})
	case "margin":
		if pt, ok := parseLength(val, 0); ok {
			s.MarginTop, s.MarginRight, s.MarginBottom, s.MarginLeft = pt, pt, pt, pt
		}
	case "margin-top":
		if pt, ok := parseLength(val, 0); ok {
			s.MarginTop = pt
		}
	case "margin-right":
		if pt, ok := parseLength(val, 0); ok {
			s.MarginRight = pt
		}
	case "margin-bottom":
		if pt, ok := parseLength(val, 0); ok {
			s.MarginBottom = pt
		}
	case "margin-left":
		if pt, ok := parseLength(val, 0); ok {
			s.MarginLeft = pt
		}
	case "padding":
		if pt, ok := parseLength(val, 0); ok {
			s.PaddingTop, s.PaddingRight, s.PaddingBottom, s.PaddingLeft = pt, pt, pt, pt
		}
	case "padding-top":
		if pt, ok := parseLength(val, 0); ok {
			s.PaddingTop = pt
		}
	case "padding-right":
		if pt, ok := parseLength(val, 0); ok {
			s.PaddingRight = pt
		}
	case "padding-bottom":
		if pt, ok := parseLength(val, 0); ok {
			s.PaddingBottom = pt
		}
	case "padding-left":
		if pt, ok := parseLength(val, 0); ok {
			s.PaddingLeft = pt
		}
	case "border-width":
		if pt, ok := parseLength(val, 0); ok {
			s.BorderWidthPt = pt
		}
	case "gap":
		if pt, ok := parseLength(val, 0); ok {
			s.GapPt = pt
		}
	case "break-after", "page-break-after":
		if val == "page" || val == "always" {
			s.BreakAfter = true
		}
	case "break-before", "page-break-before":
		if val == "page" || val == "always" {
			s.BreakBefore = true
		}
	case "page-break-inside":
		if val == "avoid" {
			s.AvoidBreakInside = true
		}
	}
}

// applyLengthOrPercent dispatches a width/height value to either the pt or
// percent callback. The percent callback receives the raw percentage;
// resolving it against a base is left to the callback.
func applyLengthOrPercent(val string, base float64, onPt func(float64), onPct func(float64)) {
	val = strings.TrimSpace(val)
	if strings.HasSuffix(val, "%") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
		if err != nil {
			return
		}
		onPct(n)
		return
	}
	if pt, ok := parseLength(val, 0); ok {
		onPt(pt)
	}
}

// parseLength parses an {n}px|pt|rem length (1px = 1pt, rem = 14pt).
// Returns ok=false for anything else, including bare numbers and
// percentages (handled separately where percent is meaningful).
func parseLength(val string, _ float64) (float64, bool) {
	val = strings.TrimSpace(val)
	for _, unit := range []string{"px", "pt"} {
		if strings.HasSuffix(val, unit) {
			n, err := strconv.ParseFloat(strings.TrimSuffix(val, unit), 64)
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	if strings.HasSuffix(val, "rem") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(val, "rem"), 64)
		if err != nil {
			return 0, false
		}
		return n * 14, true
	}
	return 0, false
}

// parseColor accepts #rgb, #rrggbb, and rgb(r,g,b), matching the
// renderer's parseColor/parseHexColor (internal/render/pdf/pdf.go),
// scaled into the 0-1 float range this module's Color uses instead of
// 0-255 ints.
func parseColor(val string) (Color, bool) {
	val = strings.TrimSpace(val)
	if strings.HasPrefix(val, "#") {
		return parseHexColor(val[1:])
	}
	if strings.HasPrefix(val, "rgb(") && strings.HasSuffix(val, ")") {
		inner := val[4 : len(val)-1]
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return Color{}, false
		}
		var vals [3]float64
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return Color{}, false
			}
			vals[i] = float64(n) / 255
		}
		return Color{vals[0], vals[1], vals[2]}, true
	}
	return Color{}, false
}

func parseHexColor(hex string) (Color, bool) {
	expand := func(c byte) (float64, bool) {
		v, err := strconv.ParseUint(string(c)+string(c), 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(v) / 255, true
	}
	pair := func(s string) (float64, bool) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(v) / 255, true
	}
	switch len(hex) {
	case 3:
		r, ok1 := expand(hex[0])
		g, ok2 := expand(hex[1])
		b, ok3 := expand(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return Color{r, g, b}, true
	case 6:
		r, ok1 := pair(hex[0:2])
		g, ok2 := pair(hex[2:4])
		b, ok3 := pair(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return Color{r, g, b}, true
	}
	return Color{}, false
}
