package style

import (
	"strconv"
	"strings"
)

// typeScale maps the fixed text-xs..text-3xl tokens to point sizes.
var typeScale = map[string]float64{
	"xs": 10, "sm": 12, "base": 14, "lg": 16, "xl": 18, "2xl": 22, "3xl": 28,
}

var widthFractions = map[string]float64{
	"full": 100,
	"1/2":  50,
	"1/3":  100.0 / 3.0,
	"2/3":  200.0 / 3.0,
	"1/4":  25,
	"3/4":  75,
}

// ApplyClasses overlays the space-separated class tokens of a class="" onto
// style, the second cascade layer. Unrecognized tokens are silently
// ignored; order within the list never matters because
// each recognized token writes a disjoint field (ties resolve to
// last-token-wins for tokens that target the same field, which is benign
// since a well-formed class list never repeats a category).
func ApplyClasses(classAttr string, s ComputedStyle) ComputedStyle {
	for _, tok := range strings.Fields(classAttr) {
		applyClassToken(tok, &s)
	}
	return s
}

func applyClassToken(tok string, s *ComputedStyle) {
	switch tok {
	case "font-bold":
		s.FontBold = true
		return
	case "font-normal":
		s.FontBold = false
		return
	case "italic":
		s.FontItalic = true
		return
	case "underline":
		s.Underline = true
		return
	case "text-left":
		s.TextAlign = AlignLeft
		return
	case "text-center":
		s.TextAlign = AlignCenter
		return
	case "text-right":
		s.TextAlign = AlignRight
		return
	case "flex":
		s.Display = DisplayFlex
		s.FlexDirectionRow = true
		return
	case "flex-col":
		s.Display = DisplayFlex
		s.FlexDirectionRow = false
		return
	case "flex-1":
		s.FlexGrow = 1
		return
	case "flex-wrap":
		s.FlexWrap = true
		return
	case "items-center":
		s.AlignItems = AlignItemsCenter
		return
	case "items-start":
		s.AlignItems = AlignItemsStart
		return
	case "items-end":
		s.AlignItems = AlignItemsEnd
		return
	case "justify-center":
		s.JustifyContent = JustifyCenter
		return
	case "justify-between":
		s.JustifyContent = JustifyBetween
		return
	case "justify-around":
		s.JustifyContent = JustifyAround
		return
	case "justify-evenly":
		s.JustifyContent = JustifyEvenly
		return
	case "page", "page-break", "break-after":
		s.BreakAfter = true
		return
	case "break-before":
		s.BreakBefore = true
		return
	case "break-inside-avoid":
		s.AvoidBreakInside = true
		return
	case "w-full", "w-1/2", "w-1/3", "w-2/3", "w-1/4", "w-3/4":
		frac := widthFractions[strings.TrimPrefix(tok, "w-")]
		s.WidthSet = true
		s.WidthPct = frac
		return
	}

	if sz, ok := typeScale[strings.TrimPrefix(tok, "text-")]; ok && strings.HasPrefix(tok, "text-") {
		s.FontSizePt = sz
		return
	}
	if name, ok := stripPrefix(tok, "text-"); ok {
		if c, ok := Palette[name]; ok {
			s.Color = c
			return
		}
	}
	if name, ok := stripPrefix(tok, "bg-"); ok {
		if c, ok := Palette[name]; ok {
			s.Background = c
			s.BackgroundSet = true
			return
		}
	}
	if n, ok := stripPrefix(tok, "gap-"); ok {
		if v, err := strconv.Atoi(n); err == nil {
			s.GapPt = float64(v) * 4
			return
		}
	}
	if n, ok := stripPrefix(tok, "w-"); ok {
		if v, err := strconv.Atoi(n); err == nil {
			s.WidthSet = true
			s.WidthPct = 0
			s.WidthPt = float64(v) * 4
			return
		}
	}
	applySpacingToken(tok, s)
}

func stripPrefix(tok, prefix string) (string, bool) {
	if strings.HasPrefix(tok, prefix) {
		return tok[len(prefix):], true
	}
	return "", false
}

// applySpacingToken handles the `[pm][trbl]?-<n>` spacing grammar (n x 4pt).
func applySpacingToken(tok string, s *ComputedStyle) {
	if len(tok) < 3 || (tok[0] != 'p' && tok[0] != 'm') {
		return
	}
	rest := tok[1:]
	var side byte
	if len(rest) > 0 && strings.ContainsRune("trbl", rune(rest[0])) && len(rest) > 1 && rest[1] == '-' {
		side = rest[0]
		rest = rest[2:]
	} else if len(rest) > 0 && rest[0] == '-' {
		rest = rest[1:]
	} else {
		return
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return
	}
	v := float64(n) * 4
	isPadding := tok[0] == 'p'
	switch side {
	case 't':
		if isPadding {
			s.PaddingTop = v
		} else {
			s.MarginTop = v
		}
	case 'r':
		if isPadding {
			s.PaddingRight = v
		} else {
			s.MarginRight = v
		}
	case 'b':
		if isPadding {
			s.PaddingBottom = v
		} else {
			s.MarginBottom = v
		}
	case 'l':
		if isPadding {
			s.PaddingLeft = v
		} else {
			s.MarginLeft = v
		}
	default:
		if isPadding {
			s.PaddingTop, s.PaddingRight, s.PaddingBottom, s.PaddingLeft = v, v, v, v
		} else {
			s.MarginTop, s.MarginRight, s.MarginBottom, s.MarginLeft = v, v, v, v
		}
	}
}
