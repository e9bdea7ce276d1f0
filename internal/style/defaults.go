package style

// tagDefault is a partial override applied on top of Initial()/inherited
// style for a given tag, playing the role of a default user-agent
// stylesheet but expressed as Go struct literals since there is no general selector
// matcher here — only a fixed tag list is supported.
type tagDefault struct {
	fontSizePt  float64
	bold        bool
	marginBottom float64
	align       *TextAlign
}

func alignPtr(a TextAlign) *TextAlign { return &a }

var tagDefaults = map[string]tagDefault{
	"h1": {fontSizePt: 24, bold: true, marginBottom: 12},
	"h2": {fontSizePt: 20, bold: true, marginBottom: 10},
	"h3": {fontSizePt: 16, bold: true, marginBottom: 8},
	"p":  {fontSizePt: 14, marginBottom: 4},
	"th": {bold: true, align: alignPtr(AlignCenter)},
}

// ApplyTagDefault overlays the tag's default properties onto style, the
// first of the three cascade layers (tag default, then classes, then
// inline — applied in that order by the caller).
func ApplyTagDefault(tag string, s ComputedStyle) ComputedStyle {
	d, ok := tagDefaults[tag]
	if !ok {
		return s
	}
	if d.fontSizePt != 0 {
		s.FontSizePt = d.fontSizePt
	}
	if d.bold {
		s.FontBold = true
	}
	if d.marginBottom != 0 {
		s.MarginBottom = d.marginBottom
	}
	if d.align != nil {
		s.TextAlign = *d.align
	}
	return s
}
