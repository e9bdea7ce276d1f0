// Package style resolves an element's ComputedStyle from three layers —
// tag defaults, utility classes, inline declarations — in that priority
// order, folding each layer's values over the previous one in the
// StyleEngine.computeStyleForElement style, generalized from a general
// selector stylesheet down to the fixed utility-class vocabulary this
// module supports.
package style

// TextAlign enumerates the supported text-align values.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Display enumerates the box types a ComputedStyle can resolve to.
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayFlex
	DisplayNone
)

// JustifyContent enumerates main-axis distribution modes for flex layout.
type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyCenter
	JustifyBetween
	JustifyAround
	JustifyEvenly
)

// AlignItems enumerates cross-axis alignment modes for flex layout.
type AlignItems int

const (
	AlignItemsStart AlignItems = iota
	AlignItemsCenter
	AlignItemsEnd
)

// Color is an RGB triple in the 0-1 range PDF color operators expect.
type Color struct {
	R, G, B float64
}

// ComputedStyle is the fully resolved style for one element. It is a
// concrete struct, not a string-keyed property bag: every property the
// render pipeline consults has a named field with an explicit zero value,
// matching the data model's ComputedStyle definition.
type ComputedStyle struct {
	Display Display

	FontSizePt   float64
	FontBold     bool
	FontItalic   bool
	Underline    bool
	TextAlign    TextAlign
	Color        Color
	BackgroundSet bool
	Background   Color

	MarginTop, MarginRight, MarginBottom, MarginLeft   float64
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft float64
	BorderWidthPt float64

	WidthSet  bool
	WidthPt   float64
	WidthPct  float64
	HeightSet bool
	HeightPt  float64

	GapPt float64

	FlexDirectionRow bool
	FlexGrow         float64
	FlexWrap         bool
	JustifyContent   JustifyContent
	AlignItems       AlignItems

	BreakBefore bool
	BreakAfter  bool
	AvoidBreakInside bool
}

// Inherit copies the subset of properties that CSS inheritance carries
// across into a child's starting style (text properties), leaving
// box-model properties at their initial values — inheritance is a
// plain value copy, not a live reference.
func (c ComputedStyle) Inherit() ComputedStyle {
	child := Initial()
	child.FontSizePt = c.FontSizePt
	child.FontBold = c.FontBold
	child.FontItalic = c.FontItalic
	child.Underline = c.Underline
	child.TextAlign = c.TextAlign
	child.Color = c.Color
	return child
}

// Initial returns the CSS-initial-value baseline style: 14pt, normal
// weight/style, left-aligned, black text, no box-model offsets.
func Initial() ComputedStyle {
	return ComputedStyle{
		Display:   DisplayBlock,
		FontSizePt: 14,
		TextAlign:  AlignLeft,
		Color:      Color{0, 0, 0},
	}
}

// Palette is the fixed named-color vocabulary for text-<name>/bg-<name>
// utility classes, resolved once at init.
var Palette = map[string]Color{
	"gray-100": {0.95, 0.95, 0.96},
	"gray-200": {0.90, 0.91, 0.92},
	"gray-300": {0.82, 0.84, 0.86},
	"gray-400": {0.64, 0.67, 0.71},
	"gray-500": {0.42, 0.45, 0.50},
	"gray-600": {0.29, 0.33, 0.39},
	"red-500":   {0.94, 0.27, 0.27},
	"green-500": {0.13, 0.77, 0.37},
	"blue-500":  {0.23, 0.51, 0.96},
	"yellow-500": {0.92, 0.70, 0.03},
	"white": {1, 1, 1},
	"black": {0, 0, 0},
}
