package style

// Resolve computes the ComputedStyle for one element: start from the
// parent's inherited subset, overlay the tag default, then classes, then
// inline declarations — precedence order inline > class > tag default >
// inherited > initial, the same user-agent -> author -> inline fold
// computeStyleForElement uses.
func Resolve(tag, classAttr, styleAttr string, parent *ComputedStyle, containerWidthPt, pageContentHeightPt float64) ComputedStyle {
	var s ComputedStyle
	if parent != nil {
		s = parent.Inherit()
	} else {
		s = Initial()
	}
	s = ApplyTagDefault(tag, s)
	s = ApplyClasses(classAttr, s)
	s = ApplyInlineStyle(styleAttr, s, containerWidthPt, pageContentHeightPt)
	return s
}
