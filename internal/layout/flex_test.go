package layout

import (
	"testing"

	"github.com/mcpeakdev/rpdf/internal/style"
)

func TestLayoutFlexRowDistributesGrow(t *testing.T) {
	flexStyle := style.Initial()
	flexStyle.Display = style.DisplayFlex
	flexStyle.FlexDirectionRow = true

	growStyle := style.Initial()
	growStyle.FlexGrow = 1

	fixedStyle := style.Initial()
	fixedStyle.WidthSet = true
	fixedStyle.WidthPt = 100

	root := &Box{
		Kind:  KindFlex,
		Style: flexStyle,
		Children: []*Box{
			{Kind: KindBlock, Style: fixedStyle},
			{Kind: KindBlock, Style: growStyle},
		},
	}
	root.Layout(0, 0, 400)

	fixed, grow := root.Children[0], root.Children[1]
	if fixed.ContentW != 100 {
		t.Errorf("fixed child ContentW = %v, want 100", fixed.ContentW)
	}
	// grow child's base (no explicit width, no children) is 0;
	// free space = 400 - 100(fixed) - 0(grow base) = 300, all of which
	// goes to the sole flex-grow:1 child.
	if grow.ContentW != 300 {
		t.Errorf("growing child ContentW = %v, want 300 (0 base + 300 free space)", grow.ContentW)
	}
	if grow.X <= fixed.X {
		t.Errorf("growing child X = %v, want to be placed after fixed child X = %v", grow.X, fixed.X)
	}
}

func TestLayoutFlexColumnStacksWithGap(t *testing.T) {
	colStyle := style.Initial()
	colStyle.Display = style.DisplayFlex
	colStyle.FlexDirectionRow = false
	colStyle.GapPt = 10

	childStyle := style.Initial()
	childStyle.HeightSet = true
	childStyle.HeightPt = 20

	root := &Box{
		Kind:  KindFlex,
		Style: colStyle,
		Children: []*Box{
			{Kind: KindBlock, Style: childStyle},
			{Kind: KindBlock, Style: childStyle},
		},
	}
	root.Layout(0, 0, 200)

	first, second := root.Children[0], root.Children[1]
	if second.Y-first.Y != first.OuterHeight()+10 {
		t.Errorf("second.Y - first.Y = %v, want OuterHeight(%v) + gap(10)", second.Y-first.Y, first.OuterHeight())
	}
}

func TestLayoutFlexRowAlignItemsCenterShiftsShorterItem(t *testing.T) {
	flexStyle := style.Initial()
	flexStyle.Display = style.DisplayFlex
	flexStyle.FlexDirectionRow = true
	flexStyle.AlignItems = style.AlignItemsCenter

	tall := style.Initial()
	tall.WidthSet, tall.WidthPt = true, 50
	tall.HeightSet, tall.HeightPt = true, 100

	short := style.Initial()
	short.WidthSet, short.WidthPt = true, 50
	short.HeightSet, short.HeightPt = true, 20

	root := &Box{
		Kind:  KindFlex,
		Style: flexStyle,
		Children: []*Box{
			{Kind: KindBlock, Style: tall},
			{Kind: KindBlock, Style: short},
		},
	}
	root.Layout(0, 0, 200)

	tallBox, shortBox := root.Children[0], root.Children[1]
	if shortBox.Y <= tallBox.Y {
		t.Errorf("shorter item Y = %v, want shifted below taller item Y = %v for align-items:center", shortBox.Y, tallBox.Y)
	}
}
