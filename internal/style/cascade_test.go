package style_test

import (
	"testing"

	"github.com/mcpeakdev/rpdf/internal/style"
)

func TestResolveTagDefault(t *testing.T) {
	s := style.Resolve("h1", "", "", nil, 515, 762)
	if s.FontSizePt != 24 {
		t.Errorf("h1 FontSizePt = %v, want 24", s.FontSizePt)
	}
	if !s.FontBold {
		t.Error("h1 FontBold = false, want true")
	}
}

func TestResolveClassOverridesTagDefault(t *testing.T) {
	s := style.Resolve("p", "font-bold text-center", "", nil, 515, 762)
	if !s.FontBold {
		t.Error("class font-bold did not set FontBold")
	}
	if s.TextAlign != style.AlignCenter {
		t.Errorf("TextAlign = %v, want AlignCenter", s.TextAlign)
	}
}

func TestResolveInlineStyleOverridesClass(t *testing.T) {
	s := style.Resolve("p", "text-center", "text-align: right", nil, 515, 762)
	if s.TextAlign != style.AlignRight {
		t.Errorf("inline style did not win over class: TextAlign = %v, want AlignRight", s.TextAlign)
	}
}

func TestResolveInheritsTextPropertiesNotBoxModel(t *testing.T) {
	parent := style.Initial()
	parent.FontBold = true
	parent.MarginBottom = 50

	child := style.Resolve("span", "", "", &parent, 515, 762)
	if !child.FontBold {
		t.Error("child did not inherit FontBold from parent")
	}
	if child.MarginBottom != 0 {
		t.Errorf("child inherited MarginBottom = %v, want 0 (box-model properties are not inherited)", child.MarginBottom)
	}
}

func TestWidthFullClassSetsPercent(t *testing.T) {
	s := style.Resolve("table", "w-full", "", nil, 515, 762)
	if !s.WidthSet {
		t.Fatal("w-full did not set WidthSet")
	}
	if s.WidthPct != 100 {
		t.Errorf("WidthPct = %v, want 100", s.WidthPct)
	}
}

func TestPageClassSetsBreakAfter(t *testing.T) {
	s := style.Resolve("div", "page", "", nil, 515, 762)
	if !s.BreakAfter {
		t.Error("class \"page\" did not set BreakAfter")
	}
}

func TestUnknownClassIgnored(t *testing.T) {
	base := style.Resolve("p", "", "", nil, 515, 762)
	withNoise := style.Resolve("p", "not-a-real-class", "", nil, 515, 762)
	if base != withNoise {
		t.Errorf("unknown class token changed ComputedStyle: %+v vs %+v", base, withNoise)
	}
}
