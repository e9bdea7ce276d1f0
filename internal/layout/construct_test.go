package layout_test

import (
	"testing"

	"github.com/mcpeakdev/rpdf/internal/layout"
	"github.com/mcpeakdev/rpdf/internal/parser/html"
)

func buildRoot(t *testing.T, src string) *layout.Box {
	t.Helper()
	doc, err := html.NewParser().ParseString(src)
	if err != nil {
		t.Fatalf("ParseString(%q) error: %v", src, err)
	}
	b := &layout.Builder{PageContentWidthPt: 515, PageContentHeightPt: 762}
	root, err := b.Build(doc)
	if err != nil {
		t.Fatalf("Build(%q) error: %v", src, err)
	}
	return root
}

func TestBuildSingleParagraph(t *testing.T) {
	root := buildRoot(t, "<p>Hello</p>")
	if len(root.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(root.Children))
	}
	p := root.Children[0]
	if p.Kind != layout.KindBlock {
		t.Errorf("Kind = %v, want KindBlock", p.Kind)
	}
	if len(p.Children) != 1 || p.Children[0].Kind != layout.KindText {
		t.Fatalf("<p> did not build a single Text child box: %+v", p.Children)
	}
	if got, want := p.Children[0].Runs[0].Text, "Hello"; got != want {
		t.Errorf("text run = %q, want %q", got, want)
	}
}

func TestBuildUnknownTagFlattensChildren(t *testing.T) {
	root := buildRoot(t, "<custom-widget><p>Inside</p></custom-widget>")
	if len(root.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1 (unknown wrapper dropped, <p> kept)", len(root.Children))
	}
	if root.Children[0].Kind != layout.KindBlock {
		t.Errorf("Kind = %v, want KindBlock", root.Children[0].Kind)
	}
}

func TestBuildSpanFlattensIntoParentRuns(t *testing.T) {
	root := buildRoot(t, `<p>Hello <span class="font-bold">World</span></p>`)
	p := root.Children[0]
	if len(p.Children) != 1 || p.Children[0].Kind != layout.KindText {
		t.Fatalf("expected a single Text box, got %+v", p.Children)
	}
	runs := p.Children[0].Runs
	if len(runs) != 2 {
		t.Fatalf("len(Runs) = %d, want 2 (plain run + bold span run)", len(runs))
	}
	if !runs[1].Style.FontBold {
		t.Error("span run did not carry font-bold from its class")
	}
}

func TestBuildImageRejectsNonDataURI(t *testing.T) {
	_, err := (&layout.Builder{PageContentWidthPt: 515, PageContentHeightPt: 762}).Build(mustParse(t, `<img src="http://example.com/x.png">`))
	if err == nil {
		t.Fatal("Build with non-data-URI img src returned no error")
	}
}

func mustParse(t *testing.T, src string) *html.Document {
	t.Helper()
	doc, err := html.NewParser().ParseString(src)
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	return doc
}
