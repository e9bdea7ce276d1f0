package layout

import (
	"testing"

	"github.com/mcpeakdev/rpdf/internal/style"
)

func TestLayoutTextSingleLineFitsWidth(t *testing.T) {
	s := style.Initial()
	bx := &Box{Kind: KindText, Style: s, ContentW: 500, Runs: []InlineRun{{Text: "Hello World", Style: s}}}
	bx.layoutText()

	if len(bx.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(bx.Lines))
	}
	if len(bx.Lines[0].Tokens) != 2 {
		t.Fatalf("len(Tokens) = %d, want 2 words", len(bx.Lines[0].Tokens))
	}
	if bx.Lines[0].Tokens[0].Text != "Hello" || bx.Lines[0].Tokens[1].Text != "World" {
		t.Errorf("tokens = %+v, want [Hello World]", bx.Lines[0].Tokens)
	}
}

func TestLayoutTextWrapsAtNarrowWidth(t *testing.T) {
	s := style.Initial()
	s.FontSizePt = 14
	bx := &Box{Kind: KindText, Style: s, ContentW: 40, Runs: []InlineRun{{Text: "one two three four five", Style: s}}}
	bx.layoutText()

	if len(bx.Lines) < 2 {
		t.Fatalf("len(Lines) = %d, want >= 2 at a 40pt content width", len(bx.Lines))
	}
}

func TestLayoutTextSetsContentHeightFromLineCount(t *testing.T) {
	s := style.Initial()
	s.FontSizePt = 10
	bx := &Box{Kind: KindText, Style: s, ContentW: 40, Runs: []InlineRun{{Text: "one two three four five", Style: s}}}
	bx.layoutText()

	wantH := 0.0
	for _, l := range bx.Lines {
		wantH += l.Height
	}
	if bx.ContentH != wantH {
		t.Errorf("ContentH = %v, want sum of line heights %v", bx.ContentH, wantH)
	}
}

func TestLayoutTextCenterAlignOffsetsLine(t *testing.T) {
	s := style.Initial()
	s.TextAlign = style.AlignCenter
	bx := &Box{Kind: KindText, Style: s, ContentW: 500, Runs: []InlineRun{{Text: "Hi", Style: s}}}
	bx.layoutText()

	if len(bx.Lines) != 1 || len(bx.Lines[0].Tokens) != 1 {
		t.Fatalf("unexpected line/token shape: %+v", bx.Lines)
	}
	if bx.Lines[0].Tokens[0].X <= 0 {
		t.Errorf("centered single-word line X offset = %v, want > 0", bx.Lines[0].Tokens[0].X)
	}
}

func TestLayoutTextEmptyRunsProducesNoLines(t *testing.T) {
	bx := &Box{Kind: KindText, Style: style.Initial(), ContentW: 500}
	bx.layoutText()
	if len(bx.Lines) != 0 {
		t.Errorf("len(Lines) = %d, want 0 for empty Runs", len(bx.Lines))
	}
}
