package pdfwrite_test

import (
	"bytes"
	"testing"

	"github.com/mcpeakdev/rpdf/internal/paginate"
	"github.com/mcpeakdev/rpdf/internal/pdfwrite"
	"github.com/mcpeakdev/rpdf/internal/style"
)

func onePagePDF(t *testing.T) []byte {
	t.Helper()
	pages := []*paginate.Page{
		{
			WidthPt:  595,
			HeightPt: 842,
			Primitives: []paginate.Primitive{
				paginate.TextPrimitive{X: 40, BaselineY: 780, Text: "Hello", Style: style.Initial()},
			},
		},
	}
	pdf, err := pdfwrite.Write(pages, "test doc", nil)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	return pdf
}

func TestWriteHeaderAndFooter(t *testing.T) {
	pdf := onePagePDF(t)
	if !bytes.HasPrefix(pdf, []byte("%PDF-1.7\n")) {
		t.Error("output does not start with %PDF-1.7")
	}
	if !bytes.HasSuffix(pdf, []byte("%%EOF\n")) {
		t.Error("output does not end with %%EOF")
	}
}

func TestWriteObjectOrdering(t *testing.T) {
	pdf := onePagePDF(t)
	catalogIdx := bytes.Index(pdf, []byte("/Type /Catalog"))
	pagesIdx := bytes.Index(pdf, []byte("/Type /Pages"))
	pageIdx := bytes.Index(pdf, []byte("/Type /Page /Parent"))
	fontIdx := bytes.Index(pdf, []byte("/Type /Font"))

	if catalogIdx < 0 || pagesIdx < 0 || pageIdx < 0 || fontIdx < 0 {
		t.Fatalf("missing an expected object in output: catalog=%d pages=%d page=%d font=%d", catalogIdx, pagesIdx, pageIdx, fontIdx)
	}
	if !(catalogIdx < pagesIdx && pagesIdx < pageIdx && pageIdx < fontIdx) {
		t.Errorf("objects out of order: Catalog=%d Pages=%d Page=%d Font=%d", catalogIdx, pagesIdx, pageIdx, fontIdx)
	}
}

func TestWriteEmptyPagesStillProducesValidShell(t *testing.T) {
	pdf, err := pdfwrite.Write(nil, "empty", nil)
	if err != nil {
		t.Fatalf("Write(nil pages) returned error: %v", err)
	}
	if !bytes.Contains(pdf, []byte("/Count 0")) {
		t.Error("zero-page document does not report /Count 0")
	}
}

func TestWriteInfoHasTitleAndProducer(t *testing.T) {
	pdf := onePagePDF(t)
	if !bytes.Contains(pdf, []byte("/Title (test doc)")) {
		t.Error("Info object missing /Title")
	}
	if !bytes.Contains(pdf, []byte("/Producer (")) {
		t.Error("Info object missing /Producer")
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	a := onePagePDF(t)
	b := onePagePDF(t)
	if !bytes.Equal(a, b) {
		t.Error("Write produced different bytes for identical input")
	}
}
