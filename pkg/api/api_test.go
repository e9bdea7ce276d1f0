package api_test

import (
	"bytes"
	"compress/zlib"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/mcpeakdev/rpdf/internal/rendererr"
	"github.com/mcpeakdev/rpdf/pkg/api"
)

// decompressedText concatenates every stream in a raw PDF byte stream
// into one string, inflating the zlib-compressed ones and taking the
// short uncompressed ones as-is, enough to search for literal text
// operators without a full PDF content-stream parser.
func decompressedText(t *testing.T, pdf []byte) string {
	t.Helper()
	re := regexp.MustCompile(`(?s)stream\r?\n(.*?)\r?\nendstream`)
	var out bytes.Buffer
	for _, m := range re.FindAllSubmatch(pdf, -1) {
		zr, err := zlib.NewReader(bytes.NewReader(m[1]))
		if err != nil {
			out.Write(m[1])
			continue
		}
		io.Copy(&out, zr)
		zr.Close()
	}
	return out.String()
}

func pageCount(pdf []byte) int {
	return bytes.Count(pdf, []byte("/Type /Page /Parent"))
}

func mustGenerate(t *testing.T, html string, cfg api.Config) *api.BufferHandle {
	t.Helper()
	h, err := api.Generate([]byte(html), cfg)
	if err != nil {
		t.Fatalf("Generate(%q) returned error: %v", html, err)
	}
	return h
}

func TestGenerateEmptyInput(t *testing.T) {
	_, err := api.Generate([]byte(""), api.Config{})
	if !errors.Is(err, rendererr.EmptyInput) {
		t.Fatalf("Generate(\"\") error = %v, want EmptyInput", err)
	}
	if got := api.LastError(); got == "" {
		t.Error("LastError() is empty after a failed Generate call")
	}
}

func TestGenerateSinglePageHeaderFooterAndText(t *testing.T) {
	h := mustGenerate(t, "<p>Hello</p>", api.Config{})
	pdf := h.Bytes()

	if !bytes.HasPrefix(pdf, []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")) {
		t.Errorf("output does not start with the required PDF 1.7 header bytes: %q", pdf[:20])
	}
	if !bytes.HasSuffix(pdf, []byte("%%EOF\n")) {
		t.Errorf("output does not end with %%%%EOF: %q", pdf[len(pdf)-10:])
	}
	if got := pageCount(pdf); got != 1 {
		t.Errorf("page count = %d, want 1", got)
	}
	if text := decompressedText(t, pdf); !bytes.Contains([]byte(text), []byte("Hello")) {
		t.Errorf("content stream does not contain searchable text %q; got %q", "Hello", text)
	}
}

func TestGenerateForcedBreakProducesTwoPages(t *testing.T) {
	h := mustGenerate(t, `<div>A</div><div class="page"></div><div>B</div>`, api.Config{})
	pdf := h.Bytes()

	if got := pageCount(pdf); got != 2 {
		t.Fatalf("page count = %d, want 2", got)
	}
	text := decompressedText(t, pdf)
	if !bytes.Contains([]byte(text), []byte("A")) || !bytes.Contains([]byte(text), []byte("B")) {
		t.Errorf("expected both \"A\" and \"B\" to appear across pages; got %q", text)
	}
}

func TestGenerateImageRejection(t *testing.T) {
	_, err := api.Generate([]byte(`<img src="http://example.com/x.png">`), api.Config{})
	if !errors.Is(err, rendererr.ImageError) {
		t.Fatalf("Generate with non-data-URI img src error = %v, want ImageError", err)
	}
}

func TestGenerateLandscapeOverridesMediaBox(t *testing.T) {
	h := mustGenerate(t, "<p>Hello</p>", api.Config{Orientation: api.Landscape})
	pdf := h.Bytes()
	if !bytes.Contains(pdf, []byte("/MediaBox [0 0 842.00 595.00]")) {
		t.Errorf("landscape output does not contain the expected MediaBox; pdf = %q", pdf)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	const htmlSrc = "<h1>Title</h1><p>Body text.</p>"
	h1 := mustGenerate(t, htmlSrc, api.Config{})
	h2 := mustGenerate(t, htmlSrc, api.Config{})
	if !bytes.Equal(h1.Bytes(), h2.Bytes()) {
		t.Error("two Generate calls with identical input produced different byte streams")
	}
}

func TestGenerateUnknownNoiseIsByteIdentical(t *testing.T) {
	plain := mustGenerate(t, "<p>Hello</p>", api.Config{}).Bytes()
	noisy := mustGenerate(t, `<p class="not-a-real-class" style="not-a-real-prop: 1">Hello</p>`, api.Config{}).Bytes()
	if !bytes.Equal(plain, noisy) {
		t.Error("unknown class/property noise changed the output bytes")
	}
}

func TestGenerateParseErrorOnInvalidUTF8(t *testing.T) {
	_, err := api.Generate([]byte{0xff, 0xfe, 0xfd}, api.Config{})
	if !errors.Is(err, rendererr.ParseError) {
		t.Fatalf("Generate with invalid UTF-8 error = %v, want ParseError", err)
	}
}

func TestReleaseBufferClearsBytes(t *testing.T) {
	h := mustGenerate(t, "<p>Hello</p>", api.Config{})
	api.ReleaseBuffer(h)
	if h.Bytes() != nil {
		t.Error("Bytes() after ReleaseBuffer is not nil")
	}
}

func TestReleaseBufferNilIsNoOp(t *testing.T) {
	api.ReleaseBuffer(nil)
}

func TestVersionIsNonEmpty(t *testing.T) {
	if api.Version() == "" {
		t.Error("Version() is empty")
	}
}
