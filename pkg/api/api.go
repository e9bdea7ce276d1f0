// Package api is the render pipeline's Go entry point: a
// generate/version/last_error/free_buffer surface, wired to the
// internal parse → style → layout → paginate → pdfwrite stages. It
// owns none of the pipeline logic itself — only validating Config,
// constructing the per-call Logger, and sequencing the stages — the
// same thin-driver role a top-level gompdf.go package plays over its
// own internal packages.
package api

import (
	"unicode/utf8"

	"github.com/mcpeakdev/rpdf/internal/layout"
	"github.com/mcpeakdev/rpdf/internal/logging"
	"github.com/mcpeakdev/rpdf/internal/paginate"
	"github.com/mcpeakdev/rpdf/internal/parser/html"
	"github.com/mcpeakdev/rpdf/internal/pdfwrite"
	"github.com/mcpeakdev/rpdf/internal/rendererr"
	"github.com/mcpeakdev/rpdf/internal/style"
)

// version is a fixed semantic-version-shaped constant backing the
// version() entry point.
const version = "0.1.0"

// Orientation selects the page's portrait/landscape MediaBox.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// Config carries the optional per-call overrides Generate accepts.
type Config struct {
	Title        string
	Orientation  Orientation
	PageWidthPt  float64
	PageHeightPt float64
	PageMarginPt float64
	Debug        bool
}

const (
	a4WidthPt       = 595.0
	a4HeightPt      = 842.0
	defaultMarginPt = 40.0
)

// BufferHandle wraps a produced PDF byte slice. It is the Go-side
// counterpart of the out-of-scope FFI boundary's free_buffer(ptr, len):
// Generate hands one back, ReleaseBuffer drops this module's reference.
type BufferHandle struct {
	bytes []byte
}

// Bytes returns the handle's PDF content, or nil once released.
func (h *BufferHandle) Bytes() []byte { return h.bytes }

// ReleaseBuffer drops the module's reference to the produced bytes.
// Idempotent: calling it more than once, or on an already-released
// handle, is a no-op.
func ReleaseBuffer(h *BufferHandle) {
	if h == nil {
		return
	}
	h.bytes = nil
}

// Version returns this module's version string.
func Version() string { return version }

// LastError returns the calling goroutine's most recent Generate
// failure message, or "" if none.
func LastError() string { return rendererr.LastError() }

// Generate renders htmlBytes into a self-contained PDF 1.7 byte stream
// per cfg. This is the library's primary entry point.
func Generate(htmlBytes []byte, cfg Config) (*BufferHandle, error) {
	rendererr.ClearLastError()

	if len(htmlBytes) == 0 {
		return nil, rendererr.New(rendererr.EmptyInput, "html input is empty")
	}
	if !utf8.Valid(htmlBytes) {
		return nil, rendererr.New(rendererr.ParseError, "html input is not valid UTF-8")
	}

	pageWidthPt, pageHeightPt, marginPt, err := resolvePageGeometry(cfg)
	if err != nil {
		return nil, err
	}
	title := cfg.Title
	if title == "" {
		title = "rpdf output"
	}

	log := logging.New(cfg.Debug)
	defer log.Sync()

	doc, err := html.NewParser().ParseString(string(htmlBytes))
	if err != nil {
		return nil, rendererr.New(rendererr.ParseError, "%v", err)
	}

	contentWidth := pageWidthPt - 2*marginPt
	contentHeight := pageHeightPt - 2*marginPt

	builder := &layout.Builder{
		Log:                 log,
		PageContentWidthPt:  contentWidth,
		PageContentHeightPt: contentHeight,
	}
	root, err := builder.Build(doc)
	if err != nil {
		return nil, err
	}
	if root == nil {
		root = &layout.Box{Kind: layout.KindBlock, Style: style.Initial()}
	}
	root.Layout(marginPt, marginPt, contentWidth)

	paginator := paginate.New(pageWidthPt, pageHeightPt, marginPt)
	pages, err := paginator.Paginate(root)
	if err != nil {
		return nil, err
	}

	images, err := buildImageResources(layout.CollectImages(root))
	if err != nil {
		return nil, err
	}

	pdfBytes, err := pdfwrite.Write(pages, title, images)
	if err != nil {
		return nil, rendererr.New(rendererr.InternalError, "%v", err)
	}

	return &BufferHandle{bytes: pdfBytes}, nil
}

// resolvePageGeometry validates and resolves Config's page-size fields:
// both width/height overrides must be set together or both left at zero
// (⇒ A4), and margin 0 means the 40pt default.
func resolvePageGeometry(cfg Config) (widthPt, heightPt, marginPt float64, err error) {
	if (cfg.PageWidthPt > 0) != (cfg.PageHeightPt > 0) {
		return 0, 0, 0, rendererr.New(rendererr.InternalError, "page_width_pt and page_height_pt must both be set or both zero")
	}

	widthPt, heightPt = a4WidthPt, a4HeightPt
	if cfg.PageWidthPt > 0 {
		widthPt, heightPt = cfg.PageWidthPt, cfg.PageHeightPt
	}
	if cfg.Orientation == Landscape {
		widthPt, heightPt = heightPt, widthPt
	}

	marginPt = defaultMarginPt
	if cfg.PageMarginPt > 0 {
		marginPt = cfg.PageMarginPt
	}
	return widthPt, heightPt, marginPt, nil
}
