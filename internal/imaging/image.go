// Package imaging decodes the base64 data-URI images allowed as <img
// src> values. The data-URI splitting (strip the "data:" prefix, split
// on the first ',' into meta/data, split meta on ';' for mime-type and
// base64 flag) is grounded on internal/res/loader.go's parseDataURL;
// the surrounding HTTP/filesystem resource-loading code is dropped
// entirely since network/filesystem loading is out of scope here — only
// the data-URI parsing shape survives, rewritten around this module's
// own Image box.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/h2non/filetype"

	"github.com/mcpeakdev/rpdf/internal/rendererr"
)

// Format is the decoded image's encoding, constrained to what the PDF
// writer can reference directly (FlateDecode for PNG, DCTDecode
// passthrough for JPEG).
type Format int

const (
	PNG Format = iota
	JPEG
)

// Decoded holds a validated, dimension-known embedded image.
type Decoded struct {
	Format      Format
	Bytes       []byte
	IntrinsicW  int
	IntrinsicH  int
}

// DecodeDataURI validates and decodes an <img src> value. Anything other
// than "data:image/(png|jpeg);base64,<payload>" — including ordinary
// http(s) URLs, since network loading is out of scope — fails with
// ImageError.
func DecodeDataURI(src string) (*Decoded, error) {
	const prefix = "data:"
	if !strings.HasPrefix(src, prefix) {
		return nil, rendererr.New(rendererr.ImageError, "img src is not a data URI")
	}
	rest := src[len(prefix):]
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return nil, rendererr.New(rendererr.ImageError, "malformed data URI: missing comma")
	}
	meta, data := rest[:comma], rest[comma+1:]

	metaParts := strings.Split(meta, ";")
	if len(metaParts) == 0 {
		return nil, rendererr.New(rendererr.ImageError, "malformed data URI: missing media type")
	}
	mimeType := metaParts[0]
	isBase64 := false
	for _, p := range metaParts[1:] {
		if p == "base64" {
			isBase64 = true
		}
	}
	if !isBase64 {
		return nil, rendererr.New(rendererr.ImageError, "data URI must be base64-encoded")
	}

	var format Format
	switch mimeType {
	case "image/png":
		format = PNG
	case "image/jpeg":
		format = JPEG
	default:
		return nil, rendererr.New(rendererr.ImageError, "unsupported image mime type %q", mimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, rendererr.New(rendererr.ImageError, "malformed base64 payload: %v", err)
	}

	if err := verifyMagic(raw, format); err != nil {
		return nil, err
	}
	// Cheap, dependency-driven confirmation of the magic-byte check above.
	kind, err := filetype.Match(raw)
	if err != nil || kind == filetype.Unknown {
		return nil, rendererr.New(rendererr.ImageError, "could not recognize image format")
	}
	if (format == PNG && kind.MIME.Value != "image/png") || (format == JPEG && kind.MIME.Value != "image/jpeg") {
		return nil, rendererr.New(rendererr.ImageError, "declared mime type does not match image contents")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, rendererr.New(rendererr.ImageError, "corrupt image header: %v", err)
	}

	return &Decoded{
		Format:     format,
		Bytes:      raw,
		IntrinsicW: cfg.Width,
		IntrinsicH: cfg.Height,
	}, nil
}

func verifyMagic(raw []byte, format Format) error {
	switch format {
	case PNG:
		if len(raw) < 4 || !bytes.Equal(raw[:4], []byte{0x89, 0x50, 0x4E, 0x47}) {
			return rendererr.New(rendererr.ImageError, "not a PNG file (bad magic)")
		}
	case JPEG:
		if len(raw) < 3 || !bytes.Equal(raw[:3], []byte{0xFF, 0xD8, 0xFF}) {
			return rendererr.New(rendererr.ImageError, "not a JPEG file (bad magic)")
		}
	default:
		return rendererr.New(rendererr.InternalError, fmt.Sprintf("unreachable image format %v", format))
	}
	return nil
}
