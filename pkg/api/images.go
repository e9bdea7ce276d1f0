package api

import (
	"bytes"
	"image"

	"github.com/mcpeakdev/rpdf/internal/imaging"
	"github.com/mcpeakdev/rpdf/internal/pdfwrite"
	"github.com/mcpeakdev/rpdf/internal/rendererr"
)

// buildImageResources converts the box tree's distinct decoded images
// into the raw form pdfwrite.Write embeds. JPEG passes through
// unmodified; PNG is re-decoded and flattened to raw 8-bit RGB samples
// per pdfwrite.ImageResource's documented contract, since this writer
// FlateDecodes PNG data itself rather than reusing the source file's
// own IDAT stream.
func buildImageResources(decoded map[string]*imaging.Decoded) (map[string]pdfwrite.ImageResource, error) {
	out := make(map[string]pdfwrite.ImageResource, len(decoded))
	for key, dec := range decoded {
		if dec.Format == imaging.JPEG {
			out[key] = pdfwrite.ImageResource{
				Key:    key,
				Bytes:  dec.Bytes,
				IsJPEG: true,
				Width:  dec.IntrinsicW,
				Height: dec.IntrinsicH,
			}
			continue
		}

		rgb, err := pngToRGB8(dec.Bytes, dec.IntrinsicW, dec.IntrinsicH)
		if err != nil {
			return nil, err
		}
		out[key] = pdfwrite.ImageResource{
			Key:    key,
			Bytes:  rgb,
			IsJPEG: false,
			Width:  dec.IntrinsicW,
			Height: dec.IntrinsicH,
		}
	}
	return out, nil
}

// pngToRGB8 decodes a validated PNG and flattens it to row-major 8-bit
// RGB samples, dropping alpha and taking the high byte of each 16-bit
// color.RGBA64 channel.
func pngToRGB8(raw []byte, w, h int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, rendererr.New(rendererr.ImageError, "could not re-decode PNG pixels: %v", err)
	}
	bounds := img.Bounds()
	out := make([]byte, 0, w*h*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out = append(out, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}
	return out, nil
}
