package imaging_test

import (
	"errors"
	"testing"

	"github.com/mcpeakdev/rpdf/internal/imaging"
	"github.com/mcpeakdev/rpdf/internal/rendererr"
)

// tiny1x1PNG is a well-known minimal valid 1x1 transparent PNG, base64-encoded.
const tiny1x1PNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNk+A8AAQUBAScY42YAAAAASUVORK5CYII="

func TestDecodeDataURIValidPNG(t *testing.T) {
	dec, err := imaging.DecodeDataURI("data:image/png;base64," + tiny1x1PNG)
	if err != nil {
		t.Fatalf("DecodeDataURI returned error: %v", err)
	}
	if dec.Format != imaging.PNG {
		t.Errorf("Format = %v, want PNG", dec.Format)
	}
	if dec.IntrinsicW != 1 || dec.IntrinsicH != 1 {
		t.Errorf("intrinsic size = %dx%d, want 1x1", dec.IntrinsicW, dec.IntrinsicH)
	}
}

func TestDecodeDataURIRejectsHTTPURL(t *testing.T) {
	_, err := imaging.DecodeDataURI("http://example.com/x.png")
	if !errors.Is(err, rendererr.ImageError) {
		t.Fatalf("error = %v, want ImageError", err)
	}
}

func TestDecodeDataURIRejectsNonBase64(t *testing.T) {
	_, err := imaging.DecodeDataURI("data:image/png,notbase64data")
	if !errors.Is(err, rendererr.ImageError) {
		t.Fatalf("error = %v, want ImageError", err)
	}
}

func TestDecodeDataURIRejectsUnsupportedMime(t *testing.T) {
	_, err := imaging.DecodeDataURI("data:image/gif;base64,R0lGODlh")
	if !errors.Is(err, rendererr.ImageError) {
		t.Fatalf("error = %v, want ImageError", err)
	}
}

func TestDecodeDataURIRejectsMalformedBase64(t *testing.T) {
	_, err := imaging.DecodeDataURI("data:image/png;base64,***not-valid***")
	if !errors.Is(err, rendererr.ImageError) {
		t.Fatalf("error = %v, want ImageError", err)
	}
}

func TestDecodeDataURIRejectsMismatchedMagic(t *testing.T) {
	// claims PNG but the payload is a JPEG's magic bytes.
	_, err := imaging.DecodeDataURI("data:image/png;base64,/9j/4AAQSkZJRg==")
	if !errors.Is(err, rendererr.ImageError) {
		t.Fatalf("error = %v, want ImageError", err)
	}
}

func TestDecodeDataURIMissingComma(t *testing.T) {
	_, err := imaging.DecodeDataURI("data:image/png;base64")
	if !errors.Is(err, rendererr.ImageError) {
		t.Fatalf("error = %v, want ImageError", err)
	}
}
