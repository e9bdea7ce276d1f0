// Package pdfwrite serializes a paginated page sequence into raw PDF
// bytes. It is hand-rolled rather than built atop a PDF library, grounded
// on the object-table-construction style of gopdfsuit's internal/pdf
// generator (xrefOffsets map + direct bytes.Buffer writes, FlateDecode
// content streams, WinAnsiEncoding Type1 fonts) — scaled down to this
// module's closed feature set: no bookmarks, encryption, signatures, or
// PDF/A.
package pdfwrite

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/mcpeakdev/rpdf/internal/fontmetrics"
	"github.com/mcpeakdev/rpdf/internal/paginate"
	"github.com/mcpeakdev/rpdf/internal/style"
)

// header/footer bytes required verbatim. The comment line's four bytes
// (0xE2 0xE3 0xCF 0xD3) are the conventional ">128" binary marker PDF
// readers use to detect the file as binary when sniffing the first
// line; they are not meant to be read as UTF-8 text.
const (
	pdfHeader = "%PDF-1.7\n%\xe2\xe3\xcf\xd3\n"
	pdfFooter = "%%EOF\n"
	// producer is a fixed string rather than a build-stamped version, so
	// two renders of the same input always produce byte-identical output.
	producer = "rpdf"
)

// fontNames is the Standard 14 font set, in the F1..F14 resource-name
// order the font-metrics table and the content-stream writer share.
var fontNames = []string{
	"Helvetica", "Helvetica-Bold", "Helvetica-Oblique", "Helvetica-BoldOblique",
	"Times-Roman", "Times-Bold", "Times-Italic", "Times-BoldItalic",
	"Courier", "Courier-Bold", "Courier-Oblique", "Courier-BoldOblique",
	"Symbol", "ZapfDingbats",
}

// ImageResource is a decoded image ready to be embedded as an XObject.
// For a JPEG, Bytes is the original DCT-compressed file content, passed
// through unmodified under /DCTDecode, exactly as a real JPEG scan is
// normally embedded in a PDF. For a PNG, Bytes is raw, uncompressed
// 8-bit RGB pixel data (row-major, no PNG scanline filtering) — this
// writer applies its own FlateDecode rather than trying to reuse a
// PNG's internal IDAT stream, since that would require replicating
// PNG's filter-type/predictor handling for every PNG color mode.
type ImageResource struct {
	Key    string
	Bytes  []byte
	IsJPEG bool
	Width  int
	Height int
}

// Write serializes pages into a complete PDF document. images supplies
// the decoded bytes for every ImageKey referenced by an ImagePrimitive.
func Write(pages []*paginate.Page, title string, images map[string]ImageResource) ([]byte, error) {
	w := &writer{xref: map[int]int{}}
	w.buf.WriteString(pdfHeader)

	pageCount := len(pages)
	catalogID := 1
	pagesID := 2
	firstPageID := 3
	firstContentID := firstPageID + pageCount
	firstFontID := firstContentID + pageCount

	imageKeys := sortedImageKeys(images)
	imageIDs := map[string]int{}
	nextID := firstFontID + len(fontNames)
	for _, key := range imageKeys {
		imageIDs[key] = nextID
		nextID++
	}
	infoID := nextID

	w.writeObj(catalogID, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesID))

	kids := make([]string, pageCount)
	for i := 0; i < pageCount; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", firstPageID+i)
	}
	w.writeObj(pagesID, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pageCount))

	fontRefs := make([]string, len(fontNames))
	for i := range fontNames {
		fontRefs[i] = fmt.Sprintf("/F%d %d 0 R", i+1, firstFontID+i)
	}
	xobjectRefs := ""
	if len(imageKeys) > 0 {
		var sb strings.Builder
		sb.WriteString(" /XObject <<")
		for _, key := range imageKeys {
			sb.WriteString(fmt.Sprintf(" /%s %d 0 R", xobjectName(key), imageIDs[key]))
		}
		sb.WriteString(" >>")
		xobjectRefs = sb.String()
	}

	for i, page := range pages {
		pageID := firstPageID + i
		contentID := firstContentID + i
		w.writeObj(pageID, fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %.2f %.2f] /Contents %d 0 R /Resources << /Font << %s >>%s >> >>",
			pagesID, page.WidthPt, page.HeightPt, contentID, strings.Join(fontRefs, " "), xobjectRefs))
	}

	for i, page := range pages {
		contentID := firstContentID + i
		stream := buildContentStream(page)
		w.writeStreamObj(contentID, stream)
	}

	for i, name := range fontNames {
		fontID := firstFontID + i
		w.writeObj(fontID, fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding >>", name))
	}

	for _, key := range imageKeys {
		img := images[key]
		filter := "/FlateDecode"
		data := img.Bytes
		if img.IsJPEG {
			filter = "/DCTDecode"
		} else {
			var compressed bytes.Buffer
			zw := zlib.NewWriter(&compressed)
			zw.Write(data)
			zw.Close()
			data = compressed.Bytes()
		}
		dict := fmt.Sprintf(
			"<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter %s /Length %d >>",
			img.Width, img.Height, filter, len(data))
		w.writeRawStreamObj(imageIDs[key], dict, data)
	}

	w.writeObj(infoID, fmt.Sprintf("<< /Title (%s) /Producer (%s) >>", escapeString(title), producer))

	w.writeXrefAndTrailer(catalogID, infoID)
	w.buf.WriteString(pdfFooter)
	return w.buf.Bytes(), nil
}

type writer struct {
	buf  bytes.Buffer
	xref map[int]int
}

func (w *writer) writeObj(id int, body string) {
	w.xref[id] = w.buf.Len()
	w.buf.WriteString(fmt.Sprintf("%d 0 obj\n%s\nendobj\n", id, body))
}

// writeStreamObj writes a content stream, FlateDecode-compressed when the
// uncompressed data is at least 128 bytes and stored as-is otherwise.
func (w *writer) writeStreamObj(id int, raw []byte) {
	if len(raw) < 128 {
		w.xref[id] = w.buf.Len()
		w.buf.WriteString(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n", id, len(raw)))
		w.buf.Write(raw)
		w.buf.WriteString("\nendstream\nendobj\n")
		return
	}
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	zw.Write(raw)
	zw.Close()
	data := compressed.Bytes()
	w.xref[id] = w.buf.Len()
	w.buf.WriteString(fmt.Sprintf("%d 0 obj\n<< /Filter /FlateDecode /Length %d >>\nstream\n", id, len(data)))
	w.buf.Write(data)
	w.buf.WriteString("\nendstream\nendobj\n")
}

func (w *writer) writeRawStreamObj(id int, dict string, data []byte) {
	w.xref[id] = w.buf.Len()
	w.buf.WriteString(fmt.Sprintf("%d 0 obj\n%s\nstream\n", id, dict))
	w.buf.Write(data)
	w.buf.WriteString("\nendstream\nendobj\n")
}

func (w *writer) writeXrefAndTrailer(catalogID, infoID int) {
	ids := make([]int, 0, len(w.xref)+1)
	ids = append(ids, 0)
	for id := range w.xref {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	start := w.buf.Len()
	w.buf.WriteString(fmt.Sprintf("xref\n0 %d\n", ids[len(ids)-1]+1))
	// objects are numbered contiguously from 1 by construction, so a
	// single subsection covering 0..max is always valid here.
	offsets := make([]int, ids[len(ids)-1]+1)
	for id, off := range w.xref {
		offsets[id] = off
	}
	for id := 0; id < len(offsets); id++ {
		if id == 0 {
			w.buf.WriteString("0000000000 65535 f \n")
			continue
		}
		w.buf.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[id]))
	}
	w.buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root %d 0 R /Info %d 0 R >>\n", len(offsets), catalogID, infoID))
	w.buf.WriteString("startxref\n")
	w.buf.WriteString(fmt.Sprintf("%d\n", start))
}

// buildContentStream renders one page's primitives as a PDF content
// stream, in the order the page lists them: rects as re f / re S, text
// as BT ... Tj ET, images as Do operators.
func buildContentStream(page *paginate.Page) []byte {
	var buf bytes.Buffer
	var curFill style.Color
	fillSet := false

	setFill := func(c style.Color) {
		if fillSet && c == curFill {
			return
		}
		fmt.Fprintf(&buf, "%.3f %.3f %.3f rg\n", c.R, c.G, c.B)
		curFill, fillSet = c, true
	}

	for _, prim := range page.Primitives {
		switch p := prim.(type) {
		case paginate.RectPrimitive:
			if p.Fill {
				setFill(p.FillColor)
				fmt.Fprintf(&buf, "%.2f %.2f %.2f %.2f re f\n", p.X, p.Y, p.W, p.H)
			}
			if p.Stroke {
				fmt.Fprintf(&buf, "%.2f w\n%.3f %.3f %.3f RG\n%.2f %.2f %.2f %.2f re S\n",
					p.StrokeWidth, p.StrokeColor.R, p.StrokeColor.G, p.StrokeColor.B, p.X, p.Y, p.W, p.H)
			}
		case paginate.TextPrimitive:
			setFill(p.Style.Color)
			font := fontResourceName(p.Style)
			fmt.Fprintf(&buf, "BT /%s %.2f Tf %.2f %.2f Td (%s) Tj ET\n",
				font, p.Style.FontSizePt, p.X, p.BaselineY, escapeString(winAnsi(p.Text)))
		case paginate.ImagePrimitive:
			if p.Key == "" {
				continue
			}
			fmt.Fprintf(&buf, "q %.2f 0 0 %.2f %.2f %.2f cm /%s Do Q\n", p.W, p.H, p.X, p.Y, xobjectName(p.Key))
		}
	}
	return buf.Bytes()
}

// fontResourceName maps a ComputedStyle's bold/italic flags to one of
// the four Helvetica resource names (F1-F4), matching
// fontmetrics.BaseFontName's own selection so measured widths and
// rendered glyphs agree.
func fontResourceName(s style.ComputedStyle) string {
	name := fontmetrics.BaseFontName(fontmetrics.Helvetica, s.FontBold, s.FontItalic)
	for i, n := range fontNames {
		if n == name {
			return fmt.Sprintf("F%d", i+1)
		}
	}
	return "F1"
}

// winAnsi transliterates to WinAnsiEncoding's repertoire (Latin-1 plus
// the CP1252 extensions), replacing anything outside it with '?'.
func winAnsi(s string) string {
	enc := charmap.Windows1252.NewEncoder()
	out, err := enc.String(s)
	if err != nil {
		var sb strings.Builder
		for _, r := range s {
			if b, err := charmap.Windows1252.NewEncoder().String(string(r)); err != nil {
				sb.WriteByte('?')
			} else {
				sb.WriteString(b)
			}
		}
		return sb.String()
	}
	return out
}

// escapeString backslash-escapes the three characters PDF literal
// strings require: ( ) \.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `(`, `\(`)
	s = strings.ReplaceAll(s, `)`, `\)`)
	return s
}

func xobjectName(key string) string {
	return "Im_" + sanitizeKey(key)
}

func sanitizeKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

func sortedImageKeys(images map[string]ImageResource) []string {
	keys := make([]string, 0, len(images))
	for k := range images {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
