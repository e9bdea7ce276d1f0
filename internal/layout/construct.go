package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/mcpeakdev/rpdf/internal/imaging"
	"github.com/mcpeakdev/rpdf/internal/logging"
	"github.com/mcpeakdev/rpdf/internal/parser/html"
	"github.com/mcpeakdev/rpdf/internal/style"
)

// whitelist is the closed tag vocabulary this module recognizes;
// anything else is an "Unknown" node, dropped at box construction while
// its children are
// still walked as if they were direct children of its parent — so a
// style="" on an unrecognized wrapper never silently deletes whitelisted
// content underneath it.
var whitelist = map[string]bool{
	"h1": true, "h2": true, "h3": true, "p": true, "div": true, "span": true,
	"ul": true, "ol": true, "li": true, "table": true, "tr": true,
	"td": true, "th": true, "img": true,
}

// Builder constructs the box tree for one Generate call.
type Builder struct {
	Log                 *logging.Logger
	PageContentWidthPt  float64
	PageContentHeightPt float64
}

// Build walks doc.Root (an html.Document, x/net/html's implied <html>
// wrapper) and returns the root Block box that holds the document's
// top-level content. The root box is returned even when the document
// contributed no boxes (e.g. every element is display:none); it then
// has no children.
func (b *Builder) Build(doc *html.Document) (*Box, error) {
	body := findBody(doc.Root)
	if body == nil {
		body = doc.Root
	}
	rootStyle := style.Initial()
	children, err := b.buildChildren(body, rootStyle, b.PageContentWidthPt)
	if err != nil {
		return nil, err
	}
	return &Box{Kind: KindBlock, Style: rootStyle, Children: children}, nil
}

func findBody(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.IsElement("body") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}

// buildChildren constructs the Box sequence for one element's children:
// consecutive inline content (text nodes, <span>) coalesces into a
// single Text box; any other whitelisted element becomes its own Box;
// unrecognized elements are skipped but their children are still walked.
func (b *Builder) buildChildren(node *html.Node, parentStyle style.ComputedStyle, availWidth float64) ([]*Box, error) {
	var result []*Box
	var runs []InlineRun
	atBlockStart := true

	flush := func() {
		if len(runs) > 0 {
			cp := make([]InlineRun, len(runs))
			copy(cp, runs)
			result = append(result, &Box{Kind: KindText, Style: parentStyle, Runs: cp})
			runs = nil
		}
	}

	var walk func(n *html.Node) error
	walk = func(n *html.Node) error {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case xhtml.TextNode:
				text := collapseWhitespace(c.Data)
				if atBlockStart {
					text = strings.TrimLeft(text, " ")
				}
				if text == "" {
					continue
				}
				runs = append(runs, InlineRun{Text: text, Style: parentStyle})
				atBlockStart = false
			case xhtml.ElementNode:
				tag := c.Data
				if tag == "span" {
					spanStyle := style.Resolve(tag, c.GetAttr("class"), c.GetAttr("style"), &parentStyle, availWidth, b.PageContentHeightPt)
					if spanStyle.Display == style.DisplayNone {
						continue
					}
					if err := b.collectSpanRuns(c, spanStyle, &runs, &atBlockStart); err != nil {
						return err
					}
					continue
				}
				if !whitelist[tag] {
					b.logIgnored("unknown tag <" + tag + ">")
					if err := walk(c); err != nil {
						return err
					}
					continue
				}
				flush()
				atBlockStart = true
				box, err := b.buildElement(c, parentStyle, availWidth)
				if err != nil {
					return err
				}
				if box != nil {
					result = append(result, box)
				}
			}
		}
		return nil
	}
	if err := walk(node); err != nil {
		return nil, err
	}
	flush()
	return result, nil
}

// collectSpanRuns flattens a <span>'s text content into the parent run
// list (spans never become their own Box; they only contribute styled
// runs), recursing through nested spans.
func (b *Builder) collectSpanRuns(n *html.Node, spanStyle style.ComputedStyle, runs *[]InlineRun, atBlockStart *bool) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xhtml.TextNode:
			text := collapseWhitespace(c.Data)
			if *atBlockStart {
				text = strings.TrimLeft(text, " ")
			}
			if text == "" {
				continue
			}
			*runs = append(*runs, InlineRun{Text: text, Style: spanStyle})
			*atBlockStart = false
		case xhtml.ElementNode:
			if c.Data == "span" {
				nested := style.Resolve("span", c.GetAttr("class"), c.GetAttr("style"), &spanStyle, 0, b.PageContentHeightPt)
				if nested.Display == style.DisplayNone {
					continue
				}
				if err := b.collectSpanRuns(c, nested, runs, atBlockStart); err != nil {
					return err
				}
			} else if !whitelist[c.Data] {
				if err := b.collectSpanRuns(c, spanStyle, runs, atBlockStart); err != nil {
					return err
				}
			}
			// a whitelisted non-span element inside inline flow (rare,
			// malformed markup) is silently dropped rather than breaking
			// the run, since spans carry no block-layout capability.
		}
	}
	return nil
}

// buildElement constructs the Box for one whitelisted, non-span element.
func (b *Builder) buildElement(n *html.Node, parentStyle style.ComputedStyle, availWidth float64) (*Box, error) {
	tag := n.Data
	s := style.Resolve(tag, n.GetAttr("class"), n.GetAttr("style"), &parentStyle, availWidth, b.PageContentHeightPt)
	if s.Display == style.DisplayNone {
		return nil, nil
	}

	switch tag {
	case "img":
		return b.buildImage(n, s)
	case "ul", "ol":
		return b.buildList(n, s, tag == "ol", availWidth)
	case "table":
		return b.buildTable(n, s, availWidth)
	}

	childWidth := availWidth
	if s.WidthSet {
		if s.WidthPct > 0 {
			childWidth = s.WidthPct / 100 * availWidth
		} else {
			childWidth = s.WidthPt
		}
	}
	childWidth -= s.PaddingLeft + s.PaddingRight + 2*s.BorderWidthPt

	kind := KindBlock
	if s.Display == style.DisplayFlex {
		kind = KindFlex
	}
	children, err := b.buildChildren(n, s, childWidth)
	if err != nil {
		return nil, err
	}
	return &Box{Kind: kind, Node: n, Style: s, Children: children}, nil
}

func (b *Builder) buildImage(n *html.Node, s style.ComputedStyle) (*Box, error) {
	src := n.GetAttr("src")
	dec, err := imaging.DecodeDataURI(src)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(dec.Bytes)
	key := hex.EncodeToString(sum[:])
	return &Box{Kind: KindImage, Node: n, Style: s, Image: dec, ImageKey: key}, nil
}

func (b *Builder) buildList(n *html.Node, s style.ComputedStyle, ordered bool, availWidth float64) (*Box, error) {
	var items []*Box
	var walk func(node *html.Node) error
	walk = func(node *html.Node) error {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != xhtml.ElementNode {
				continue
			}
			if c.Data == "li" {
				itemBox, err := b.buildElement(c, s, availWidth-16)
				if err != nil {
					return err
				}
				if itemBox != nil {
					items = append(items, itemBox)
				}
			} else if !whitelist[c.Data] {
				if err := walk(c); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(n); err != nil {
		return nil, err
	}
	return &Box{Kind: KindList, Node: n, Style: s, Ordered: ordered, Children: items}, nil
}

func (b *Builder) buildTable(n *html.Node, s style.ComputedStyle, availWidth float64) (*Box, error) {
	var rows [][]*Box
	var walkRows func(node *html.Node) error
	walkRows = func(node *html.Node) error {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != xhtml.ElementNode {
				continue
			}
			if c.Data == "tr" {
				rowStyle := style.Resolve("tr", c.GetAttr("class"), c.GetAttr("style"), &s, availWidth, b.PageContentHeightPt)
				var cells []*Box
				for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
					if cc.Type != xhtml.ElementNode || (cc.Data != "td" && cc.Data != "th") {
						continue
					}
					cellBox, err := b.buildElement(cc, rowStyle, availWidth)
					if err != nil {
						return err
					}
					if cellBox != nil {
						cells = append(cells, cellBox)
					}
				}
				if len(cells) > 0 {
					rows = append(rows, cells)
				}
			} else if !whitelist[c.Data] {
				if err := walkRows(c); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walkRows(n); err != nil {
		return nil, err
	}
	return &Box{Kind: KindTable, Node: n, Style: s, Rows: rows}, nil
}

func (b *Builder) logIgnored(reason string) {
	if b.Log != nil {
		b.Log.Ignore(reason)
	}
}

// collapseWhitespace implements the whitespace rule: runs of ASCII
// whitespace collapse to a single space.
func collapseWhitespace(s string) string {
	var sb strings.Builder
	inSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			if !inSpace {
				sb.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		sb.WriteRune(r)
		inSpace = false
	}
	return sb.String()
}
