// Package html wraps golang.org/x/net/html with the node shape the rest of
// the render pipeline walks. It owns tag-soup tolerance (unclosed tags,
// implied table sections, entity decoding) by delegating straight to
// x/net/html rather than re-implementing an HTML5 tokenizer.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parser parses an HTML fragment into a Document.
type Parser struct{}

// Node mirrors golang.org/x/net/html.Node, trimmed to the fields the render
// pipeline needs to walk and inspect elements.
type Node struct {
	Type        html.NodeType
	Data        string
	Attr        []html.Attribute
	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

// Document is a parsed HTML fragment, rooted at the synthetic document node
// x/net/html always produces.
type Document struct {
	Root *Node
}

// NewParser creates a new HTML parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses an HTML fragment from a string.
func (p *Parser) ParseString(content string) (*Document, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses an HTML fragment from an io.Reader. Invalid UTF-8 or a
// malformed document surfaces as the returned error; the caller maps it to
// ParseError.
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{Root: convertNode(node, nil)}, nil
}

func convertNode(n *html.Node, parent *Node) *Node {
	if n == nil {
		return nil
	}
	node := &Node{
		Type:   n.Type,
		Data:   n.Data,
		Attr:   n.Attr,
		Parent: parent,
	}
	var lastChild *Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		child := convertNode(c, node)
		if node.FirstChild == nil {
			node.FirstChild = child
		}
		if lastChild != nil {
			lastChild.NextSibling = child
			child.PrevSibling = lastChild
		}
		lastChild = child
	}
	node.LastChild = lastChild
	return node
}

// GetAttr returns an attribute's value, or "" if absent. x/net/html already
// lowercases attribute names while parsing.
func (n *Node) GetAttr(name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// IsElement reports whether the node is an element with the given tag name.
func (n *Node) IsElement(tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// TextContent concatenates all descendant text nodes, unmodified (no
// whitespace collapsing — callers normalize separately).
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}
