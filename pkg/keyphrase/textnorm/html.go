package textnorm

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLStripper removes markup and script content, returning plain text.
type HTMLStripper interface {
	Strip(text string) string
}

// NetStripper strips markup with the x/net/html parser, dropping
// script and style subtrees entirely.
type NetStripper struct{}

// Strip implements HTMLStripper. Parse failures fall back to the
// input unchanged; the character filter downstream still applies.
func (NetStripper) Strip(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(b.String())
}
