// Package htmltext turns page HTML into the visible text a user would read.
package htmltext

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

type Config struct {
	SkipTags  []string
	MaxLength int
}

var DefaultConfig = Config{
	SkipTags: []string{
		"script", "style", "noscript", "svg", "iframe",
		"template", "head", "title", "meta", "link",
	},
	MaxLength: 2000,
}

const truncatedSuffix = " …"

// VisibleText returns the whitespace-collapsed text of the document body,
// truncated to cfg.MaxLength runes. Unparseable input yields "".
func VisibleText(rawHTML string, cfg *Config) string {
	if cfg == nil {
		cfg = &DefaultConfig
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	root := findNode(doc, "body")
	if root == nil {
		root = doc
	}

	var sb strings.Builder
	collectText(root, cfg, &sb)

	text := strings.Join(strings.Fields(sb.String()), " ")
	return truncate(text, cfg.MaxLength)
}

func findNode(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node, cfg *Config, sb *strings.Builder) {
	switch n.Type {
	case html.CommentNode:
		return
	case html.TextNode:
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
		return
	case html.ElementNode:
		if isOneOf(n.Data, cfg.SkipTags...) || isHidden(n) {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, cfg, sb)
	}
}

func isHidden(n *html.Node) bool {
	for _, attr := range n.Attr {
		switch attr.Key {
		case "hidden":
			return true
		case "aria-hidden":
			if attr.Val == "true" {
				return true
			}
		case "type":
			if n.Data == "input" && attr.Val == "hidden" {
				return true
			}
		}
	}
	return false
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + truncatedSuffix
}

func isOneOf(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}
