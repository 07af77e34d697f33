package importer

import (
	"io"
	"strings"

	"github.com/nikbrunner/todo/internal/model"
	"golang.org/x/net/html"
)

// ParseHTMLItems collects the text of every <li> element in document order.
// Nested lists are flattened: an outer item keeps only its own text and each
// inner item follows it. Items without text are skipped.
func ParseHTMLItems(r io.Reader) (*model.List, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	list := model.NewList()

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.ToLower(n.Data) == "li" {
			if text := getItemText(n); text != "" {
				list.Append(text)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return list, nil
}

// getItemText returns the text content of an <li>, excluding nested lists.
// Adjacent inline text joins as written; <br> and block elements separate
// words. Runs of whitespace collapse to a single space.
func getItemText(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "ul", "ol", "script", "style":
				return
			case "br":
				text.WriteByte(' ')
				return
			case "p", "div":
				text.WriteByte(' ')
				defer text.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extract(c)
	}
	return strings.Join(strings.Fields(text.String()), " ")
}
