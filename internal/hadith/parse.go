package hadith

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse extracts a hadith from a sunnah.com page.
//
// The body is the text of every <p> inside div.english_hadith_full whose
// parent carries class hadith_text, one per line. Pages that lay the body
// out in div.text_details instead fall back to that block. The reference is
// the whitespace-joined text of the first div.hadith_reference.
func Parse(r io.Reader) (Hadith, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Hadith{}, fmt.Errorf("parsing page: %w", err)
	}

	container := findFirst(doc, func(n *html.Node) bool {
		return isElement(n, "div") && hasClass(n, "english_hadith_full")
	})
	if container == nil {
		return Hadith{}, ErrNotFound
	}

	var h Hadith
	if narrated := findFirst(container, func(n *html.Node) bool { return hasClass(n, "hadith_narrated") }); narrated != nil {
		h.Narrator = joinedText(narrated)
	}

	var body strings.Builder
	walk(container, func(n *html.Node) {
		if isElement(n, "p") && n.Parent != nil && hasClass(n.Parent, "hadith_text") {
			body.WriteString(textContent(n))
			body.WriteString("\n")
		}
	})
	if body.Len() == 0 {
		if details := findFirst(container, func(n *html.Node) bool { return hasClass(n, "text_details") }); details != nil {
			body.WriteString(joinedText(details))
			body.WriteString("\n")
		}
	}
	h.Text = body.String()

	if ref := findFirst(doc, func(n *html.Node) bool {
		return isElement(n, "div") && hasClass(n, "hadith_reference")
	}); ref != nil {
		h.Reference = joinedText(ref)
	}

	if strings.TrimSpace(h.Text) == "" && h.Narrator == "" {
		return Hadith{}, ErrNotFound
	}
	return h, nil
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates all descendant text nodes as-is.
func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

// joinedText strips each descendant text node and joins the non-empty ones
// with single spaces.
func joinedText(n *html.Node) string {
	var parts []string
	walk(n, func(c *html.Node) {
		if c.Type != html.TextNode {
			return
		}
		if t := strings.TrimSpace(c.Data); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}
