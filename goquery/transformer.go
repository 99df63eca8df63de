// Package goquery implements hellodict.Transformer on top of a parsed DOM.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hellodict"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Transformer implements hellodict.Transformer at compile time.
var _ hellodict.Transformer = (*Transformer)(nil)

// headingSeparator joins alternate spellings merged into one heading.
const headingSeparator = " | "

// Transformer turns raw entry HTML into safe, linked and class-annotated
// HTML. Steps run in order: sanitize, rewrite cross references, map entry
// tags to classed spans, merge alternate-spelling headings and split sense
// blocks into paragraphs.
// Transformer is safe for concurrent use if its Sanitizer is.
type Transformer struct {
	sanitizer   hellodict.Sanitizer
	routePrefix string
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithRoutePrefix sets the route cross references link to.
// Defaults to hellodict.DefaultRoutePrefix.
func WithRoutePrefix(prefix string) Option {
	return func(t *Transformer) {
		t.routePrefix = prefix
	}
}

// NewTransformer creates a Transformer that sanitizes with s.
func NewTransformer(s hellodict.Sanitizer, opts ...Option) *Transformer {
	t := &Transformer{
		sanitizer:   s,
		routePrefix: hellodict.DefaultRoutePrefix,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform returns the transformed entry. If the sanitized markup cannot be
// restructured the sanitized markup is returned as is.
func (t *Transformer) Transform(raw string) string {
	safe := t.sanitizer.Sanitize(raw)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(safe))
	if err != nil {
		return safe
	}
	body := doc.Find("body")
	if body.Length() == 0 {
		return safe
	}

	t.rewriteLinks(body)
	mapEntryTags(body)
	mergeHeadings(body)
	splitSenses(body)

	out, err := body.Html()
	if err != nil {
		return safe
	}
	return out
}

// rewriteLinks points relative links and cross-reference tags at the lookup
// route of the word they name. Absolute links are left alone.
func (t *Transformer) rewriteLinks(body *goquery.Selection) {
	body.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if isAbsolute(href) {
			return
		}
		word := strings.TrimSpace(a.Text())
		if word == "" {
			a.RemoveAttr("href")
			return
		}
		a.SetAttr("href", t.wordURL(word))
		a.AddClass(hellodict.CrossRefTag)
	})

	body.Find(hellodict.CrossRefTag).Each(func(_ int, er *goquery.Selection) {
		word := strings.TrimSpace(er.Text())
		if word == "" {
			rename(er.Get(0), "span", atom.Span)
			er.SetAttr("class", hellodict.CrossRefTag)
			return
		}
		rename(er.Get(0), "a", atom.A)
		er.SetAttr("class", hellodict.CrossRefTag)
		er.SetAttr("href", t.wordURL(word))
	})
}

func (t *Transformer) wordURL(word string) string {
	return hellodict.Route(t.routePrefix, word)
}

// mapEntryTags renders every entry tag as a span classed with the tag name.
func mapEntryTags(body *goquery.Selection) {
	for _, tag := range hellodict.EntryTags {
		body.Find(tag).Each(func(_ int, s *goquery.Selection) {
			rename(s.Get(0), "span", atom.Span)
			s.SetAttr("class", tag)
		})
	}
}

// mergeHeadings joins "<h2>a</h2><br><h2>b</h2>" runs into "<h2>a | b</h2>".
func mergeHeadings(body *goquery.Selection) {
	body.Find("h2").Each(func(_ int, s *goquery.Selection) {
		h := s.Get(0)
		if h.Parent == nil {
			// Already merged into an earlier heading.
			return
		}
		for {
			br := nextSignificant(h.NextSibling)
			if !isElement(br, "br") {
				return
			}
			next := nextSignificant(br.NextSibling)
			if !isElement(next, "h2") {
				return
			}

			h.AppendChild(&html.Node{Type: html.TextNode, Data: headingSeparator})
			moveChildren(next, h)

			parent := h.Parent
			for n := h.NextSibling; n != nil; {
				following := n.NextSibling
				parent.RemoveChild(n)
				if n == next {
					break
				}
				n = following
			}
		}
	})
}

// splitSenses starts a new paragraph at every sense marker so that numbered
// senses do not run together with the entry head or each other.
func splitSenses(body *goquery.Selection) {
	var blocks []*html.Node
	boundaries := make(map[*html.Node][]*html.Node)

	body.Find("span.sn").Each(func(_ int, s *goquery.Selection) {
		boundary, block := senseBoundary(s.Get(0))
		if !isSenseContainer(block) {
			return
		}
		if _, ok := boundaries[block]; !ok {
			blocks = append(blocks, block)
		}
		if list := boundaries[block]; len(list) > 0 && list[len(list)-1] == boundary {
			return
		}
		boundaries[block] = append(boundaries[block], boundary)
	})

	for _, block := range blocks {
		if isElement(block, "p") {
			splitParagraph(block, boundaries[block])
		} else {
			wrapRuns(block, boundaries[block])
		}
	}
}

// senseBoundary returns the ancestor of marker that is a direct child of its
// enclosing block, together with that block.
func senseBoundary(marker *html.Node) (*html.Node, *html.Node) {
	n := marker
	for n.Parent != nil {
		if isBlock(n.Parent) {
			return n, n.Parent
		}
		n = n.Parent
	}
	return nil, nil
}

// splitParagraph moves each marker-led run of p into its own paragraph.
func splitParagraph(p *html.Node, boundaries []*html.Node) {
	for i := len(boundaries) - 1; i >= 0; i-- {
		b := boundaries[i]
		if nextSignificant(p.FirstChild) == b {
			continue
		}
		para := newParagraph()
		for n := b; n != nil; {
			following := n.NextSibling
			p.RemoveChild(n)
			para.AppendChild(n)
			n = following
		}
		p.Parent.InsertBefore(para, p.NextSibling)
	}
}

// wrapRuns wraps each marker-led run inside a non-paragraph block in a
// paragraph. A run ends at the next marker or block element.
func wrapRuns(block *html.Node, boundaries []*html.Node) {
	var stop *html.Node
	for i := len(boundaries) - 1; i >= 0; i-- {
		b := boundaries[i]
		para := newParagraph()
		block.InsertBefore(para, b)
		for n := b; n != nil && n != stop && !isBlock(n); {
			following := n.NextSibling
			block.RemoveChild(n)
			para.AppendChild(n)
			n = following
		}
		stop = para
	}
}

// isSenseContainer reports whether senses inside n may be split into
// paragraphs. Headings and lists keep their structure.
func isSenseContainer(n *html.Node) bool {
	if n == nil {
		return false
	}
	switch n.DataAtom {
	case atom.Body, atom.P, atom.Div, atom.Blockquote, atom.Li:
		return true
	}
	return false
}

func newParagraph() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
}

func rename(n *html.Node, name string, a atom.Atom) {
	n.Data = name
	n.DataAtom = a
	n.Namespace = ""
}

func moveChildren(from, to *html.Node) {
	for c := from.FirstChild; c != nil; {
		next := c.NextSibling
		from.RemoveChild(c)
		to.AppendChild(c)
		c = next
	}
}

// nextSignificant skips whitespace-only text and comments.
func nextSignificant(n *html.Node) *html.Node {
	for ; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.CommentNode:
			continue
		case html.TextNode:
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
		}
		return n
	}
	return nil
}

func isElement(n *html.Node, name string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == name
}

func isBlock(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Body, atom.P, atom.Div, atom.Blockquote, atom.Li,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.Ul, atom.Ol:
		return true
	}
	return false
}

// isAbsolute reports whether href names a scheme or host.
func isAbsolute(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return true
	}
	return u.Scheme != "" || u.Host != ""
}
