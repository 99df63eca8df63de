// Package htmltomarkdown renders transformed entries as Markdown for
// terminal output.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hellodict"
)

// Ensure Converter implements hellodict.Converter at compile time.
var _ hellodict.Converter = (*Converter)(nil)

// Converter renders transformed entries as Markdown. Cross references
// become emphasized words, since their routes mean nothing in a terminal,
// and headwords are set in bold.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms entry HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", hellodict.Errorf(hellodict.EINVALID, "empty entry")
	}

	entry, err := c.prepare(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(entry)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// prepare rewrites entry markup into tags Markdown has a notation for.
func (c *Converter) prepare(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", hellodict.Errorf(hellodict.EINVALID, "parse entry: %v", err)
	}
	body := doc.Find("body")

	body.Find("a." + hellodict.CrossRefTag).Each(func(_ int, a *goquery.Selection) {
		a.ReplaceWithHtml("<em>" + escape(a.Text()) + "</em>")
	})
	body.Find("span.hw").Each(func(_ int, hw *goquery.Selection) {
		if hw.ParentsFiltered("h1,h2,h3,h4,h5,h6").Length() > 0 {
			return
		}
		hw.ReplaceWithHtml("<strong>" + escape(hw.Text()) + "</strong>")
	})

	return body.Html()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return htmlEscaper.Replace(strings.TrimSpace(s))
}
