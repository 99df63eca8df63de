// Package html2text renders transformed entries as plain text.
package html2text

import (
	"strings"

	"github.com/fwojciec/hellodict"
	"github.com/k3a/html2text"
)

// Ensure Converter implements hellodict.Converter at compile time.
var _ hellodict.Converter = (*Converter)(nil)

// Converter strips markup from entries, keeping link text and line breaks.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert transforms entry HTML into plain text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", hellodict.Errorf(hellodict.EINVALID, "empty entry")
	}
	text := html2text.HTML2TextWithOptions(html,
		html2text.WithUnixLineBreaks(),
		html2text.WithLinksInnerText(),
	)
	return strings.TrimSpace(text), nil
}
