// Package bluemonday provides an allow-list implementation of
// hellodict.Sanitizer.
package bluemonday

import (
	"regexp"

	"github.com/fwojciec/hellodict"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements hellodict.Sanitizer at compile time.
var _ hellodict.Sanitizer = (*Sanitizer)(nil)

// classPattern restricts class values to plain identifiers.
var classPattern = regexp.MustCompile(`^[A-Za-z0-9_ -]*$`)

// structuralTags are the generic HTML elements entries may use.
var structuralTags = []string{
	"p", "br", "h1", "h2", "h3", "h4",
	"b", "i", "em", "strong", "u", "sup", "sub", "small",
	"ul", "ol", "li", "blockquote", "span",
}

// Sanitizer strips markup that is not on the entry allow-list. Disallowed
// elements are removed rather than escaped; the content of script and style
// elements is dropped with them.
// Sanitizer is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with the entry allow-list.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements(structuralTags...)
	p.AllowNoAttrs().OnElements(hellodict.EntryTags...)
	p.AllowNoAttrs().OnElements(hellodict.CrossRefTag)

	p.AllowAttrs("class").Matching(classPattern).OnElements("span")
	p.AllowAttrs("href", "name").OnElements("a")
	p.AllowURLSchemes("http", "https")
	p.AllowRelativeURLs(true)

	return &Sanitizer{policy: p}
}

// Sanitize returns html with every disallowed tag and attribute removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
