package mock

import "github.com/fwojciec/hellodict"

var _ hellodict.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of hellodict.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}

var _ hellodict.Transformer = (*Transformer)(nil)

// Transformer is a mock implementation of hellodict.Transformer.
type Transformer struct {
	TransformFn func(html string) string
}

func (t *Transformer) Transform(html string) string {
	return t.TransformFn(html)
}
