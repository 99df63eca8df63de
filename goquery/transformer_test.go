package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/hellodict/bluemonday"
	"github.com/fwojciec/hellodict/goquery"
	"github.com/fwojciec/hellodict/mock"
	"github.com/stretchr/testify/assert"
)

func newTransformer(opts ...goquery.Option) *goquery.Transformer {
	return goquery.NewTransformer(bluemonday.NewSanitizer(), opts...)
}

func TestTransformer_Sanitizes(t *testing.T) {
	t.Parallel()

	tr := newTransformer()

	t.Run("removes script elements", func(t *testing.T) {
		t.Parallel()

		out := tr.Transform(`<p>ok</p><script>alert(1)</script><img src=x onerror=alert(1)>`)

		assert.Equal(t, "<p>ok</p>", out)
	})

	t.Run("removes scripts hidden in cross references", func(t *testing.T) {
		t.Parallel()

		out := tr.Transform(`<er><script>alert(1)</script>Ward</er>`)

		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "alert")
		assert.Contains(t, out, ">Ward</a>")
	})

	t.Run("uses the sanitizer output", func(t *testing.T) {
		t.Parallel()

		var got string
		s := &mock.Sanitizer{
			SanitizeFn: func(html string) string {
				got = html
				return "<p>clean</p>"
			},
		}

		out := goquery.NewTransformer(s).Transform("<p>dirty</p>")

		assert.Equal(t, "<p>dirty</p>", got)
		assert.Equal(t, "<p>clean</p>", out)
	})

	t.Run("does not panic on malformed markup", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			`<p><b>unclosed <i>tags</p></div>`,
			`<h2>only</h2><br>`,
			`<sn>`,
			`<<<>>>`,
			"",
		}
		for _, in := range inputs {
			assert.NotPanics(t, func() { tr.Transform(in) }, in)
		}
	})
}

func TestTransformer_Links(t *testing.T) {
	t.Parallel()

	t.Run("rewrites cross reference tags into lookup links", func(t *testing.T) {
		t.Parallel()

		out := newTransformer().Transform(`See <er>Ward</er>.`)

		assert.Equal(t, `See <a class="er" href="#/word/Ward">Ward</a>.`, out)
	})

	t.Run("rewrites relative links using the link text", func(t *testing.T) {
		t.Parallel()

		out := newTransformer().Transform(`<a href="ward">Ward off</a>`)

		assert.Equal(t, `<a href="#/word/Ward%20off" class="er">Ward off</a>`, out)
	})

	t.Run("leaves absolute links alone", func(t *testing.T) {
		t.Parallel()

		out := newTransformer().Transform(`<a href="https://gcide.gnu.org.ua/">GCIDE</a>`)

		assert.Equal(t, `<a href="https://gcide.gnu.org.ua/">GCIDE</a>`, out)
	})

	t.Run("honors a custom route prefix", func(t *testing.T) {
		t.Parallel()

		out := newTransformer(goquery.WithRoutePrefix("/word/")).Transform(`<er>Ward</er>`)

		assert.Equal(t, `<a class="er" href="/word/Ward">Ward</a>`, out)
	})
}

func TestTransformer_EntryTags(t *testing.T) {
	t.Parallel()

	out := newTransformer().Transform(`<hw>Word</hw> <pos>n.</pos> <ety>[AS.]</ety>`)

	assert.Equal(t, `<span class="hw">Word</span> <span class="pos">n.</span> <span class="ety">[AS.]</span>`, out)
	assert.NotContains(t, out, "<hw>")
}

func TestTransformer_Headings(t *testing.T) {
	t.Parallel()

	t.Run("merges alternate spellings", func(t *testing.T) {
		t.Parallel()

		out := newTransformer().Transform(`<h2>Color</h2><br /><h2>Colour</h2><p>Hue.</p>`)

		assert.Equal(t, `<h2>Color | Colour</h2><p>Hue.</p>`, out)
	})

	t.Run("merges chains left to right", func(t *testing.T) {
		t.Parallel()

		out := newTransformer().Transform("<h2>A</h2><br/>\n<h2>B</h2> <br/><h2>C</h2>")

		assert.Equal(t, `<h2>A | B | C</h2>`, out)
	})

	t.Run("keeps headings without a line break apart", func(t *testing.T) {
		t.Parallel()

		out := newTransformer().Transform(`<h2>A</h2><h2>B</h2>`)

		assert.Equal(t, `<h2>A</h2><h2>B</h2>`, out)
	})
}

func TestTransformer_Senses(t *testing.T) {
	t.Parallel()

	t.Run("splits the head from numbered senses", func(t *testing.T) {
		t.Parallel()

		out := newTransformer().Transform(`<p><hw>Word</hw> <pos>n.</pos> <sn>1.</sn> A sound. <sn>2.</sn> A promise.</p>`)

		expected := `<p><span class="hw">Word</span> <span class="pos">n.</span> </p>` +
			`<p><span class="sn">1.</span> A sound. </p>` +
			`<p><span class="sn">2.</span> A promise.</p>`
		assert.Equal(t, expected, out)
	})

	t.Run("does not leave an empty paragraph when a sense leads", func(t *testing.T) {
		t.Parallel()

		out := newTransformer().Transform(`<p><sn>1.</sn> One. <sn>2.</sn> Two.</p>`)

		assert.Equal(t, `<p><span class="sn">1.</span> One. </p><p><span class="sn">2.</span> Two.</p>`, out)
	})

	t.Run("wraps top level senses in paragraphs", func(t *testing.T) {
		t.Parallel()

		out := newTransformer().Transform(`<hw>Word</hw> <sn>1.</sn> One. <sn>2.</sn> Two.`)

		expected := `<span class="hw">Word</span> ` +
			`<p><span class="sn">1.</span> One. </p>` +
			`<p><span class="sn">2.</span> Two.</p>`
		assert.Equal(t, expected, out)
	})

	t.Run("leaves single paragraphs without senses alone", func(t *testing.T) {
		t.Parallel()

		out := newTransformer().Transform(`<p>Plain text.</p>`)

		assert.Equal(t, `<p>Plain text.</p>`, out)
	})
}

func TestTransformer_IsDeterministic(t *testing.T) {
	t.Parallel()

	tr := newTransformer()
	in := strings.Repeat(`<p><hw>A</hw> <sn>1.</sn> x <er>B</er></p>`, 3)

	assert.Equal(t, tr.Transform(in), tr.Transform(in))
}
