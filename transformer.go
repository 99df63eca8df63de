package hellodict

// Sanitizer strips every tag and attribute that is not on an allow-list.
// Raw corpus HTML is untrusted and passes through a Sanitizer before it is
// rendered.
type Sanitizer interface {
	Sanitize(html string) string
}

// Transformer turns one raw entry into safe, linked, class-annotated HTML.
type Transformer interface {
	// Transform never fails. Constructs it cannot resolve are stripped.
	Transform(html string) string
}

// EntryTags are the corpus-specific inline tags an entry may use. The
// transformer renders each as a span whose class is the tag name.
var EntryTags = []string{
	"hw",      // headword
	"pr",      // pronunciation
	"pos",     // part of speech
	"fld",     // field of usage
	"sn",      // sense number
	"def",     // definition
	"ety",     // etymology
	"q",       // quotation
	"qau",     // quotation author
	"au",      // authority
	"mark",    // usage mark
	"altname", // alternate name
	"ex",      // example
	"xex",     // example expression
	"syn",     // synonyms
	"plu",     // plural
	"wf",      // word form
	"as",      // as in
	"cd",      // chemical or collocation
}

// CrossRefTag marks a reference to another headword. The transformer turns
// it into a link to the lookup route.
const CrossRefTag = "er"
