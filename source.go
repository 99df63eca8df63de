package hellodict

import (
	"net/url"
	"strings"
)

// DefaultSource is the versioned GCIDE corpus the application ships with.
// The integrity value is a placeholder until the release asset is
// published: it matches no corpus, so loading DefaultSource fails
// verification. Replace it with the asset's digest (see Integrity) and
// update it together with the URL.
var DefaultSource = Source{
	URL:       "https://wcleung.github.io/hellodict/assets/gcide-0.51.json.zst",
	Integrity: "sha384-oqVuAfXRKap7fdgcCY5uykM6+R9GqQ8K/uxy9rx7HNQlGYl1kPzQho1wx4JwY8wC",
}

// Source identifies a corpus and the subresource integrity value its bytes
// must match.
type Source struct {
	// URL of the Zstandard-compressed JSON corpus.
	URL string `json:"url"`

	// Integrity is a subresource integrity value such as "sha384-<base64>".
	// Several space-separated values may be given.
	Integrity string `json:"integrity,omitempty"`
}

// Validate returns an error if the source cannot be fetched safely.
// Remote https sources must carry an integrity value.
func (s Source) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "corpus URL required")
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return Errorf(EINVALID, "invalid corpus URL: %v", err)
	}
	if strings.EqualFold(u.Scheme, "https") && strings.TrimSpace(s.Integrity) == "" {
		return Errorf(EINVALID, "integrity required for %s", s.URL)
	}
	return nil
}
