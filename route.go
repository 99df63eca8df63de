package hellodict

import "net/url"

// DefaultRoutePrefix is the lookup route cross-reference links point at.
const DefaultRoutePrefix = "#/word/"

// Route returns the route of word under prefix.
func Route(prefix, word string) string {
	return prefix + url.PathEscape(word)
}
