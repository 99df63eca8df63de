package hellodict

// Converter converts transformed entry HTML into another text format for
// display outside a browser.
type Converter interface {
	// Convert transforms HTML content into the target format.
	Convert(html string) (string, error)
}
