package lexicon

// ExtractResult holds the main content isolated from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Navigation, footers and sidebars have been removed.
	ContentHTML string
}

// ContentExtractor isolates the main content of a documentation page.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
