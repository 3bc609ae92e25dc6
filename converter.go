package getnovel

// Converter converts chapter HTML to Markdown for terminal previews.
type Converter interface {
	Convert(html string) (string, error)
}
