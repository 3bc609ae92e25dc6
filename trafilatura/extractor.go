package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	getnovel "github.com/Clickman777/TgBot"
)

// Ensure Extractor implements getnovel.BodyExtractor at compile time.
var _ getnovel.BodyExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to recover chapter content from pages
// whose markup defeats the site-specific selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBody processes raw HTML and returns the main content.
func (e *Extractor) ExtractBody(rawHTML string) (*getnovel.ChapterContent, error) {
	if rawHTML == "" {
		return nil, getnovel.Errorf(getnovel.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, getnovel.Errorf(getnovel.ENOTFOUND, "content extraction failed: %v", err)
	}

	var body string
	if result.ContentNode != nil {
		body, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, getnovel.Errorf(getnovel.EINTERNAL, "failed to render content: %v", err)
		}
	}
	if body == "" {
		return nil, getnovel.Errorf(getnovel.ENOTFOUND, "no main content found")
	}

	return &getnovel.ChapterContent{
		Title: result.Metadata.Title,
		Body:  body,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
