// Package epub assembles downloaded chapters into an EPUB file.
package epub

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/google/uuid"
	"github.com/vincent-petithory/dataurl"

	getnovel "github.com/Clickman777/TgBot"
)

var _ getnovel.Assembler = (*Assembler)(nil)

// chapterCSS styles the per-chapter header so the chapter number and the
// chapter title read as distinct lines.
const chapterCSS = `.chapter-header {
  text-align: center;
  margin-bottom: 30px;
  border-bottom: 1px solid #eee;
  padding-bottom: 15px;
}
.chapter-number {
  display: block;
  font-size: 1.2em;
  color: #888;
  font-weight: bold;
  text-transform: uppercase;
  letter-spacing: 1px;
}
.chapter-title {
  display: block;
  font-size: 2.2em;
  font-weight: bold;
  margin-top: 5px;
}
.title-page {
  text-align: center;
  margin-top: 25%;
}
.title-page .book-title {
  font-size: 2.5em;
  font-weight: bold;
}
.title-page .book-author {
  font-size: 1.3em;
  color: #555;
  margin-top: 1em;
}
`

var coverExtByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Assembler builds EPUB books with go-epub. The output lands in the novel's
// directory, named after the (sanitized) title.
type Assembler struct {
	// Lang is the book language code. Defaults to "en".
	Lang string
}

// NewAssembler creates a new Assembler.
func NewAssembler() *Assembler {
	return &Assembler{Lang: "en"}
}

// Assemble writes an EPUB containing a title page followed by the chapters
// in the given order and returns the output path. The book identifier is
// derived from the novel's source URL so repeated assemblies of the same
// novel produce the same identifier.
func (a *Assembler) Assemble(novel *getnovel.Novel, chapters []*getnovel.Chapter, cover *getnovel.CoverImage) (string, error) {
	if len(chapters) == 0 {
		return "", getnovel.Errorf(getnovel.EEMPTY, "no chapters to assemble for %q", novel.Title)
	}

	book, err := epub.NewEpub(novel.Title)
	if err != nil {
		return "", getnovel.Errorf(getnovel.EINTERNAL, "failed to create book: %v", err)
	}

	lang := a.Lang
	if lang == "" {
		lang = "en"
	}
	book.SetLang(lang)
	book.SetIdentifier("urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(novel.URL)).String())
	if novel.Author != "" {
		book.SetAuthor(novel.Author)
	}
	if novel.Description != "" {
		book.SetDescription(novel.Description)
	}

	cssPath, err := book.AddCSS(dataurl.New([]byte(chapterCSS), "text/css").String(), "styles.css")
	if err != nil {
		return "", getnovel.Errorf(getnovel.EINTERNAL, "failed to add stylesheet: %v", err)
	}

	if cover != nil {
		if err := a.setCover(book, cover); err != nil {
			return "", err
		}
	}

	if _, err := book.AddSection(titlePageHTML(novel), "Title Page", "title.xhtml", cssPath); err != nil {
		return "", getnovel.Errorf(getnovel.EINTERNAL, "failed to add title page: %v", err)
	}

	for _, chapter := range chapters {
		heading := sectionTitle(chapter)
		body := fmt.Sprintf(`<div class="chapter-header">
<span class="chapter-number">Chapter %d</span>
<h1 class="chapter-title">%s</h1>
</div>
%s`, chapter.Number, chapter.Title, chapter.Body)

		filename := fmt.Sprintf("chapter_%d.xhtml", chapter.Number)
		if _, err := book.AddSection(body, heading, filename, cssPath); err != nil {
			return "", getnovel.Errorf(getnovel.EINTERNAL, "failed to add chapter %d: %v", chapter.Number, err)
		}
	}

	if err := os.MkdirAll(novel.Dir, 0o755); err != nil {
		return "", getnovel.Errorf(getnovel.EINTERNAL, "failed to create novel directory: %v", err)
	}
	outputPath := filepath.Join(novel.Dir, sanitizeFilename(novel.Title)+".epub")
	if err := book.Write(outputPath); err != nil {
		return "", getnovel.Errorf(getnovel.EINTERNAL, "failed to write book: %v", err)
	}
	return outputPath, nil
}

// setCover embeds the cover image bytes as a data URL so no temp file is
// needed.
func (a *Assembler) setCover(book *epub.Epub, cover *getnovel.CoverImage) error {
	ext, ok := coverExtByType[cover.ContentType]
	if !ok {
		ext = ".jpg"
	}

	src := dataurl.New(cover.Data, cover.ContentType).String()
	internal, err := book.AddImage(src, "cover"+ext)
	if err != nil {
		return getnovel.Errorf(getnovel.EINTERNAL, "failed to add cover image: %v", err)
	}
	if err := book.SetCover(internal, ""); err != nil {
		return getnovel.Errorf(getnovel.EINTERNAL, "failed to set cover: %v", err)
	}
	return nil
}

// sectionTitle builds the table-of-contents entry for a chapter. Titles that
// already carry a chapter prefix are used verbatim.
func sectionTitle(chapter *getnovel.Chapter) string {
	if strings.HasPrefix(strings.ToLower(chapter.Title), "chapter") {
		return chapter.Title
	}
	return fmt.Sprintf("Chapter %d: %s", chapter.Number, chapter.Title)
}

func titlePageHTML(novel *getnovel.Novel) string {
	var b strings.Builder
	b.WriteString(`<div class="title-page">` + "\n")
	fmt.Fprintf(&b, `<h1 class="book-title">%s</h1>`+"\n", novel.Title)
	if novel.Author != "" {
		fmt.Fprintf(&b, `<p class="book-author">%s</p>`+"\n", novel.Author)
	}
	b.WriteString("</div>\n")
	return b.String()
}

// sanitizeFilename replaces characters that are invalid in filenames.
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	return strings.Trim(result, ".")
}
