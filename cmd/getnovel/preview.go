package main

import (
	"fmt"
	"path/filepath"

	getnovel "github.com/Clickman777/TgBot"
	"github.com/Clickman777/TgBot/download"
)

// Run executes the preview command. It reads from the local chapter cache
// only; download the chapter first if it is missing.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	if c.Chapter < 1 {
		err := getnovel.Errorf(getnovel.EINVALID, "chapter number must be positive")
		fmt.Fprintf(deps.Stderr, "error: %s\n", getnovel.ErrorMessage(err))
		return err
	}

	novel := &getnovel.Novel{
		Title: c.Title,
		Dir:   filepath.Join(deps.LibraryDir, download.SanitizeTitle(c.Title)),
	}

	chapter, err := deps.Chapters.Read(novel, c.Chapter)
	if err != nil {
		if getnovel.ErrorCode(err) == getnovel.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "chapter %d of %q is not downloaded. Run 'getnovel download' first.\n", c.Chapter, c.Title)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", getnovel.ErrorMessage(err))
		}
		return err
	}

	md, err := deps.Converter.Convert(chapter.Body)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", getnovel.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n", chapter.Title, md)
	return nil
}
