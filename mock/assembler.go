package mock

import getnovel "github.com/Clickman777/TgBot"

var _ getnovel.Assembler = (*Assembler)(nil)

// Assembler is a mock implementation of getnovel.Assembler.
type Assembler struct {
	AssembleFn func(novel *getnovel.Novel, chapters []*getnovel.Chapter, cover *getnovel.CoverImage) (string, error)
}

func (a *Assembler) Assemble(novel *getnovel.Novel, chapters []*getnovel.Chapter, cover *getnovel.CoverImage) (string, error) {
	return a.AssembleFn(novel, chapters, cover)
}
