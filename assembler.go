package getnovel

// Assembler turns an ordered list of chapters plus novel metadata into a
// single e-book file. Pure function of its inputs; no network or cache
// access.
type Assembler interface {
	// Assemble writes the e-book into the novel's directory and returns
	// the output path. The cover may be nil, in which case the book is
	// produced cover-less. Returns EEMPTY when chapters is empty.
	Assemble(novel *Novel, chapters []*Chapter, cover *CoverImage) (string, error)
}
