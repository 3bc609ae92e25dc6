package getnovel

// Chapter represents a single chapter of a novel. The chapter number is the
// only identity key within a novel; a chapter's body is treated as immutable
// once successfully stored.
type Chapter struct {
	Number      int
	Title       string
	Body        string // HTML fragment
	SourceURL   string
	ContentHash string
}

// Validate returns an error if the chapter contains invalid fields.
func (c *Chapter) Validate() error {
	if c.Number < 1 {
		return Errorf(EINVALID, "chapter number must be positive")
	}
	if c.Body == "" {
		return Errorf(EINVALID, "chapter body required")
	}
	return nil
}

// Range is a closed interval [Start, End] of chapter numbers.
type Range struct {
	Start int
	End   int
}

// NewRange constructs a validated Range.
func NewRange(start, end int) (Range, error) {
	if start < 1 {
		return Range{}, Errorf(EINVALID, "range start must be at least 1, got %d", start)
	}
	if end < start {
		return Range{}, Errorf(EINVALID, "range end %d precedes start %d", end, start)
	}
	return Range{Start: start, End: end}, nil
}

// Len returns the number of chapters in the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Numbers returns every chapter number in the range in ascending order.
func (r Range) Numbers() []int {
	nums := make([]int, 0, r.Len())
	for n := r.Start; n <= r.End; n++ {
		nums = append(nums, n)
	}
	return nums
}

// Contains reports whether n falls within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// ChapterStore persists one file per (novel, chapter number) pair.
type ChapterStore interface {
	// Exists reports whether a chapter file is present locally.
	Exists(novel *Novel, number int) bool

	// Read reconstructs a chapter from its stored file. The title is
	// recovered from the embedded marker; when absent, "Chapter <n>" is
	// synthesized. Returns ENOTFOUND if no file exists; any other error
	// indicates the file could not be read and should be treated by
	// callers as a cache miss.
	Read(novel *Novel, number int) (*Chapter, error)

	// Write persists a chapter as a single file, embedding the title as a
	// recoverable leading marker before the body.
	Write(novel *Novel, chapter *Chapter) error
}
