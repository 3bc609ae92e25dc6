package getnovel

// LedgerEntry records, per novel title, every chapter number ever
// successfully materialized locally, across all historical operations.
// The chapter set grows monotonically; it never shrinks except by external
// interference.
type LedgerEntry struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	URL           string   `json:"url"`
	CoverURL      string   `json:"coverUrl"`
	TotalChapters int      `json:"totalChapters"`
	Genres        []string `json:"genres,omitempty"`
	Description   string   `json:"description,omitempty"`
	Chapters      []int    `json:"chapters"` // sorted ascending
}

// Ledger answers "what is the highest chapter ever downloaded for novel X"
// and merges newly downloaded chapter numbers into the per-title record.
//
// Updates are read-modify-write with no inter-process locking; concurrent
// runs against the same title are not safe (single-operator assumption).
type Ledger interface {
	// LastDownloaded returns the highest recorded chapter number for the
	// title, or 0 if the novel was never recorded.
	LastDownloaded(title string) (int, error)

	// Record merges the chapter numbers into the title's entry, refreshing
	// the metadata fields from the novel.
	Record(novel *Novel, chapters []int) error
}
