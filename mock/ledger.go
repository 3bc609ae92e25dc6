package mock

import getnovel "github.com/Clickman777/TgBot"

var _ getnovel.Ledger = (*Ledger)(nil)

// Ledger is a mock implementation of getnovel.Ledger.
type Ledger struct {
	LastDownloadedFn func(title string) (int, error)
	RecordFn         func(novel *getnovel.Novel, chapters []int) error
}

func (l *Ledger) LastDownloaded(title string) (int, error) {
	return l.LastDownloadedFn(title)
}

func (l *Ledger) Record(novel *getnovel.Novel, chapters []int) error {
	return l.RecordFn(novel, chapters)
}
