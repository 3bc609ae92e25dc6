package mock

import getnovel "github.com/Clickman777/TgBot"

var _ getnovel.Converter = (*Converter)(nil)

// Converter is a mock implementation of getnovel.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
