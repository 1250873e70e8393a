package cli

import "github.com/atotto/clipboard"

// SystemClipboard copies text to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}
