package engine

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard stores text for Cut and Copy.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

// ReadAll returns the clipboard content.
func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// WriteAll replaces the clipboard content.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboardAvailable reports whether the system clipboard can be used.
func SystemClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// MemoryClipboard is a process-local clipboard.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// ReadAll returns the stored text.
func (c *MemoryClipboard) ReadAll() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

// WriteAll stores text.
func (c *MemoryClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}
