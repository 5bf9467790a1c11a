package ui

import (
	"sync"

	"github.com/zyedidia/clipboard"
)

type ClipMethod uint8

const (
	ClipExternal ClipMethod = iota
	ClipInternal
)

// A Clipboard writes to the system clipboard when one is available, and
// otherwise keeps its contents in memory.
type Clipboard struct {
	mu       sync.Mutex
	method   ClipMethod
	internal string
}

// NewClipboard initializes the system clipboard, falling back to an internal
// one. The returned error is not fatal: it only explains the fallback.
func NewClipboard() (*Clipboard, error) {
	if err := clipboard.Initialize(); err != nil {
		return &Clipboard{method: ClipInternal}, err
	}
	return &Clipboard{method: ClipExternal}, nil
}

// NewInternalClipboard returns a Clipboard that never touches the system.
func NewInternalClipboard() *Clipboard {
	return &Clipboard{method: ClipInternal}
}

func (c *Clipboard) Method() ClipMethod {
	return c.method
}

func (c *Clipboard) Read() (string, error) {
	if c.method == ClipExternal {
		return clipboard.ReadAll("clipboard")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.internal, nil
}

func (c *Clipboard) Write(content string) error {
	if c.method == ClipExternal {
		return clipboard.WriteAll(content, "clipboard")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.internal = content
	return nil
}
