// Package page defines the page-controller contract and the lifecycle
// coordinator that swaps controllers in and out of the content container
// as navigation happens.
package page

import (
	"context"
	"strings"
	"sync"
)

// Controller is one logical screen. Load renders the screen into the
// container; Destroy tears down whatever Load set up. Destroy is always
// called before the next controller's Load.
type Controller interface {
	Load(ctx context.Context, container Container, params map[string]string) error
	Destroy()
}

// Container is the render target a controller writes into. The core does
// not own rendering; anything that can accept content qualifies.
type Container interface {
	SetContent(content string)
	Content() string
}

// Buffer is an in-memory Container.
type Buffer struct {
	mu      sync.Mutex
	content string
}

// NewBuffer creates an empty buffer container.
func NewBuffer() *Buffer { return &Buffer{} }

// SetContent replaces the container content.
func (b *Buffer) SetContent(content string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.content = content
}

// Content returns the current container content.
func (b *Buffer) Content() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.content
}

// DeriveName derives a page-controller name from a route pattern:
// the first static segment, e.g. "/properties/:id" -> "properties".
// The root pattern derives to "index".
func DeriveName(pattern string) string {
	for _, seg := range strings.Split(strings.Trim(pattern, "/"), "/") {
		if seg == "" || strings.HasPrefix(seg, ":") {
			continue
		}
		return seg
	}
	return "index"
}
