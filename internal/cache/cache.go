// Package cache keeps an ordered, keyed in-memory snapshot of server-owned
// blog posts, plus a derived search-filtered view. The cache is mutated
// only from confirmed server responses; a failed call must leave it
// untouched, so callers apply mutations after success, never before.
package cache

import (
	"strings"
	"sync"

	"github.com/inkwell/inkwell-client/internal/types"
)

// Patch names the fields an update replaces. Nil fields are preserved.
type Patch struct {
	Title   *string
	Content *string
}

// Blogs is the collection cache. The filtered view is pure derived state:
// always a subsequence of the base sequence in base order, recomputed
// whenever the base or the active term changes.
type Blogs struct {
	mu       sync.Mutex
	base     []types.Blog
	filtered []types.Blog
	term     string
}

// NewBlogs returns an empty cache.
func NewBlogs() *Blogs { return &Blogs{} }

// Load replaces the base sequence wholesale after a successful full fetch.
func (b *Blogs) Load(items []types.Blog) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.base = append([]types.Blog(nil), items...)
	b.recompute()
}

// ApplyCreate appends the server-confirmed entity. The server dictates no
// ordering for creates, so append semantics apply. If the same id was
// already reconciled (or arrives again via a later Load) the entry is not
// duplicated.
func (b *Blogs) ApplyCreate(item types.Blog) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.base {
		if b.base[i].ID == item.ID {
			b.base[i] = item
			b.recompute()
			return
		}
	}
	b.base = append(b.base, item)
	b.recompute()
}

// ApplyUpdate replaces only the patched fields of the entry with the given
// id, preserving position, author, image and creation time. A missing id
// is a no-op: the row may have been deleted concurrently.
func (b *Blogs) ApplyUpdate(id string, patch Patch) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.base {
		if b.base[i].ID != id {
			continue
		}
		if patch.Title != nil {
			b.base[i].Title = *patch.Title
		}
		if patch.Content != nil {
			b.base[i].Content = *patch.Content
		}
		b.recompute()
		return
	}
}

// ApplyDelete removes the entry with the given id, preserving the order of
// the rest. A missing id is a no-op.
func (b *Blogs) ApplyDelete(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.base {
		if b.base[i].ID == id {
			b.base = append(b.base[:i], b.base[i+1:]...)
			b.recompute()
			return
		}
	}
}

// SetFilter recomputes the filtered view: entries where term is a
// case-insensitive substring of the title, the content, or the author
// display name. The empty term yields the base view unchanged.
func (b *Blogs) SetFilter(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.term = term
	b.recompute()
}

// Term returns the active search term.
func (b *Blogs) Term() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.term
}

// Items returns a copy of the base sequence.
func (b *Blogs) Items() []types.Blog {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]types.Blog(nil), b.base...)
}

// Filtered returns a copy of the derived view.
func (b *Blogs) Filtered() []types.Blog {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]types.Blog(nil), b.filtered...)
}

// Len returns the size of the base sequence.
func (b *Blogs) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.base)
}

// recompute rebuilds the filtered view. Callers hold b.mu.
func (b *Blogs) recompute() {
	if b.term == "" {
		b.filtered = append([]types.Blog(nil), b.base...)
		return
	}
	term := strings.ToLower(b.term)
	out := make([]types.Blog, 0, len(b.base))
	for _, blog := range b.base {
		if strings.Contains(strings.ToLower(blog.Title), term) ||
			strings.Contains(strings.ToLower(blog.Content), term) ||
			strings.Contains(strings.ToLower(blog.Author.Name), term) {
			out = append(out, blog)
		}
	}
	b.filtered = out
}
