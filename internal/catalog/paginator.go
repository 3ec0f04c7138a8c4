package catalog

import (
	"github.com/granitdvor/monument-backend/internal/app/model"
)

// PageSize is the catalog's fixed page size in both modes
const PageSize = 12

type PaginationMode string

const (
	// ModeWide: classic numbered pagination (desktop)
	ModeWide PaginationMode = "wide"
	// ModeCompact: cumulative "show more" reveal (mobile)
	ModeCompact PaginationMode = "compact"
)

// Paginator slices an already filtered and ordered list. It holds only
// cursors; the list itself is passed to Slice so a new filter result can
// never be addressed by stale cursors, since SetTotal resets them.
type Paginator struct {
	mode         PaginationMode
	pageSize     int
	total        int
	page         int // wide mode, 1-based
	visibleCount int // compact mode
}

func NewPaginator(mode PaginationMode, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	p := &Paginator{mode: mode, pageSize: pageSize}
	p.reset()
	return p
}

func (p *Paginator) reset() {
	p.page = 1
	p.visibleCount = p.pageSize
}

// SetTotal records the length of the underlying list and resets the
// cursors: a changed list invalidates any previous page number or reveal
// count.
func (p *Paginator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.reset()
}

// SetMode switches between wide and compact pagination. Crossing the
// breakpoint resets the cursors; a page number has no meaning as a reveal
// count and vice versa.
func (p *Paginator) SetMode(mode PaginationMode) {
	if p.mode == mode {
		return
	}
	p.mode = mode
	p.reset()
}

func (p *Paginator) Mode() PaginationMode {
	return p.mode
}

func (p *Paginator) Page() int {
	return p.page
}

// TotalPages is at least 1 even for an empty list
func (p *Paginator) TotalPages() int {
	pages := (p.total + p.pageSize - 1) / p.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// GoToPage moves to page n, clamped into [1, TotalPages]
func (p *Paginator) GoToPage(n int) {
	if n < 1 {
		n = 1
	}
	if max := p.TotalPages(); n > max {
		n = max
	}
	p.page = n
}

// ShowMore reveals one more page's worth of items (compact mode)
func (p *Paginator) ShowMore() {
	p.visibleCount += p.pageSize
	if p.visibleCount > p.total {
		p.visibleCount = p.total
	}
}

// VisibleCount is the current reveal count, never beyond the total
func (p *Paginator) VisibleCount() int {
	if p.visibleCount > p.total {
		return p.total
	}
	return p.visibleCount
}

// HasMore reports whether compact mode still has hidden items
func (p *Paginator) HasMore() bool {
	return p.VisibleCount() < p.total
}

// Remaining is the number of items not yet revealed
func (p *Paginator) Remaining() int {
	return p.total - p.VisibleCount()
}

// Slice returns the visible portion of items for the current mode and
// cursors. In wide mode it is the current page window; in compact mode it
// is always a prefix, never a disjoint window.
func (p *Paginator) Slice(items []model.Product) []model.Product {
	switch p.mode {
	case ModeCompact:
		end := p.VisibleCount()
		if end > len(items) {
			end = len(items)
		}
		return items[:end]
	default:
		start := (p.page - 1) * p.pageSize
		if start > len(items) {
			start = len(items)
		}
		end := start + p.pageSize
		if end > len(items) {
			end = len(items)
		}
		return items[start:end]
	}
}
