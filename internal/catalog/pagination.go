// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

// ItemsPerPage is the fixed page size of the card grid.
const ItemsPerPage = 20

// Pagination is the window over the current search's identifier list.
type Pagination struct {
	CurrentPage  int
	ItemsPerPage int
	TotalItems   int
}

// NewPagination returns a window on page 1 over total items.
func NewPagination(total int) Pagination {
	return Pagination{CurrentPage: 1, ItemsPerPage: ItemsPerPage, TotalItems: total}
}

// Bounds returns the half-open index range of the current page, clamped to
// TotalItems.
func (p Pagination) Bounds() (start, end int) {
	size := p.size()
	page := max(p.CurrentPage, 1)
	start = min((page-1)*size, p.TotalItems)
	end = min(page*size, p.TotalItems)
	return start, end
}

// Slice returns the identifiers shown on the current page.
func (p Pagination) Slice(ids []int) []int {
	start, end := p.Bounds()
	end = min(end, len(ids))
	start = min(start, end)
	return ids[start:end]
}

// ControlsVisible reports whether there is more than one page.
func (p Pagination) ControlsVisible() bool {
	return p.TotalItems > p.size()
}

// PrevDisabled reports whether the window is on the first page.
func (p Pagination) PrevDisabled() bool {
	return p.CurrentPage <= 1
}

// NextDisabled reports whether the window already covers the last item.
func (p Pagination) NextDisabled() bool {
	return p.CurrentPage*p.size() >= p.TotalItems
}

// Pages is the number of pages needed for TotalItems.
func (p Pagination) Pages() int {
	size := p.size()
	return (p.TotalItems + size - 1) / size
}

// Next advances one page unless on the last one.
func (p *Pagination) Next() bool {
	if p.NextDisabled() {
		return false
	}
	p.CurrentPage++
	return true
}

// Prev goes back one page, never below page 1.
func (p *Pagination) Prev() bool {
	if p.PrevDisabled() {
		return false
	}
	p.CurrentPage--
	return true
}

// Reset returns to page 1 over a new total.
func (p *Pagination) Reset(total int) {
	*p = NewPagination(total)
}

// Controls describes the navigation bar for a view.
type Controls struct {
	Visible      bool
	PrevDisabled bool
	NextDisabled bool
	Page         int
	Pages        int
}

// Controls returns the navigation bar for the current window. A hidden bar
// carries no other state.
func (p Pagination) Controls() Controls {
	if !p.ControlsVisible() {
		return Controls{}
	}
	return Controls{
		Visible:      true,
		PrevDisabled: p.PrevDisabled(),
		NextDisabled: p.NextDisabled(),
		Page:         p.CurrentPage,
		Pages:        p.Pages(),
	}
}

func (p Pagination) size() int {
	if p.ItemsPerPage <= 0 {
		return ItemsPerPage
	}
	return p.ItemsPerPage
}
