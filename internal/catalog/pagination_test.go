// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = 1000 + i
	}
	return ids
}

func TestPagination_Slice(t *testing.T) {
	tests := []struct {
		total, page     int
		wantLen, wantAt int
	}{
		{0, 1, 0, 0},
		{5, 1, 5, 1000},
		{20, 1, 20, 1000},
		{21, 1, 20, 1000},
		{21, 2, 1, 1020},
		{45, 3, 5, 1040},
		{45, 4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("N=%d/p=%d", tt.total, tt.page), func(t *testing.T) {
			p := Pagination{CurrentPage: tt.page, ItemsPerPage: ItemsPerPage, TotalItems: tt.total}
			got := p.Slice(seq(tt.total))
			assert.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantAt, got[0])
			}
		})
	}
}

func TestPagination_Properties(t *testing.T) {
	for n := 0; n <= 65; n++ {
		ids := seq(n)
		pages := max(1, (n+ItemsPerPage-1)/ItemsPerPage)
		for page := 1; page <= pages; page++ {
			p := Pagination{CurrentPage: page, ItemsPerPage: ItemsPerPage, TotalItems: n}

			start, end := (page-1)*20, min(page*20, n)
			assert.Equal(t, ids[start:end], p.Slice(ids), "N=%d p=%d", n, page)
			assert.Equal(t, n > 20, p.ControlsVisible(), "N=%d", n)
			assert.Equal(t, page*20 >= n, p.NextDisabled(), "N=%d p=%d", n, page)
			assert.Equal(t, page == 1, p.PrevDisabled(), "N=%d p=%d", n, page)
		}
	}
}

func TestPagination_Navigation(t *testing.T) {
	p := NewPagination(45)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 3, p.Pages())

	assert.False(t, p.Prev(), "previous never goes below page 1")
	assert.True(t, p.Next())
	assert.True(t, p.Next())
	assert.Equal(t, 3, p.CurrentPage)
	assert.False(t, p.Next(), "next stops at the last page")
	assert.True(t, p.Prev())
	assert.Equal(t, 2, p.CurrentPage)

	p.Reset(10)
	assert.Equal(t, NewPagination(10), p)
	assert.False(t, p.Next())
}

func TestPagination_Controls(t *testing.T) {
	assert.Equal(t, Controls{}, NewPagination(20).Controls(), "hidden when everything fits on one page")

	p := NewPagination(41)
	assert.Equal(t, Controls{Visible: true, PrevDisabled: true, Page: 1, Pages: 3}, p.Controls())
	p.Next()
	p.Next()
	assert.Equal(t, Controls{Visible: true, NextDisabled: true, Page: 3, Pages: 3}, p.Controls())
}

func TestPagination_ZeroValue(t *testing.T) {
	var p Pagination
	assert.Empty(t, p.Slice(seq(3)))
	assert.True(t, p.PrevDisabled())
	assert.True(t, p.NextDisabled())
}
