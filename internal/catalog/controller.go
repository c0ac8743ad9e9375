// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog is the browsing client: it runs searches against the
// proxy, pages through the returned identifiers, and turns each page of
// records into cards for a front end to draw.
//
// The Controller owns all browsing state. Front ends push user actions into
// it and receive complete View snapshots through a Sink.
package catalog

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/pdiddy/art-explorer/internal/locale"
	"github.com/pdiddy/art-explorer/internal/logging"
	"github.com/pdiddy/art-explorer/pkg/types"
)

// Option is one entry of the department selector.
type Option struct {
	Value string
	Label string
}

// View is everything a front end needs to draw the catalog.
type View struct {
	Loading     bool
	Message     string
	Cards       []Card
	Controls    Controls
	Departments []Option
	Gallery     Gallery
}

// Sink receives a fresh View after every change. Render is called with the
// controller locked, so it must not call back into the Controller.
type Sink interface {
	Render(View)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(View)

func (f SinkFunc) Render(v View) { f(v) }

// State is the browsing state of one search.
type State struct {
	Filters    types.Filters
	ObjectIDs  []int
	Pagination Pagination
	// Generation increases with every search and page change. Results
	// belonging to an older generation are dropped.
	Generation uint64
}

// Controller drives searches, paging and the gallery.
type Controller struct {
	proxy  Proxy
	bundle locale.Bundle
	sink   Sink
	logger *slog.Logger

	mu    sync.Mutex
	state State
	view  View
}

// NewController returns a controller rendering with bundle's labels.
func NewController(p Proxy, bundle locale.Bundle, sink Sink, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = logging.Discard()
	}
	if sink == nil {
		sink = SinkFunc(func(View) {})
	}
	return &Controller{
		proxy:  p,
		bundle: bundle,
		sink:   sink,
		logger: logger,
		state:  State{Pagination: NewPagination(0)},
		view: View{
			Departments: []Option{{Value: "", Label: bundle.AllDepartments}},
		},
	}
}

// LoadDepartments fills the department selector. Failure leaves only the
// default choice and is logged, never shown.
func (c *Controller) LoadDepartments(ctx context.Context) {
	departments, err := c.proxy.Departments(ctx)
	if err != nil {
		c.logger.Warn("loading departments", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	opts := make([]Option, 0, len(departments)+1)
	opts = append(opts, Option{Value: "", Label: c.bundle.AllDepartments})
	for _, d := range departments {
		opts = append(opts, Option{Value: strconv.Itoa(d.DepartmentID), Label: d.DisplayName})
	}
	c.view.Departments = opts
	c.renderLocked()
}

// ApplyFilters starts a new search on page 1. Loading is shown for the whole
// search, whatever its outcome. The previous result list is dropped up front,
// so paging is refused until the new search answers.
func (c *Controller) ApplyFilters(ctx context.Context, f types.Filters) {
	c.mu.Lock()
	c.state.Generation++
	gen := c.state.Generation
	c.state.Filters = f
	c.state.ObjectIDs = nil
	c.state.Pagination.Reset(0)
	c.view.Loading = true
	c.view.Controls = Controls{}
	c.renderLocked()
	c.mu.Unlock()

	defer c.finishLoading(gen)

	result, err := c.proxy.Search(ctx, f)
	if err != nil {
		c.logger.Error("fetching object IDs", "error", err, "keyword", f.KeywordOrDefault())
		c.showMessage(gen, c.bundle.SearchError)
		return
	}
	if len(result.ObjectIDs) == 0 {
		c.showMessage(gen, c.bundle.NoResults)
		return
	}

	c.mu.Lock()
	if gen != c.state.Generation {
		c.mu.Unlock()
		return
	}
	c.state.ObjectIDs = result.ObjectIDs
	c.state.Pagination.Reset(len(result.ObjectIDs))
	c.mu.Unlock()

	c.renderPage(ctx, gen)
}

// NextPage moves forward one page if there is one.
func (c *Controller) NextPage(ctx context.Context) bool {
	return c.navigate(ctx, (*Pagination).Next)
}

// PrevPage moves back one page if not on the first.
func (c *Controller) PrevPage(ctx context.Context) bool {
	return c.navigate(ctx, (*Pagination).Prev)
}

func (c *Controller) navigate(ctx context.Context, step func(*Pagination) bool) bool {
	c.mu.Lock()
	if len(c.state.ObjectIDs) == 0 || !step(&c.state.Pagination) {
		c.mu.Unlock()
		return false
	}
	c.state.Generation++
	gen := c.state.Generation
	c.mu.Unlock()

	c.renderPage(ctx, gen)
	return true
}

// renderPage clears the grid and rebuilds it from the current page, fetching
// records one at a time. Failed fetches and records without a primary image
// are left out.
func (c *Controller) renderPage(ctx context.Context, gen uint64) {
	c.mu.Lock()
	if gen != c.state.Generation {
		c.mu.Unlock()
		return
	}
	ids := append([]int(nil), c.state.Pagination.Slice(c.state.ObjectIDs)...)
	c.view.Loading = true
	c.view.Message = ""
	c.view.Cards = nil
	c.renderLocked()
	c.mu.Unlock()

	cards := make([]Card, 0, len(ids))
	for _, id := range ids {
		rec, err := c.proxy.Object(ctx, id)
		if err != nil {
			c.logger.Warn("fetching object data", "object_id", id, "error", err)
			continue
		}
		if _, ok := rec.Text("primaryImage"); !ok {
			continue
		}
		cards = append(cards, BuildCard(rec, c.bundle))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.state.Generation {
		c.logger.Debug("dropping stale page", "generation", gen, "current", c.state.Generation)
		return
	}
	c.view.Cards = cards
	c.view.Controls = c.state.Pagination.Controls()
	c.view.Loading = false
	c.renderLocked()
}

func (c *Controller) showMessage(gen uint64, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.state.Generation {
		return
	}
	c.state.ObjectIDs = nil
	c.state.Pagination.Reset(0)
	c.view.Message = msg
	c.view.Cards = nil
	c.view.Controls = Controls{}
	c.renderLocked()
}

func (c *Controller) finishLoading(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// A newer search or page change owns the indicator now.
	if gen != c.state.Generation || !c.view.Loading {
		return
	}
	c.view.Loading = false
	c.renderLocked()
}

// Hover toggles the date line of card i.
func (c *Controller) Hover(i int, over bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.view.Cards) {
		return false
	}
	c.view.Cards[i].Hover(over)
	c.renderLocked()
	return true
}

// OpenGallery shows card i's additional images in the shared overlay.
func (c *Controller) OpenGallery(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.view.Cards) {
		return false
	}
	c.view.Gallery.Show(c.view.Cards[i], c.bundle)
	c.renderLocked()
	return true
}

// CloseGallery hides the overlay.
func (c *Controller) CloseGallery() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Gallery.Hide()
	c.renderLocked()
}

// View returns a snapshot of the current view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// State returns a snapshot of the browsing state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.ObjectIDs = append([]int(nil), c.state.ObjectIDs...)
	return s
}

func (c *Controller) renderLocked() {
	c.sink.Render(c.snapshotLocked())
}

func (c *Controller) snapshotLocked() View {
	v := c.view
	v.Cards = append([]Card(nil), c.view.Cards...)
	v.Departments = append([]Option(nil), c.view.Departments...)
	v.Gallery.Images = append([]GalleryImage(nil), c.view.Gallery.Images...)
	return v
}
