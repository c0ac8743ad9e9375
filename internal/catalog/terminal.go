// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/fatih/color"
)

// TerminalSink draws views as colored text. It prints only the parts of a
// view that changed since the previous one.
type TerminalSink struct {
	out io.Writer

	mu   sync.Mutex
	prev View
	seen bool
}

// NewTerminalSink writes to out.
func NewTerminalSink(out io.Writer) *TerminalSink {
	return &TerminalSink{out: out}
}

func (s *TerminalSink) Render(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, seen := s.prev, s.seen
	s.prev, s.seen = v, true

	faint := color.New(color.Faint)

	if !seen || !reflect.DeepEqual(prev.Departments, v.Departments) {
		s.printDepartments(v.Departments)
	}
	if v.Loading {
		if !prev.Loading || !seen {
			faint.Fprintln(s.out, "...")
		}
		return
	}

	gridChanged := !seen || prev.Loading || prev.Message != v.Message ||
		!reflect.DeepEqual(prev.Cards, v.Cards) || prev.Controls != v.Controls
	if gridChanged && (v.Message != "" || len(v.Cards) > 0 || prev.Loading) {
		s.printGrid(v)
	}

	switch {
	case v.Gallery.Visible && (!prev.Gallery.Visible || !reflect.DeepEqual(prev.Gallery, v.Gallery)):
		s.printGallery(v.Gallery)
	case !v.Gallery.Visible && prev.Gallery.Visible:
		faint.Fprintln(s.out, "[gallery closed]")
	}
}

func (s *TerminalSink) printDepartments(opts []Option) {
	faint := color.New(color.Faint)
	for _, o := range opts {
		if o.Value == "" {
			faint.Fprintf(s.out, "  d -   %s\n", o.Label)
			continue
		}
		faint.Fprintf(s.out, "  d %-3s %s\n", o.Value, o.Label)
	}
}

func (s *TerminalSink) printGrid(v View) {
	yellow := color.New(color.FgYellow)
	if v.Message != "" {
		yellow.Fprintln(s.out, v.Message)
		return
	}

	title := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)
	magenta := color.New(color.FgMagenta)

	for i, c := range v.Cards {
		fmt.Fprintf(s.out, "%2d. ", i+1)
		title.Fprintln(s.out, c.Title)
		fmt.Fprintf(s.out, "    %s\n", c.Artist)
		fmt.Fprintf(s.out, "    %s\n", c.Culture)
		fmt.Fprintf(s.out, "    %s\n", c.Dynasty)
		if c.DateVisible {
			fmt.Fprintf(s.out, "    %s\n", c.Date)
		}
		faint.Fprintf(s.out, "    %s\n", c.Image)
		if c.HasGallery() {
			magenta.Fprintf(s.out, "    [g %d] %s (%d)\n", i+1, c.GalleryLabel, len(c.AdditionalImages))
		}
	}

	if ctl := v.Controls; ctl.Visible {
		prev, next := color.New(color.FgGreen), color.New(color.FgGreen)
		if ctl.PrevDisabled {
			prev = faint
		}
		if ctl.NextDisabled {
			next = faint
		}
		prev.Fprint(s.out, "« p")
		fmt.Fprintf(s.out, "  %d/%d  ", ctl.Page, ctl.Pages)
		next.Fprintln(s.out, "n »")
	}
}

func (s *TerminalSink) printGallery(g Gallery) {
	title := color.New(color.FgMagenta, color.Bold)
	title.Fprintf(s.out, "== %s ==\n", g.Title)
	if g.Message != "" {
		fmt.Fprintln(s.out, g.Message)
	}
	for i, img := range g.Images {
		fmt.Fprintf(s.out, "  %d. %s (%s)\n", i+1, img.URL, img.Alt)
	}
	color.New(color.Faint).Fprintln(s.out, "[c] close")
}
