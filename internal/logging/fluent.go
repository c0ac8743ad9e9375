// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"context"
	"log/slog"
	"time"
)

// Poster is the part of a Fluent client the handler needs.
type Poster interface {
	Post(tag string, message interface{}) error
}

// FluentHandler forwards records to Fluent Bit, tagged by level. Attributes
// are flattened into the posted map; groups become dotted key prefixes.
type FluentHandler struct {
	poster Poster
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
}

// NewFluentHandler returns a handler posting records at or above level.
func NewFluentHandler(p Poster, level slog.Leveler) *FluentHandler {
	return &FluentHandler{poster: p, level: level}
}

func (h *FluentHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *FluentHandler) Handle(_ context.Context, r slog.Record) error {
	data := make(map[string]interface{}, len(h.attrs)+r.NumAttrs()+3)
	for _, a := range h.attrs {
		addAttr(data, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(data, h.group, a)
		return true
	})
	data["level"] = r.Level.String()
	data["message"] = r.Message
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	data["timestamp"] = ts.UTC().Format(time.RFC3339Nano)

	// Delivery problems must not break the caller's logging.
	_ = h.poster.Post(tagFor(r.Level), data)
	return nil
}

func (h *FluentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (h *FluentHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if h.group != "" {
		next.group = h.group + "." + name
	} else {
		next.group = name
	}
	return &next
}

func addAttr(data map[string]interface{}, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			addAttr(data, key, ga)
		}
		return
	}
	if err, ok := a.Value.Any().(error); ok {
		data[key] = err.Error()
		return
	}
	data[key] = a.Value.Any()
}

func tagFor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "error"
	case l >= slog.LevelWarn:
		return "warn"
	case l >= slog.LevelInfo:
		return "info"
	default:
		return "debug"
	}
}
