// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"github.com/pdiddy/art-explorer/internal/locale"
	"github.com/pdiddy/art-explorer/pkg/types"
)

// DefaultImage stands in for records without a primary image.
const DefaultImage = "https://www.jpeg-repair.org/img/index_sample3A.jpg"

// Card is the renderable description of one object.
type Card struct {
	ObjectID int
	Image    string
	Alt      string
	Title    string

	// Label-prefixed lines, e.g. "Artista: Vincent van Gogh".
	Artist  string
	Culture string
	Dynasty string
	Date    string

	// DateVisible is true only while the pointer is over the card.
	DateVisible bool

	AdditionalImages []string
	// GalleryLabel is the text of the gallery trigger; empty when the card
	// has no additional images.
	GalleryLabel string
}

// HasGallery reports whether the card exposes the gallery trigger.
func (c Card) HasGallery() bool {
	return len(c.AdditionalImages) > 0
}

// Hover shows the date line while the pointer is over the card.
func (c *Card) Hover(over bool) {
	c.DateVisible = over
}

// BuildCard maps a record to its card using the labels in b.
func BuildCard(rec types.ObjectRecord, b locale.Bundle) Card {
	title, hasTitle := rec.Text("title")

	card := Card{
		ObjectID: rec.ObjectID(),
		Image:    textOr(rec, "primaryImage", DefaultImage),
		Alt:      textOr(rec, "title", b.Untitled),
		Title:    b.Untitled,
		Artist:   b.Artist + ": " + textOr(rec, "artistDisplayName", b.Unknown),
		Culture:  b.Culture + ": " + textOr(rec, "culture", b.UnknownFeminine),
		Dynasty:  b.Dynasty + ": " + textOr(rec, "dynasty", b.UnknownFeminine),
		Date:     b.Date + ": " + textOr(rec, "objectDate", b.UnknownFeminine),
	}
	if hasTitle && title != b.Unknown {
		card.Title = title
	}
	if images := rec.Strings("additionalImages"); len(images) > 0 {
		card.AdditionalImages = images
		card.GalleryLabel = b.AdditionalImages
	}
	return card
}

func textOr(rec types.ObjectRecord, field, fallback string) string {
	if v, ok := rec.Text(field); ok {
		return v
	}
	return fallback
}
