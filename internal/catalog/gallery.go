// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/pdiddy/art-explorer/internal/locale"

// GalleryImage is one entry of the gallery overlay.
type GalleryImage struct {
	URL string
	Alt string
}

// Gallery is the single shared overlay listing a card's additional images.
// Showing it replaces whatever it held before.
type Gallery struct {
	Visible bool
	Title   string
	Images  []GalleryImage
	// Message replaces the image list when the card has none.
	Message string
}

// Show fills the overlay from card and makes it visible.
func (g *Gallery) Show(card Card, b locale.Bundle) {
	*g = Gallery{Visible: true, Title: card.Title}
	if !card.HasGallery() {
		g.Message = b.NoAdditionalImages
		return
	}
	g.Images = make([]GalleryImage, 0, len(card.AdditionalImages))
	for _, u := range card.AdditionalImages {
		g.Images = append(g.Images, GalleryImage{URL: u, Alt: b.AdditionalImageAlt})
	}
}

// Hide closes the overlay; its content stays until the next Show.
func (g *Gallery) Hide() {
	g.Visible = false
}
