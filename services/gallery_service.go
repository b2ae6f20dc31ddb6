package services

import "hotel-site/models"

// AllCategories is the gallery filter that shows every image.
const AllCategories = "all"

// Gallery filters the fixed photo list. It holds no state of its own.
type Gallery struct {
	images     []models.GalleryImage
	categories []models.GalleryCategory
}

func NewGallery(images []models.GalleryImage, categories []models.GalleryCategory) *Gallery {
	return &Gallery{images: images, categories: categories}
}

// Categories returns the filter buttons.
func (g *Gallery) Categories() []models.GalleryCategory {
	return g.categories
}

// NormalizeCategory maps unknown categories to AllCategories.
func (g *Gallery) NormalizeCategory(category string) string {
	for _, c := range g.categories {
		if c.ID == category {
			return category
		}
	}
	return AllCategories
}

// Filter returns the images of a category in their original order.
func (g *Gallery) Filter(category string) []models.GalleryImage {
	category = g.NormalizeCategory(category)

	out := make([]models.GalleryImage, 0, len(g.images))
	for _, img := range g.images {
		if category == AllCategories || img.Category == category {
			out = append(out, img)
		}
	}
	return out
}

// GalleryView is what the gallery page renders: the active filter, its
// images, and the lightbox position (-1 when closed).
type GalleryView struct {
	Category string                `json:"category"`
	Images   []models.GalleryImage `json:"images"`
	Selected int                   `json:"selected"`
	Prev     int                   `json:"prev"`
	Next     int                   `json:"next"`
}

// LightboxOpen reports whether an image is selected.
func (v GalleryView) LightboxOpen() bool {
	return v.Selected >= 0
}

// View filters by category and positions the lightbox at selected. An
// out-of-range selection closes the lightbox.
func (g *Gallery) View(category string, selected int) GalleryView {
	category = g.NormalizeCategory(category)
	images := g.Filter(category)

	v := GalleryView{Category: category, Images: images, Selected: -1, Prev: -1, Next: -1}
	if selected >= 0 && selected < len(images) {
		v.Selected = selected
		v.Prev = PrevIndex(selected, len(images))
		v.Next = NextIndex(selected, len(images))
	}
	return v
}

// NextIndex moves forward through n items, wrapping to the start.
func NextIndex(i, n int) int {
	if n <= 0 {
		return -1
	}
	return (i + 1) % n
}

// PrevIndex moves back through n items, wrapping to the end.
func PrevIndex(i, n int) int {
	if n <= 0 {
		return -1
	}
	return (i - 1 + n) % n
}
