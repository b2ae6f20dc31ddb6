package views

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"hotel-site/models"
	"hotel-site/services"
)

// GalleryProps feed the gallery page.
type GalleryProps struct {
	PageProps
	Categories []models.GalleryCategory
	View       services.GalleryView
}

// GalleryPage renders either the filter bar with the image grid, or the
// lightbox. The two never show together, so the lightbox always navigates
// the list it was opened from.
func GalleryPage(p GalleryProps) g.Node {
	if p.View.LightboxOpen() {
		return Page(p.PageProps, lightbox(p.View))
	}
	return Page(p.PageProps,
		PageHeader("Gallery", "Take a visual journey through our hotel and discover the beauty that awaits you."),
		h.Section(h.Class("container"),
			h.Div(h.Class("gallery-filters"),
				g.Map(p.Categories, func(c models.GalleryCategory) g.Node {
					class := "btn btn-secondary"
					if c.ID == p.View.Category {
						class = "btn btn-primary"
					}
					return h.A(h.Href(galleryURL(c.ID, -1)), h.Class(class), g.Text(c.Name))
				}),
			),
			h.Div(h.Class("grid gallery"),
				g.Map(indexed(p.View.Images), func(it indexedImage) g.Node {
					return h.A(h.Href(galleryURL(p.View.Category, it.Index)),
						h.Img(h.Src(it.Image.Src), h.Alt(it.Image.Title)),
						h.P(g.Text(it.Image.Title)),
					)
				}),
			),
		),
	)
}

func lightbox(v services.GalleryView) g.Node {
	img := v.Images[v.Selected]
	return h.Div(h.Class("lightbox"),
		h.A(h.Href(galleryURL(v.Category, v.Prev)), g.Attr("aria-label", "Previous image"), g.Text("‹")),
		h.Div(
			h.Img(h.Src(img.Src), h.Alt(img.Title)),
			h.P(g.Text(img.Title)),
			h.Small(g.Textf("%d / %d", v.Selected+1, len(v.Images))),
		),
		h.A(h.Href(galleryURL(v.Category, v.Next)), g.Attr("aria-label", "Next image"), g.Text("›")),
		h.A(h.Href(galleryURL(v.Category, -1)), g.Attr("aria-label", "Close"), g.Text("×")),
	)
}

type indexedImage struct {
	Index int
	Image models.GalleryImage
}

func indexed(images []models.GalleryImage) []indexedImage {
	out := make([]indexedImage, len(images))
	for i, img := range images {
		out[i] = indexedImage{Index: i, Image: img}
	}
	return out
}

func galleryURL(category string, image int) string {
	q := url.Values{}
	q.Set("category", category)
	if image >= 0 {
		q.Set("image", fmt.Sprint(image))
	}
	return "/gallery?" + q.Encode()
}
