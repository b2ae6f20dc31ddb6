package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"hotel-site/models"
	"hotel-site/services"
)

// HomeProps feed the home page.
type HomeProps struct {
	PageProps
	Slides  []models.HeroSlide
	Slide   int
	Catalog services.CatalogState
}

// HomePage renders the hero carousel and a preview of the rooms.
func HomePage(p HomeProps) g.Node {
	return Page(p.PageProps,
		Hero(p.Slides, p.Slide),
		h.Section(h.Class("container"),
			h.H2(g.Text("Our Accommodations")),
			catalogNotice(p.Catalog),
			h.Div(h.Class("grid"),
				g.Map(p.Catalog.Rooms, roomPreview),
			),
			h.A(h.Href("/rooms"), h.Class("btn btn-secondary"), g.Text("View All Rooms")),
		),
	)
}

// Hero renders one carousel slide with links to its neighbours. The slide
// index wraps in both directions.
func Hero(slides []models.HeroSlide, current int) g.Node {
	if len(slides) == 0 {
		return nil
	}
	if current < 0 || current >= len(slides) {
		current = 0
	}
	slide := slides[current]
	prev := services.PrevIndex(current, len(slides))
	next := services.NextIndex(current, len(slides))

	return h.Section(h.Class("hero"),
		g.Attr("style", fmt.Sprintf("background-image: url(%s)", slide.Image)),
		h.Div(
			h.H1(g.Text(slide.Title)),
			h.P(g.Text(slide.Subtitle)),
			h.A(h.Href("/booking"), h.Class("btn btn-primary"), g.Text("Book Your Stay")),
			h.Div(h.Class("hero-controls"),
				h.A(h.Href(fmt.Sprintf("/?slide=%d", prev)), g.Attr("aria-label", "Previous slide"), g.Text("‹")),
				g.Map(slides, func(s models.HeroSlide) g.Node {
					return h.Span(g.Text("•"))
				}),
				h.A(h.Href(fmt.Sprintf("/?slide=%d", next)), g.Attr("aria-label", "Next slide"), g.Text("›")),
			),
		),
	)
}

func roomPreview(room models.Room) g.Node {
	return h.Div(h.Class("card"),
		h.Img(h.Src(room.ImageURL), h.Alt(room.Name)),
		h.H3(g.Text(room.Name)),
		h.P(g.Text(room.Description)),
		h.P(h.Strong(g.Text(FormatCurrency(room.PricePerNight.Float64()))), g.Text(" / night")),
	)
}

func catalogNotice(st services.CatalogState) g.Node {
	if st.Error == "" {
		return nil
	}
	return h.P(h.Class("notice"), g.Text(st.Error))
}
