package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"hotel-site/models"
	"hotel-site/services"
)

// RoomsProps feed the rooms page.
type RoomsProps struct {
	PageProps
	Catalog services.CatalogState
}

// RoomsPage lists every room of the catalog with its amenities.
func RoomsPage(p RoomsProps) g.Node {
	return Page(p.PageProps,
		PageHeader("Rooms & Suites",
			"Experience comfort and luxury in our thoughtfully designed accommodations, each offering stunning views and premium amenities."),
		h.Section(h.Class("container"),
			catalogNotice(p.Catalog),
			g.Map(p.Catalog.Rooms, roomDetail),
		),
		h.Section(h.Class("container"),
			h.H2(g.Text("Ready to Book?")),
			h.P(g.Textf("Choose your perfect room and start planning your unforgettable stay at %s.", p.Hotel.Name)),
			h.A(h.Href("/booking"), h.Class("btn btn-primary"), g.Text("Book Now")),
		),
	)
}

func roomDetail(room models.Room) g.Node {
	features := []string{
		room.BedType,
		fmt.Sprintf("Accommodates up to %d guests", room.Occupancy),
		"Complimentary WiFi",
		"Premium Mini Bar",
		"Smart Entertainment",
		"Spa-inspired Bath",
	}
	return h.Div(h.Class("card"), h.ID(room.Slug),
		h.Img(h.Src(room.ImageURL), h.Alt(room.Name)),
		h.H2(g.Text(room.Name)),
		h.Small(g.Text(models.RoomTypeLabel(room.RoomType))),
		h.P(g.Text(room.Description)),
		h.P(h.Strong(g.Text(FormatCurrency(room.PricePerNight.Float64()))), g.Text(" per night")),
		h.Ul(g.Map(features, func(f string) g.Node { return h.Li(g.Text(f)) })),
		h.H4(g.Text("Amenities")),
		h.Ul(g.Map(room.Amenities, func(a string) g.Node { return h.Li(g.Text(a)) })),
		h.A(h.Href(fmt.Sprintf("/booking?room=%d", room.ID)), h.Class("btn btn-primary"), g.Text("Book This Room")),
	)
}
