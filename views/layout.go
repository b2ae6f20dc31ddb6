// Package views renders the site's HTML pages with gomponents.
package views

import (
	"math"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hotel-site/models"
)

// NavItem is one navbar link.
type NavItem struct {
	Path  string
	Label string
}

// NavItems are the navbar links in display order.
var NavItems = []NavItem{
	{Path: "/", Label: "Home"},
	{Path: "/rooms", Label: "Rooms"},
	{Path: "/dining", Label: "Dining"},
	{Path: "/amenities", Label: "Amenities"},
	{Path: "/events", Label: "Events"},
	{Path: "/gallery", Label: "Gallery"},
	{Path: "/contact", Label: "Contact"},
}

// PageProps are shared by every page.
type PageProps struct {
	Title  string
	Active string
	Hotel  models.HotelSetting
}

// Page wraps body in the document shell with navbar and footer.
func Page(p PageProps, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(p.Title+" | "+p.Hotel.Name)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			),
			h.Body(
				Navbar(p.Active, p.Hotel),
				h.Main(h.Class("min-h-screen pt-20"), g.Group(body)),
				Footer(p.Hotel),
			),
		),
	)
}

// Navbar renders the top navigation with the active link highlighted.
func Navbar(active string, hotel models.HotelSetting) g.Node {
	return h.Nav(h.Class("navbar"),
		h.A(h.Href("/"), h.Class("navbar-brand"), g.Text(hotel.Name)),
		h.Ul(h.Class("navbar-links"),
			g.Map(NavItems, func(item NavItem) g.Node {
				class := "navbar-link"
				if item.Path == active {
					class += " active"
				}
				return h.Li(h.A(h.Href(item.Path), h.Class(class), g.Text(item.Label)))
			}),
		),
		h.A(h.Href("/booking"), h.Class("btn btn-primary"), g.Text("Book Now")),
	)
}

// Footer renders the hotel's contact details and quick links.
func Footer(hotel models.HotelSetting) g.Node {
	return h.Footer(h.Class("footer"),
		h.Div(h.Class("footer-grid"),
			h.Div(
				h.H3(g.Text(hotel.Name)),
				h.P(g.Text(hotel.Tagline)),
			),
			h.Div(
				h.H4(g.Text("Quick Links")),
				h.Ul(g.Map(NavItems, func(item NavItem) g.Node {
					return h.Li(h.A(h.Href(item.Path), g.Text(item.Label)))
				})),
			),
			h.Div(
				h.H4(g.Text("Contact")),
				lines(hotel.Address),
				lines(firstN(hotel.Phone, 1)),
				lines(firstN(hotel.Email, 1)),
			),
		),
		h.P(h.Class("footer-note"), g.Textf("© %s. All rights reserved.", hotel.Name)),
	)
}

// PageHeader is the green banner at the top of inner pages.
func PageHeader(title, subtitle string) g.Node {
	return h.Section(h.Class("page-header"),
		h.H1(g.Text(title)),
		h.P(g.Text(subtitle)),
	)
}

func lines(items []string) g.Node {
	return g.Map(items, func(s string) g.Node { return h.P(g.Text(s)) })
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a USD amount, dropping cents on whole numbers.
func FormatCurrency(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("$%.0f", v)
	}
	return printer.Sprintf("$%.2f", v)
}

// NotFoundPage is rendered for unknown paths.
func NotFoundPage(p PageProps) g.Node {
	return Page(p,
		PageHeader("Page Not Found", "The page you are looking for does not exist."),
		h.Section(h.Class("container"),
			h.A(h.Href("/"), h.Class("btn btn-primary"), g.Text("Return to Home")),
		),
	)
}
