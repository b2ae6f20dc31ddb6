package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type venue struct {
	Name        string
	Description string
	Hours       string
}

type dish struct {
	Name        string
	Description string
	Price       string
}

type menuSection struct {
	Category string
	Items    []dish
}

type amenity struct {
	Title       string
	Description string
	Features    []string
	Hours       string
}

type eventSpace struct {
	Name     string
	Capacity string
	Features []string
}

var restaurants = []venue{
	{Name: "The Skylight Restaurant", Description: "Experience exquisite Ethiopian cuisine with a modern twist in our signature restaurant.", Hours: "6:00 AM - 11:00 PM"},
	{Name: "Rooftop Lounge", Description: "Enjoy panoramic views of Addis Ababa while sipping on crafted cocktails and light bites.", Hours: "5:00 PM - 1:00 AM"},
	{Name: "Coffee Culture Café", Description: "Discover the birthplace of coffee with our authentic Ethiopian coffee ceremony and fresh pastries.", Hours: "6:00 AM - 10:00 PM"},
}

var menu = []menuSection{
	{Category: "Appetizers", Items: []dish{
		{Name: "Kitfo", Description: "Ethiopian steak tartare with mitmita and ayib", Price: "$18"},
		{Name: "Sambusa", Description: "Crispy pastries filled with lentils or meat", Price: "$12"},
		{Name: "Tibs", Description: "Sautéed beef with berbere spice", Price: "$16"},
	}},
	{Category: "Main Courses", Items: []dish{
		{Name: "Doro Wat", Description: "Traditional chicken stew with hard-boiled eggs", Price: "$28"},
		{Name: "Vegetarian Combination", Description: "Assorted vegetarian dishes with injera", Price: "$24"},
		{Name: "Lamb Tibs", Description: "Tender lamb with vegetables and herbs", Price: "$32"},
	}},
	{Category: "Desserts", Items: []dish{
		{Name: "Honey Wine Tiramisu", Description: "Italian classic with Ethiopian twist", Price: "$14"},
		{Name: "Coffee Panna Cotta", Description: "Silky smooth dessert with Ethiopian coffee", Price: "$12"},
		{Name: "Traditional Kolo", Description: "Roasted barley with honey", Price: "$8"},
	}},
}

var amenities = []amenity{
	{Title: "Swimming Pool", Description: "Rooftop infinity pool with panoramic city views", Features: []string{"Infinity Pool", "Pool Bar", "Lounge Chairs", "Towel Service"}, Hours: "6:00 AM - 10:00 PM"},
	{Title: "Fitness Center", Description: "State-of-the-art gym with modern equipment", Features: []string{"Cardio Equipment", "Weight Training", "Personal Trainers", "Yoga Classes"}, Hours: "24/7 Access"},
	{Title: "Spa & Wellness", Description: "Luxurious spa treatments for mind and body", Features: []string{"Massage Therapy", "Facial Treatments", "Sauna", "Steam Room"}, Hours: "9:00 AM - 9:00 PM"},
	{Title: "Valet Parking", Description: "Complimentary valet parking service", Features: []string{"Valet Service", "Secure Parking", "Car Wash", "EV Charging"}, Hours: "24/7 Service"},
	{Title: "High-Speed Internet", Description: "Complimentary WiFi throughout the property", Features: []string{"Free WiFi", "Business Center", "Meeting Rooms", "Printing Services"}, Hours: "24/7 Access"},
	{Title: "Event Spaces", Description: "Elegant venues for meetings and celebrations", Features: []string{"Conference Rooms", "Wedding Venues", "Banquet Halls", "Catering Services"}, Hours: "By Reservation"},
}

var guestServices = []amenity{
	{Title: "24/7 Concierge", Description: "Personalized assistance for all your needs"},
	{Title: "Security", Description: "Professional security service around the clock"},
	{Title: "Airport Shuttle", Description: "Complimentary shuttle service to/from airport"},
	{Title: "Room Service", Description: "24-hour in-room dining service"},
	{Title: "Wake-up Service", Description: "Personalized wake-up calls"},
	{Title: "Business Services", Description: "Full-service business center"},
}

var eventSpaces = []eventSpace{
	{Name: "Grand Ballroom", Capacity: "300 guests", Features: []string{"Crystal Chandeliers", "Dance Floor", "Stage", "Audio/Visual Equipment"}},
	{Name: "Skylight Conference Center", Capacity: "150 guests", Features: []string{"Modern AV Equipment", "Breakout Rooms", "Catering Kitchen", "Natural Light"}},
	{Name: "Rooftop Garden", Capacity: "100 guests", Features: []string{"Panoramic City Views", "Garden Setting", "Outdoor Bar", "Weather Protection"}},
}

var eventServices = []amenity{
	{Title: "Catering Services", Description: "Customized menus featuring Ethiopian and international cuisine"},
	{Title: "Photography", Description: "Professional event photography and videography services"},
	{Title: "Entertainment", Description: "Live music, DJs, and traditional Ethiopian performers"},
	{Title: "Event Planning", Description: "Full-service event planning and coordination"},
}

// DiningPage renders the restaurants and the signature menu.
func DiningPage(p PageProps) g.Node {
	return Page(p,
		PageHeader("Dining", "Savor the authentic flavors of Ethiopia and international cuisine in our exceptional dining venues."),
		h.Section(h.Class("container"),
			h.H2(g.Text("Our Restaurants")),
			h.Div(h.Class("grid"), g.Map(restaurants, func(v venue) g.Node {
				return h.Div(h.Class("card"),
					h.H3(g.Text(v.Name)),
					h.P(g.Text(v.Description)),
					h.Small(g.Text(v.Hours)),
				)
			})),
		),
		h.Section(h.Class("container"),
			h.H2(g.Text("Signature Menu")),
			h.Div(h.Class("grid"), g.Map(menu, func(s menuSection) g.Node {
				return h.Div(h.Class("card"),
					h.H3(g.Text(s.Category)),
					g.Map(s.Items, func(d dish) g.Node {
						return h.Div(
							h.H4(g.Text(d.Name), g.Text(" "), h.Span(g.Text(d.Price))),
							h.P(g.Text(d.Description)),
						)
					}),
				)
			})),
		),
		h.Section(h.Class("container"),
			h.H2(g.Text("Traditional Coffee Ceremony")),
			h.P(g.Text("Experience the birthplace of coffee with our traditional Ethiopian coffee ceremony. Watch as green coffee beans are roasted, ground, and brewed in a centuries-old ritual that brings people together.")),
		),
	)
}

// AmenitiesPage renders the facilities and guest services.
func AmenitiesPage(p PageProps) g.Node {
	return Page(p,
		PageHeader("Amenities", "Discover our world-class amenities designed to enhance your stay and create unforgettable experiences."),
		h.Section(h.Class("container"),
			h.Div(h.Class("grid"), g.Map(amenities, amenityCard)),
		),
		h.Section(h.Class("container"),
			h.H2(g.Text("Guest Services")),
			h.P(g.Text("Our dedicated team provides exceptional service to ensure your comfort and convenience throughout your stay.")),
			h.Div(h.Class("grid"), g.Map(guestServices, amenityCard)),
		),
	)
}

// EventsPage renders the event venues and services.
func EventsPage(p PageProps) g.Node {
	return Page(p,
		PageHeader("Events & Meetings", "Create unforgettable memories with our elegant event spaces and exceptional service for weddings, corporate events, and special celebrations."),
		h.Section(h.Class("container"),
			h.H2(g.Text("Event Spaces")),
			h.Div(h.Class("grid"), g.Map(eventSpaces, func(s eventSpace) g.Node {
				return h.Div(h.Class("card"),
					h.H3(g.Text(s.Name)),
					h.Small(g.Text("Capacity: "+s.Capacity)),
					h.Ul(g.Map(s.Features, func(f string) g.Node { return h.Li(g.Text(f)) })),
				)
			})),
		),
		h.Section(h.Class("container"),
			h.H2(g.Text("Event Services")),
			h.Div(h.Class("grid"), g.Map(eventServices, amenityCard)),
		),
		h.Section(h.Class("container"),
			h.H2(g.Text("Plan Your Event")),
			h.P(g.Text("Let us help you create an unforgettable event. Send us a message and our event planning team will contact you.")),
			h.A(h.Href("/contact?subject=events"), h.Class("btn btn-primary"), g.Text("Contact Our Events Team")),
		),
	)
}

func amenityCard(a amenity) g.Node {
	return h.Div(h.Class("card"),
		h.H3(g.Text(a.Title)),
		h.P(g.Text(a.Description)),
		g.If(len(a.Features) > 0, h.Ul(g.Map(a.Features, func(f string) g.Node { return h.Li(g.Text(f)) }))),
		g.If(a.Hours != "", h.Small(g.Text(a.Hours))),
	)
}
