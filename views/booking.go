package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"hotel-site/models"
	"hotel-site/services"
)

// Booking form actions posted by the wizard buttons.
const (
	ActionNext       = "next"
	ActionPrevious   = "previous"
	ActionSelectRoom = "select-room"
	ActionReset      = "reset"
)

// MaxGuests is the largest party the guest selector offers.
const MaxGuests = 6

// BookingProps feed the booking page.
type BookingProps struct {
	PageProps
	Catalog services.CatalogState
	Wizard  services.WizardState
}

// BookingPage renders the progress bar and the form of the current step.
func BookingPage(p BookingProps) g.Node {
	w := p.Wizard

	var body g.Node
	switch w.Step {
	case services.StepSelectRoom:
		body = selectRoomStep(w, p.Catalog)
	case services.StepGuestDetails:
		body = guestDetailsStep(w)
	case services.StepSummary:
		body = summaryStep(w)
	default:
		body = confirmedStep(w)
	}

	return Page(p.PageProps,
		PageHeader("Book Your Stay", "Reserve your perfect room at "+p.Hotel.Name+" and experience luxury hospitality."),
		h.Section(h.Class("container"), progress(w.Step)),
		h.Section(h.Class("container"),
			g.El("form", h.Method("post"), h.Action("/booking"),
				g.If(w.Error != "", h.P(h.Class("error"), g.Text(w.Error))),
				body,
			),
		),
	)
}

func progress(current services.WizardStep) g.Node {
	return h.Ol(h.Class("steps"),
		g.Map(services.WizardSteps, func(s services.WizardStep) g.Node {
			class := ""
			switch {
			case current > s:
				class = "done"
			case current == s:
				class = "current"
			}
			return h.Li(h.Class(class), g.Textf("%d. %s", int(s), s.Title()))
		}),
	)
}

func selectRoomStep(w services.WizardState, catalog services.CatalogState) g.Node {
	f := w.Form
	guests := make([]int, MaxGuests)
	for i := range guests {
		guests[i] = i + 1
	}

	return g.Group([]g.Node{
		h.H2(g.Text("Select Your Room")),
		catalogNotice(catalog),
		h.Div(h.Class("grid"),
			textField("check_in", "Check-in Date *", "date", f.CheckIn, true),
			textField("check_out", "Check-out Date *", "date", f.CheckOut, true),
			h.Div(h.Class("field"),
				g.El("label", h.For("guests"), g.Text("Number of Guests *")),
				h.Select(h.ID("guests"), h.Name("guests"),
					g.Map(guests, func(n int) g.Node {
						label := fmt.Sprintf("%d Guest", n)
						if n > 1 {
							label += "s"
						}
						return h.Option(h.Value(strconv.Itoa(n)), g.If(n == f.Guests, h.Selected()), g.Text(label))
					}),
				),
			),
		),
		h.H3(g.Text("Choose Your Room")),
		h.Div(h.Class("grid"),
			g.Map(catalog.Rooms, func(room models.Room) g.Node {
				return roomChoice(room, room.ID == f.RoomID)
			}),
		),
		wizardButtons(w, "Continue"),
	})
}

func roomChoice(room models.Room, selected bool) g.Node {
	class := "card"
	if selected {
		class += " selected"
	}
	id := fmt.Sprintf("room-%d", room.ID)
	amenities := room.Amenities
	if len(amenities) > 3 {
		amenities = amenities[:3]
	}

	return g.El("label", h.Class(class), h.For(id),
		h.Input(h.Type("radio"), h.ID(id), h.Name("room_id"), h.Value(strconv.FormatUint(uint64(room.ID), 10)),
			g.If(selected, h.Checked()), h.Required()),
		h.Img(h.Src(room.ImageURL), h.Alt(room.Name)),
		h.H4(g.Text(room.Name), g.Text(" "), h.Span(g.Text(FormatCurrency(room.PricePerNight.Float64())))),
		h.P(g.Text(room.Description)),
		h.P(g.Text(room.BedType)),
		h.P(g.Textf("Up to %d guests", room.Occupancy)),
		h.Ul(g.Map(amenities, func(a string) g.Node { return h.Li(h.Small(g.Text(a))) })),
	)
}

func guestDetailsStep(w services.WizardState) g.Node {
	f := w.Form
	return g.Group([]g.Node{
		h.H2(g.Text("Guest Information")),
		textField("name", "Full Name *", "text", f.Name, true),
		textField("email", "Email Address *", "email", f.Email, true),
		textField("phone", "Phone Number *", "tel", f.Phone, true),
		h.Div(h.Class("field"),
			g.El("label", h.For("special_requests"), g.Text("Special Requests")),
			h.Textarea(h.ID("special_requests"), h.Name("special_requests"), h.Rows("4"),
				h.Placeholder("Any special requests or preferences..."), g.Text(f.SpecialRequests)),
		),
		wizardButtons(w, "Continue"),
	})
}

func summaryStep(w services.WizardState) g.Node {
	f := w.Form
	roomName := "No room selected"
	price := 0.0
	if w.SelectedRoom != nil {
		roomName = w.SelectedRoom.Name
		price = w.SelectedRoom.PricePerNight.Float64()
	}

	label := "Confirm Booking"
	if w.Submitting {
		label = "Submitting..."
	}

	return g.Group([]g.Node{
		h.H2(g.Text("Booking Summary")),
		h.Div(h.Class("grid"),
			h.Div(h.Class("card"),
				h.H3(g.Text("Reservation Details")),
				summaryRow("Room", roomName),
				summaryRow("Check-in", f.CheckIn),
				summaryRow("Check-out", f.CheckOut),
				summaryRow("Guests", strconv.Itoa(f.Guests)),
				summaryRow("Nights", strconv.Itoa(w.Nights)),
			),
			h.Div(h.Class("card"),
				h.H3(g.Text("Guest Details")),
				summaryRow("Name", f.Name),
				summaryRow("Email", f.Email),
				summaryRow("Phone", f.Phone),
				g.If(f.SpecialRequests != "", summaryRow("Special Requests", f.SpecialRequests)),
			),
		),
		h.Div(h.Class("card"),
			summaryRow("Room Rate", FormatCurrency(price)+" / night"),
			summaryRow("Total", FormatCurrency(w.Total)),
		),
		wizardButtons(w, label),
	})
}

func confirmedStep(w services.WizardState) g.Node {
	return g.Group([]g.Node{
		h.H2(g.Text("Booking Confirmed!")),
		h.P(g.Text("Thank you for choosing us. A confirmation email will be sent to " + w.Form.Email + ".")),
		h.P(g.Text("Confirmation Number: "), h.Strong(g.Text(w.ConfirmationRef))),
		h.Button(h.Type("submit"), h.Name("action"), h.Value(ActionReset), h.Class("btn btn-secondary"),
			g.Attr("formnovalidate"), g.Text("Book Another Stay")),
		h.A(h.Href("/"), h.Class("btn btn-primary"), g.Text("Return to Home")),
	})
}

func summaryRow(label, value string) g.Node {
	return h.P(h.Strong(g.Text(label+": ")), g.Text(value))
}

// wizardButtons renders the forward button and Previous. The forward button
// comes first in the markup so pressing Enter in a field moves forward; the
// stylesheet shows Previous on the left. Previous is disabled on the first
// step; both are disabled while submitting.
func wizardButtons(w services.WizardState, forward string) g.Node {
	return h.Div(h.Class("wizard-buttons"),
		h.Button(h.Type("submit"), h.Name("action"), h.Value(ActionNext), h.Class("btn btn-primary"),
			g.If(w.Submitting, h.Disabled()),
			g.Text(forward)),
		h.Button(h.Type("submit"), h.Name("action"), h.Value(ActionPrevious), h.Class("btn btn-secondary"),
			g.Attr("formnovalidate"),
			g.If(w.Step == services.StepSelectRoom || w.Submitting, h.Disabled()),
			g.Text("Previous")),
	)
}
