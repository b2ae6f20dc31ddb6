package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"hotel-site/models"
	"hotel-site/services"
)

// ContactProps feed the contact page.
type ContactProps struct {
	PageProps
	Contact services.ContactState
}

type infoBlock struct {
	Title   string
	Details []string
}

// ContactPage renders the hotel's contact details and the message form.
func ContactPage(p ContactProps) g.Node {
	info := []infoBlock{
		{"Address", p.Hotel.Address},
		{"Phone", p.Hotel.Phone},
		{"Email", p.Hotel.Email},
		{"Business Hours", p.Hotel.Hours},
	}

	return Page(p.PageProps,
		PageHeader("Contact Us", "Get in touch with our team. We're here to help you plan your perfect stay at "+p.Hotel.Name+"."),
		h.Section(h.Class("container"),
			h.Div(h.Class("grid"),
				g.Map(info, func(i infoBlock) g.Node {
					return h.Div(h.Class("card"), h.H3(g.Text(i.Title)), lines(i.Details))
				}),
			),
		),
		h.Section(h.Class("container"),
			h.H2(g.Text("Send us a Message")),
			ContactForm(p.Contact),
		),
	)
}

// ContactForm renders the form with its status line. The submit button is
// disabled while a message is being sent.
func ContactForm(st services.ContactState) g.Node {
	f := st.Form
	sending := st.Status == services.ContactSending

	return g.El("form", h.Method("post"), h.Action("/contact"),
		statusLine(st),
		textField("name", "Full Name *", "text", f.Name, true),
		textField("email", "Email Address *", "email", f.Email, true),
		textField("phone", "Phone Number", "tel", f.Phone, false),
		h.Div(h.Class("field"),
			g.El("label", h.For("subject"), g.Text("Subject *")),
			h.Select(h.ID("subject"), h.Name("subject"), h.Required(),
				h.Option(h.Value(""), g.Text("Select a subject")),
				g.Map(models.ContactSubjects, func(s models.ContactSubject) g.Node {
					return h.Option(h.Value(s.Value), g.If(s.Value == f.Subject, h.Selected()), g.Text(s.Label))
				}),
			),
		),
		h.Div(h.Class("field"),
			g.El("label", h.For("message"), g.Text("Message *")),
			h.Textarea(h.ID("message"), h.Name("message"), h.Rows("6"), h.Required(), g.Text(f.Message)),
		),
		h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.If(sending, h.Disabled()),
			g.If(sending, g.Text("Sending...")),
			g.If(!sending, g.Text("Send Message")),
		),
	)
}

func statusLine(st services.ContactState) g.Node {
	switch st.Status {
	case services.ContactSuccess:
		return h.P(h.Class("success"), g.Text(st.StatusMessage))
	case services.ContactError:
		return h.P(h.Class("error"), g.Text(st.StatusMessage))
	}
	return nil
}

func textField(name, label, typ, value string, required bool) g.Node {
	return h.Div(h.Class("field"),
		g.El("label", h.For(name), g.Text(label)),
		h.Input(h.Type(typ), h.ID(name), h.Name(name), h.Value(value), g.If(required, h.Required())),
	)
}
