package models

// ContactMessage is the payload sent to POST /contact-messages/.
type ContactMessage struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// ContactForm holds the contact page inputs.
type ContactForm struct {
	Name    string `form:"name" json:"name" label:"Full name" validate:"required"`
	Email   string `form:"email" json:"email" label:"Email address" validate:"required,email"`
	Phone   string `form:"phone" json:"phone" label:"Phone number"`
	Subject string `form:"subject" json:"subject" label:"Subject" validate:"required,oneof=general reservation events spa dining feedback other"`
	Message string `form:"message" json:"message" label:"Message" validate:"required"`
}

// Payload builds the wire payload.
func (f ContactForm) Payload() ContactMessage {
	return ContactMessage{
		FullName: f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Subject:  f.Subject,
		Message:  f.Message,
	}
}

// ContactSubject is one option of the subject select.
type ContactSubject struct {
	Value string
	Label string
}

// ContactSubjects are the subject options in display order.
var ContactSubjects = []ContactSubject{
	{Value: "general", Label: "General Inquiry"},
	{Value: "reservation", Label: "Reservation"},
	{Value: "events", Label: "Events & Meetings"},
	{Value: "spa", Label: "Spa Services"},
	{Value: "dining", Label: "Dining"},
	{Value: "feedback", Label: "Feedback"},
	{Value: "other", Label: "Other"},
}
