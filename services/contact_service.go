package services

import (
	"context"
	"fmt"
	"sync"

	"hotel-site/models"
	"hotel-site/utils"
)

// ContactStatus is the state of the contact form.
type ContactStatus string

const (
	ContactIdle    ContactStatus = "idle"
	ContactSending ContactStatus = "sending"
	ContactSuccess ContactStatus = "success"
	ContactError   ContactStatus = "error"
)

// ContactSuccessMessage is shown once the service accepts a message.
const ContactSuccessMessage = "Thank you for your message! We will get back to you soon."

// ContactFormState is one visitor's contact form.
type ContactFormState struct {
	mu sync.Mutex

	form    models.ContactForm
	status  ContactStatus
	message string
}

func NewContactFormState() *ContactFormState {
	return &ContactFormState{status: ContactIdle}
}

// ContactState is a read-only snapshot of the form.
type ContactState struct {
	Form          models.ContactForm `json:"form"`
	Status        ContactStatus      `json:"status"`
	StatusMessage string             `json:"status_message,omitempty"`
}

func (s *ContactFormState) State() ContactState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ContactState{Form: s.form, Status: s.status, StatusMessage: s.message}
}

// Consume returns the current state like State, then clears a finished
// outcome back to idle so the status line is shown once. Entered values are
// kept.
func (s *ContactFormState) Consume() ContactState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := ContactState{Form: s.form, Status: s.status, StatusMessage: s.message}
	if s.status == ContactSuccess || s.status == ContactError {
		s.status = ContactIdle
		s.message = ""
	}
	return st
}

// Update replaces the entered values unless a send is in flight.
func (s *ContactFormState) Update(form models.ContactForm) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == ContactSending {
		return
	}
	s.form = form
}

// Submit sends the entered message. Missing required fields fail locally
// without a request. Otherwise the form goes to sending, then to success
// (fields cleared) or error (fields kept) with a status message. Each call
// issues a fresh request; there are no retries.
func (s *ContactFormState) Submit(ctx context.Context, sender ContactSender) error {
	s.mu.Lock()
	if s.status == ContactSending {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if err := validateFields(s.form, nil); err != nil {
		s.status = ContactError
		s.message = UserMessage(err, err.Error())
		s.mu.Unlock()
		return err
	}
	s.status = ContactSending
	s.message = ""
	msg := s.form.Payload()
	s.mu.Unlock()

	err := sender.SendContactMessage(ctx, msg)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = ContactError
		s.message = UserMessage(err, ContactFailedMessage)
		return fmt.Errorf("send contact message: %w", err)
	}
	s.status = ContactSuccess
	s.message = ContactSuccessMessage
	s.form = models.ContactForm{}
	utils.GetLogger().LogContactMessageSent(ctx, msg.Subject, msg.Email)
	return nil
}
