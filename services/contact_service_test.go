package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-site/models"
)

func validContactForm() models.ContactForm {
	return models.ContactForm{
		Name:    "Tirunesh Dibaba",
		Email:   "tirunesh@example.com",
		Phone:   "+251 911 111111",
		Subject: "events",
		Message: "We are planning a wedding for 120 guests.",
	}
}

func TestContactSubmitSuccessClearsForm(t *testing.T) {
	s := NewContactFormState()
	s.Update(validContactForm())
	backend := &fakeBackend{}

	require.NoError(t, s.Submit(context.Background(), backend))

	st := s.State()
	assert.Equal(t, ContactSuccess, st.Status)
	assert.Equal(t, ContactSuccessMessage, st.StatusMessage)
	assert.Equal(t, models.ContactForm{}, st.Form)

	require.Len(t, backend.messages, 1)
	assert.Equal(t, models.ContactMessage{
		FullName: "Tirunesh Dibaba",
		Email:    "tirunesh@example.com",
		Phone:    "+251 911 111111",
		Subject:  "events",
		Message:  "We are planning a wedding for 120 guests.",
	}, backend.messages[0])
}

func TestContactSubmitAPIErrorKeepsFields(t *testing.T) {
	s := NewContactFormState()
	s.Update(validContactForm())
	backend := &fakeBackend{contactErr: &APIError{StatusCode: 400, Message: "Invalid email"}}

	require.Error(t, s.Submit(context.Background(), backend))

	st := s.State()
	assert.Equal(t, ContactError, st.Status)
	assert.Equal(t, "Invalid email", st.StatusMessage)
	assert.Equal(t, validContactForm(), st.Form)
}

func TestContactSubmitUnknownErrorUsesFallback(t *testing.T) {
	s := NewContactFormState()
	s.Update(validContactForm())

	require.Error(t, s.Submit(context.Background(), &fakeBackend{contactErr: errors.New("boom")}))
	assert.Equal(t, ContactFailedMessage, s.State().StatusMessage)
}

func TestContactSubmitMissingFieldsSkipsRequest(t *testing.T) {
	s := NewContactFormState()
	form := validContactForm()
	form.Message = ""
	form.Subject = ""
	s.Update(form)
	backend := &fakeBackend{}

	err := s.Submit(context.Background(), backend)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.ElementsMatch(t, []string{"Subject", "Message"}, vErr.Fields)

	st := s.State()
	assert.Equal(t, ContactError, st.Status)
	assert.Zero(t, backend.messageCount())
}

func TestContactPhoneIsOptional(t *testing.T) {
	s := NewContactFormState()
	form := validContactForm()
	form.Phone = ""
	s.Update(form)

	require.NoError(t, s.Submit(context.Background(), &fakeBackend{}))
	assert.Equal(t, ContactSuccess, s.State().Status)
}

func TestContactRetryAfterError(t *testing.T) {
	s := NewContactFormState()
	s.Update(validContactForm())
	backend := &fakeBackend{contactErr: ErrServiceUnreachable}

	require.Error(t, s.Submit(context.Background(), backend))
	assert.Equal(t, DefaultAPIErrorMessage, s.State().StatusMessage)

	backend.contactErr = nil
	require.NoError(t, s.Submit(context.Background(), backend))
	assert.Equal(t, ContactSuccess, s.State().Status)
	assert.Equal(t, 2, backend.messageCount())
}

func TestContactRejectsSubmitWhileSending(t *testing.T) {
	s := NewContactFormState()
	s.Update(validContactForm())
	backend := &fakeBackend{block: make(chan struct{}), entered: make(chan struct{}, 1)}

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background(), backend) }()
	<-backend.entered

	assert.Equal(t, ContactSending, s.State().Status)
	assert.ErrorIs(t, s.Submit(context.Background(), backend), ErrSubmissionInFlight)

	s.Update(models.ContactForm{Name: "ignored"})
	assert.Equal(t, "Tirunesh Dibaba", s.State().Form.Name)

	close(backend.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, backend.messageCount())
}

func TestContactConsumeShowsOutcomeOnce(t *testing.T) {
	s := NewContactFormState()
	s.Update(validContactForm())
	require.NoError(t, s.Submit(context.Background(), &fakeBackend{}))

	st := s.Consume()
	assert.Equal(t, ContactSuccess, st.Status)
	assert.Equal(t, ContactSuccessMessage, st.StatusMessage)

	st = s.Consume()
	assert.Equal(t, ContactIdle, st.Status)
	assert.Empty(t, st.StatusMessage)
}

func TestContactConsumeKeepsFieldsAfterError(t *testing.T) {
	s := NewContactFormState()
	s.Update(validContactForm())
	require.Error(t, s.Submit(context.Background(), &fakeBackend{contactErr: ErrServiceUnreachable}))

	assert.Equal(t, ContactError, s.Consume().Status)

	st := s.Consume()
	assert.Equal(t, ContactIdle, st.Status)
	assert.Equal(t, validContactForm(), st.Form)
}

func TestContactConsumeLeavesSendingAlone(t *testing.T) {
	s := NewContactFormState()
	s.Update(validContactForm())
	backend := &fakeBackend{block: make(chan struct{}), entered: make(chan struct{}, 1)}

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background(), backend) }()
	<-backend.entered

	assert.Equal(t, ContactSending, s.Consume().Status)
	assert.Equal(t, ContactSending, s.State().Status)

	close(backend.block)
	require.NoError(t, <-done)
}
