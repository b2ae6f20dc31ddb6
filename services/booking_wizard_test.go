package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-site/models"
)

func filledForm() models.BookingForm {
	return models.BookingForm{
		CheckIn:  "2025-01-01",
		CheckOut: "2025-01-04",
		Guests:   2,
		RoomID:   1,
		Name:     "Abebe Bikila",
		Email:    "abebe@example.com",
		Phone:    "+251 911 000000",
	}
}

// wizardAtSummary drives a new wizard to the summary step.
func wizardAtSummary(t *testing.T, opts ...WizardOption) *BookingWizard {
	t.Helper()
	w := NewBookingWizard(opts...)
	w.Update(filledForm())
	require.NoError(t, w.Next(context.Background(), testRooms(), nil))
	w.Update(filledForm())
	require.NoError(t, w.Next(context.Background(), testRooms(), nil))
	require.Equal(t, StepSummary, w.Step())
	return w
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{name: "three nights", checkIn: "2025-01-01", checkOut: "2025-01-04", want: 3},
		{name: "same day", checkIn: "2025-01-01", checkOut: "2025-01-01", want: 0},
		{name: "reversed dates count absolute days", checkIn: "2025-01-05", checkOut: "2025-01-01", want: 4},
		{name: "across month end", checkIn: "2025-01-30", checkOut: "2025-02-02", want: 3},
		{name: "missing check-out", checkIn: "2025-01-01", want: 0},
		{name: "malformed date", checkIn: "01/01/2025", checkOut: "2025-01-04", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Nights(models.BookingForm{CheckIn: tt.checkIn, CheckOut: tt.checkOut})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotal(t *testing.T) {
	form := filledForm()
	assert.Equal(t, 360.0, Total(form, testRooms()))

	form.RoomID = 2
	assert.Equal(t, 750.0, Total(form, testRooms()))

	form.RoomID = 99
	assert.Zero(t, Total(form, testRooms()))

	form.RoomID = 0
	assert.Zero(t, Total(form, testRooms()))
}

func TestConfirmationReference(t *testing.T) {
	ref := ConfirmationReference(time.UnixMilli(1735689600123))
	assert.Equal(t, "ESH-600123", ref)

	ref = ConfirmationReference(time.UnixMilli(1000000007))
	assert.Equal(t, "ESH-000007", ref)

	assert.Regexp(t, `^ESH-\d{6}$`, ConfirmationReference(time.Now()))
}

func TestWizardStartsAtFirstStep(t *testing.T) {
	w := NewBookingWizard()
	st := w.State(testRooms())

	assert.Equal(t, StepSelectRoom, st.Step)
	assert.Equal(t, 1, st.Form.Guests)
	assert.False(t, st.Submitting)
	assert.Empty(t, st.ConfirmationRef)
	assert.Nil(t, st.SelectedRoom)
}

func TestWizardPreviousAtFirstStepIsNoop(t *testing.T) {
	w := NewBookingWizard()
	w.Previous()
	assert.Equal(t, StepSelectRoom, w.Step())
}

func TestWizardNextRequiresStepFields(t *testing.T) {
	w := NewBookingWizard()
	w.Update(models.BookingForm{CheckIn: "2025-01-01", Guests: 2, RoomID: 1})

	err := w.Next(context.Background(), testRooms(), nil)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"Check-out date"}, vErr.Fields)

	st := w.State(testRooms())
	assert.Equal(t, StepSelectRoom, st.Step)
	assert.Equal(t, "Please check the following fields: Check-out date.", st.Error)
}

func TestWizardStepOneIgnoresGuestFields(t *testing.T) {
	w := NewBookingWizard()
	form := filledForm()
	form.Name, form.Email, form.Phone = "", "", ""
	w.Update(form)

	require.NoError(t, w.Next(context.Background(), testRooms(), nil))
	assert.Equal(t, StepGuestDetails, w.Step())
	assert.Empty(t, w.State(testRooms()).Error)
}

func TestWizardUpdateOnlyTouchesCurrentStep(t *testing.T) {
	w := NewBookingWizard()
	w.Update(filledForm())

	st := w.State(testRooms())
	assert.Equal(t, "2025-01-01", st.Form.CheckIn)
	assert.Equal(t, uint(1), st.Form.RoomID)
	assert.Empty(t, st.Form.Name)

	require.NoError(t, w.Next(context.Background(), testRooms(), nil))
	w.Update(models.BookingForm{Name: "Abebe Bikila", CheckIn: "2030-12-31"})

	st = w.State(testRooms())
	assert.Equal(t, "Abebe Bikila", st.Form.Name)
	assert.Equal(t, "2025-01-01", st.Form.CheckIn)
}

func TestWizardRejectsInvalidEmail(t *testing.T) {
	w := NewBookingWizard()
	w.Update(filledForm())
	require.NoError(t, w.Next(context.Background(), testRooms(), nil))

	form := filledForm()
	form.Email = "not-an-email"
	w.Update(form)

	err := w.Next(context.Background(), testRooms(), nil)
	require.Error(t, err)
	assert.Equal(t, StepGuestDetails, w.Step())
	assert.Contains(t, w.State(testRooms()).Error, "Email address")
}

func TestWizardPreviousKeepsValues(t *testing.T) {
	w := wizardAtSummary(t)

	w.Previous()
	assert.Equal(t, StepGuestDetails, w.Step())
	w.Previous()
	assert.Equal(t, StepSelectRoom, w.Step())
	w.Previous()
	assert.Equal(t, StepSelectRoom, w.Step())

	assert.Equal(t, "Abebe Bikila", w.State(testRooms()).Form.Name)
}

func TestWizardSummaryDerivedValues(t *testing.T) {
	w := wizardAtSummary(t)
	st := w.State(testRooms())

	require.NotNil(t, st.SelectedRoom)
	assert.Equal(t, "Deluxe Room", st.SelectedRoom.Name)
	assert.Equal(t, 3, st.Nights)
	assert.Equal(t, 360.0, st.Total)
}

func TestWizardConfirmSuccess(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(1735689600123) }
	w := wizardAtSummary(t, WithClock(clock))
	backend := &fakeBackend{}

	require.NoError(t, w.Next(context.Background(), testRooms(), backend))

	st := w.State(testRooms())
	assert.Equal(t, StepConfirmed, st.Step)
	assert.Equal(t, "ESH-600123", st.ConfirmationRef)
	assert.False(t, st.Submitting)
	assert.Empty(t, st.Error)

	require.Len(t, backend.bookings, 1)
	assert.Equal(t, models.BookingRequest{
		Room:      1,
		GuestName: "Abebe Bikila",
		Email:     "abebe@example.com",
		Phone:     "+251 911 000000",
		CheckIn:   "2025-01-01",
		CheckOut:  "2025-01-04",
		Guests:    2,
	}, backend.bookings[0])
}

func TestWizardConfirmedIsTerminal(t *testing.T) {
	w := wizardAtSummary(t)
	backend := &fakeBackend{}
	require.NoError(t, w.Next(context.Background(), testRooms(), backend))

	w.Previous()
	require.NoError(t, w.Next(context.Background(), testRooms(), backend))
	w.Update(models.BookingForm{Name: "Someone Else"})

	st := w.State(testRooms())
	assert.Equal(t, StepConfirmed, st.Step)
	assert.Equal(t, "Abebe Bikila", st.Form.Name)
	assert.Equal(t, 1, backend.bookingCount())
}

func TestWizardConfirmFailureStaysOnSummary(t *testing.T) {
	w := wizardAtSummary(t)
	backend := &fakeBackend{bookingErr: &APIError{StatusCode: 400, Message: "Room is fully booked."}}

	err := w.Next(context.Background(), testRooms(), backend)
	require.Error(t, err)

	st := w.State(testRooms())
	assert.Equal(t, StepSummary, st.Step)
	assert.Equal(t, "Room is fully booked.", st.Error)
	assert.False(t, st.Submitting)
	assert.Empty(t, st.ConfirmationRef)
	assert.Equal(t, "Abebe Bikila", st.Form.Name)
}

func TestWizardConfirmUnreachable(t *testing.T) {
	w := wizardAtSummary(t)
	backend := &fakeBackend{bookingErr: ErrServiceUnreachable}

	require.Error(t, w.Next(context.Background(), testRooms(), backend))
	assert.Equal(t, DefaultAPIErrorMessage, w.State(testRooms()).Error)
}

func TestWizardConfirmOtherErrorUsesFallback(t *testing.T) {
	w := wizardAtSummary(t)
	backend := &fakeBackend{bookingErr: errors.New("boom")}

	require.Error(t, w.Next(context.Background(), testRooms(), backend))
	assert.Equal(t, BookingFailedMessage, w.State(testRooms()).Error)
}

func TestWizardConfirmWithoutKnownRoom(t *testing.T) {
	w := wizardAtSummary(t)
	backend := &fakeBackend{}
	others := []models.Room{{ID: 9, Name: "Loft", PricePerNight: 300}}

	err := w.Next(context.Background(), others, backend)
	assert.ErrorIs(t, err, ErrNoRoomSelected)

	st := w.State(others)
	assert.Equal(t, StepSummary, st.Step)
	assert.Equal(t, NoRoomSelectedMessage, st.Error)
	assert.Zero(t, backend.bookingCount())
}

func TestWizardRejectsDoubleSubmit(t *testing.T) {
	w := wizardAtSummary(t)
	backend := &fakeBackend{block: make(chan struct{}), entered: make(chan struct{}, 1)}

	done := make(chan error, 1)
	go func() { done <- w.Next(context.Background(), testRooms(), backend) }()
	<-backend.entered

	st := w.State(testRooms())
	assert.True(t, st.Submitting)

	assert.ErrorIs(t, w.Next(context.Background(), testRooms(), backend), ErrSubmissionInFlight)
	w.Previous()
	assert.Equal(t, StepSummary, w.Step())

	close(backend.block)
	require.NoError(t, <-done)
	assert.Equal(t, StepConfirmed, w.Step())
	assert.Equal(t, 1, backend.bookingCount())
}

func TestWizardEnsureRoom(t *testing.T) {
	w := NewBookingWizard()
	w.EnsureRoom(nil)
	assert.Zero(t, w.State(nil).Form.RoomID)

	w.EnsureRoom(testRooms())
	assert.Equal(t, uint(1), w.State(testRooms()).Form.RoomID)

	w.SelectRoom(2)
	w.EnsureRoom(testRooms())
	assert.Equal(t, uint(2), w.State(testRooms()).Form.RoomID)
}

func TestWizardReset(t *testing.T) {
	w := wizardAtSummary(t)
	require.NoError(t, w.Next(context.Background(), testRooms(), &fakeBackend{}))

	w.Reset()
	st := w.State(testRooms())
	assert.Equal(t, StepSelectRoom, st.Step)
	assert.Equal(t, models.NewBookingForm(), st.Form)
	assert.Empty(t, st.ConfirmationRef)
}

func TestWizardStepTitles(t *testing.T) {
	assert.Equal(t, "Select Room", StepSelectRoom.Title())
	assert.Equal(t, "Guest Details", StepGuestDetails.Title())
	assert.Equal(t, "Confirmation", StepSummary.Title())
	assert.Equal(t, "Complete", StepConfirmed.Title())
}
