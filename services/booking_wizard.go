package services

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"sync"
	"time"

	"hotel-site/models"
	"hotel-site/utils"
)

// WizardStep is a position in the booking flow.
type WizardStep int

const (
	StepSelectRoom WizardStep = iota + 1
	StepGuestDetails
	StepSummary
	StepConfirmed
)

// Title is the label of the step in the progress bar.
func (s WizardStep) Title() string {
	switch s {
	case StepSelectRoom:
		return "Select Room"
	case StepGuestDetails:
		return "Guest Details"
	case StepSummary:
		return "Confirmation"
	case StepConfirmed:
		return "Complete"
	}
	return fmt.Sprintf("Step %d", int(s))
}

// WizardSteps lists every step in order.
var WizardSteps = []WizardStep{StepSelectRoom, StepGuestDetails, StepSummary, StepConfirmed}

// ConfirmationPrefix starts every confirmation reference.
const ConfirmationPrefix = "ESH-"

var bookingFormSteps = fieldsByStep(reflect.TypeOf(models.BookingForm{}))

// BookingWizard is one visitor's reservation flow. Every method is safe for
// concurrent use; the network call on confirmation runs outside the lock.
type BookingWizard struct {
	mu sync.Mutex

	step            WizardStep
	form            models.BookingForm
	submitting      bool
	err             string
	confirmationRef string

	now func() time.Time
}

// WizardOption configures a BookingWizard.
type WizardOption func(*BookingWizard)

// WithClock replaces time.Now for confirmation references.
func WithClock(now func() time.Time) WizardOption {
	return func(w *BookingWizard) { w.now = now }
}

func NewBookingWizard(opts ...WizardOption) *BookingWizard {
	w := &BookingWizard{
		step: StepSelectRoom,
		form: models.NewBookingForm(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WizardState is a read-only snapshot of the wizard plus its derived values.
type WizardState struct {
	Step            WizardStep         `json:"step"`
	Form            models.BookingForm `json:"form"`
	Submitting      bool               `json:"submitting"`
	Error           string             `json:"error,omitempty"`
	ConfirmationRef string             `json:"confirmation_ref,omitempty"`
	SelectedRoom    *models.Room       `json:"selected_room,omitempty"`
	Nights          int                `json:"nights"`
	Total           float64            `json:"total"`
}

// State snapshots the wizard against the given catalog.
func (w *BookingWizard) State(rooms []models.Room) WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := WizardState{
		Step:            w.step,
		Form:            w.form,
		Submitting:      w.submitting,
		Error:           w.err,
		ConfirmationRef: w.confirmationRef,
		Nights:          Nights(w.form),
		Total:           Total(w.form, rooms),
	}
	if room, ok := FindRoom(rooms, w.form.RoomID); ok {
		st.SelectedRoom = &room
	}
	return st
}

// Step returns the current step.
func (w *BookingWizard) Step() WizardStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Update copies the inputs that belong to the current step from in. Inputs
// of other steps are left alone, like fields the visitor cannot see.
func (w *BookingWizard) Update(in models.BookingForm) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting || w.step == StepConfirmed {
		return
	}
	fields := bookingFormSteps[int(w.step)]
	if len(fields) == 0 {
		return
	}

	dst := reflect.ValueOf(&w.form).Elem()
	src := reflect.ValueOf(in)
	for name := range fields {
		dst.FieldByName(name).Set(src.FieldByName(name))
	}
}

// SelectRoom chooses a room by id.
func (w *BookingWizard) SelectRoom(id uint) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting || w.step == StepConfirmed {
		return
	}
	w.form.RoomID = id
}

// EnsureRoom pre-selects the first catalog room when none is chosen yet.
func (w *BookingWizard) EnsureRoom(rooms []models.Room) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.form.RoomID == 0 && len(rooms) > 0 && w.step != StepConfirmed {
		w.form.RoomID = rooms[0].ID
	}
}

// Next advances the wizard. Steps 1 and 2 require their fields; step 3
// submits the booking through creator and only reaches step 4 when the
// service acknowledges it. Next at step 4 does nothing.
func (w *BookingWizard) Next(ctx context.Context, rooms []models.Room, creator BookingCreator) error {
	w.mu.Lock()
	switch w.step {
	case StepSelectRoom, StepGuestDetails:
		defer w.mu.Unlock()
		if w.submitting {
			return ErrSubmissionInFlight
		}
		if err := validateFields(w.form, bookingFormSteps[int(w.step)]); err != nil {
			w.err = UserMessage(err, err.Error())
			return err
		}
		w.err = ""
		w.step++
		return nil
	case StepSummary:
		w.mu.Unlock()
		return w.submit(ctx, rooms, creator)
	default:
		w.mu.Unlock()
		return nil
	}
}

func (w *BookingWizard) submit(ctx context.Context, rooms []models.Room, creator BookingCreator) error {
	w.mu.Lock()
	if w.step != StepSummary {
		w.mu.Unlock()
		return nil
	}
	if w.submitting {
		w.mu.Unlock()
		return ErrSubmissionInFlight
	}
	room, ok := FindRoom(rooms, w.form.RoomID)
	if !ok {
		w.err = NoRoomSelectedMessage
		w.mu.Unlock()
		return ErrNoRoomSelected
	}
	w.err = ""
	w.submitting = true
	req := w.form.Request(room.ID)
	w.mu.Unlock()

	err := creator.CreateBooking(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		w.err = UserMessage(err, BookingFailedMessage)
		return fmt.Errorf("create booking: %w", err)
	}
	w.confirmationRef = ConfirmationReference(w.now())
	w.step = StepConfirmed
	utils.GetLogger().LogBookingSubmitted(ctx, w.confirmationRef, room.ID, Nights(w.form), req.Email)
	return nil
}

// Previous goes back one step. It does nothing at the first step, after
// confirmation, or while a submission is in flight.
func (w *BookingWizard) Previous() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting || w.step <= StepSelectRoom || w.step >= StepConfirmed {
		return
	}
	w.err = ""
	w.step--
}

// Reset starts a new reservation. It is ignored while submitting.
func (w *BookingWizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting {
		return
	}
	w.step = StepSelectRoom
	w.form = models.NewBookingForm()
	w.err = ""
	w.confirmationRef = ""
}

// ConfirmationReference is the prefix followed by the last six digits of
// the millisecond timestamp. Two bookings in the same millisecond modulo
// 10^6 share a reference; the service assigns the authoritative id.
func ConfirmationReference(t time.Time) string {
	return fmt.Sprintf("%s%06d", ConfirmationPrefix, t.UnixMilli()%1000000)
}

// Nights is the whole number of days between the two dates, rounded up.
// The difference is absolute, so a check-out before check-in still yields
// a positive count. Missing or malformed dates give zero.
func Nights(form models.BookingForm) int {
	in, out, ok := form.Dates()
	if !ok {
		return 0
	}
	diff := out.Sub(in)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Total is nights times the nightly price of the selected room, or zero
// when the selected room is not in rooms.
func Total(form models.BookingForm, rooms []models.Room) float64 {
	room, ok := FindRoom(rooms, form.RoomID)
	if !ok {
		return 0
	}
	return float64(Nights(form)) * room.PricePerNight.Float64()
}
