package models

import "time"

// DateLayout is the wire format for check-in and check-out dates.
const DateLayout = "2006-01-02"

// BookingRequest is the payload sent to POST /bookings/.
type BookingRequest struct {
	Room            uint   `json:"room"`
	GuestName       string `json:"guest_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
}

// BookingForm holds one field per wizard input. Fields tagged with a step
// must be filled before the wizard leaves that step.
type BookingForm struct {
	CheckIn         string `form:"check_in" json:"check_in" step:"1" label:"Check-in date" validate:"required,datetime=2006-01-02"`
	CheckOut        string `form:"check_out" json:"check_out" step:"1" label:"Check-out date" validate:"required,datetime=2006-01-02"`
	Guests          int    `form:"guests" json:"guests" step:"1" label:"Number of guests" validate:"required,min=1,max=6"`
	RoomID          uint   `form:"room_id" json:"room_id" step:"1" label:"Room" validate:"required"`
	Name            string `form:"name" json:"name" step:"2" label:"Full name" validate:"required"`
	Email           string `form:"email" json:"email" step:"2" label:"Email address" validate:"required,email"`
	Phone           string `form:"phone" json:"phone" step:"2" label:"Phone number" validate:"required"`
	SpecialRequests string `form:"special_requests" json:"special_requests" step:"2" label:"Special requests"`
}

// NewBookingForm returns an empty form with a single guest.
func NewBookingForm() BookingForm {
	return BookingForm{Guests: 1}
}

// Request builds the wire payload for the selected room.
func (f BookingForm) Request(roomID uint) BookingRequest {
	return BookingRequest{
		Room:            roomID,
		GuestName:       f.Name,
		Email:           f.Email,
		Phone:           f.Phone,
		CheckIn:         f.CheckIn,
		CheckOut:        f.CheckOut,
		Guests:          f.Guests,
		SpecialRequests: f.SpecialRequests,
	}
}

// Dates parses both dates. ok is false when either is missing or malformed.
func (f BookingForm) Dates() (checkIn, checkOut time.Time, ok bool) {
	if f.CheckIn == "" || f.CheckOut == "" {
		return time.Time{}, time.Time{}, false
	}
	in, err := time.Parse(DateLayout, f.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	out, err := time.Parse(DateLayout, f.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return in, out, true
}
