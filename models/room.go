package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Room types served by the reservation service.
const (
	RoomTypeStandard     = "standard"
	RoomTypeExecutive    = "executive"
	RoomTypePresidential = "presidential"
)

// Room mirrors the reservation service's room listing. The client never
// writes rooms; ID is the only key the booking wizard selects by.
type Room struct {
	ID            uint     `json:"id"`
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight Price    `json:"price_per_night"`
	RoomType      string   `json:"room_type"`
	ImageURL      string   `json:"image_url"`
	Amenities     []string `json:"amenities"`
	Occupancy     int      `json:"occupancy"`
	BedType       string   `json:"bed_type"`
}

// RoomTypeLabel returns the display label for a room type, or the raw value
// when the service sends a type this site doesn't know.
func RoomTypeLabel(roomType string) string {
	switch roomType {
	case RoomTypeStandard:
		return "Standard Room"
	case RoomTypeExecutive:
		return "Executive Suite"
	case RoomTypePresidential:
		return "Presidential Suite"
	}
	return roomType
}

// Price is a nightly rate. The reservation service may encode decimals as
// JSON strings ("120.00"), so both forms are accepted.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("price %q: %w", s, err)
		}
		*p = Price(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

// Float64 returns the price as a plain number.
func (p Price) Float64() float64 {
	return float64(p)
}
