package services

import (
	"context"
	"sync"

	"hotel-site/models"
)

// fakeBackend records calls and answers with the configured results.
type fakeBackend struct {
	mu sync.Mutex

	rooms    []models.Room
	roomsErr error

	bookingErr error
	bookings   []models.BookingRequest

	contactErr error
	messages   []models.ContactMessage

	listCalls int

	// block, when set, holds CreateBooking and SendContactMessage until closed.
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeBackend) ListRooms(ctx context.Context) ([]models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.rooms, f.roomsErr
}

func (f *fakeBackend) CreateBooking(ctx context.Context, req models.BookingRequest) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, req)
	return f.bookingErr
}

func (f *fakeBackend) SendContactMessage(ctx context.Context, msg models.ContactMessage) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return f.contactErr
}

func (f *fakeBackend) wait() {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeBackend) bookingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func (f *fakeBackend) messageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func testRooms() []models.Room {
	return []models.Room{
		{ID: 1, Name: "Deluxe Room", PricePerNight: 120, RoomType: models.RoomTypeStandard},
		{ID: 2, Name: "Executive Suite", PricePerNight: 250, RoomType: models.RoomTypeExecutive},
	}
}
