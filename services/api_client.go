package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hotel-site/models"
	"hotel-site/utils"
)

// RoomLister lists the bookable rooms.
type RoomLister interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
}

// BookingCreator submits a reservation request.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) error
}

// ContactSender submits a contact message.
type ContactSender interface {
	SendContactMessage(ctx context.Context, msg models.ContactMessage) error
}

// APIClient talks to the hotel's REST reservation service. It issues exactly
// one request per call: no retries, no idempotency keys.
type APIClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewAPIClient returns a client for baseURL. A zero timeout keeps the
// platform default, which never gives up on a hung service.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// ListRooms fetches GET /rooms/.
func (c *APIClient) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.do(ctx, http.MethodGet, "/rooms/", nil, &rooms); err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

// CreateBooking posts to /bookings/. The response body is ignored.
func (c *APIClient) CreateBooking(ctx context.Context, req models.BookingRequest) error {
	return c.do(ctx, http.MethodPost, "/bookings/", req, nil)
}

// SendContactMessage posts to /contact-messages/. The response body is
// ignored.
func (c *APIClient) SendContactMessage(ctx context.Context, msg models.ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/contact-messages/", msg, nil)
}

func (c *APIClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	url := c.BaseURL + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %s %s: %v", ErrServiceUnreachable, method, path, err)
		utils.GetLogger().LogUpstreamCall(ctx, method, url, 0, time.Since(start), err)
		return err
	}
	defer resp.Body.Close()

	if err := handleResponse(resp, out); err != nil {
		utils.GetLogger().LogUpstreamCall(ctx, method, url, resp.StatusCode, time.Since(start), err)
		return err
	}
	utils.GetLogger().LogUpstreamCall(ctx, method, url, resp.StatusCode, time.Since(start), nil)
	return nil
}

// handleResponse turns non-2xx answers into *APIError carrying the body
// text, and decodes successful bodies into out when out is non-nil.
func handleResponse(resp *http.Response, out interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = DefaultAPIErrorMessage
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
