package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"busreservation/internal/domain"
)

// BookingClient is the trip service's view into the booking domain. Only
// the deletion guard uses it.
type BookingClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewBookingClient(baseURL string) BookingClient {
	return BookingClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c BookingClient) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// HasConfirmedBooking reports whether any CONFIRMED booking exists for the
// schedule. A remote 404 counts as "no bookings"; any other failure is a
// DependencyUnavailableError so deletion is refused rather than silently
// allowed.
func (c BookingClient) HasConfirmedBooking(ctx context.Context, scheduleID int64) (bool, error) {
	url := fmt.Sprintf("%s/api/bookings/check-schedule/%d", c.BaseURL, scheduleID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return false, domain.DependencyUnavailableError{Dependency: "booking service", Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var has bool
		if err := json.NewDecoder(resp.Body).Decode(&has); err != nil {
			return false, domain.DependencyUnavailableError{Dependency: "booking service", Err: err}
		}
		return has, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, domain.DependencyUnavailableError{
			Dependency: "booking service",
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
}
