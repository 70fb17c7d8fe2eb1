package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
)

// ScheduleClient talks to the trip service. Calls are synchronous and
// blocking with no automatic retry; an adjust that times out after the
// server applied it stays applied.
type ScheduleClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewScheduleClient(baseURL string) ScheduleClient {
	return ScheduleClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c ScheduleClient) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// GetSchedule fetches a fresh snapshot. Never cached across calls.
func (c ScheduleClient) GetSchedule(ctx context.Context, id int64) (models.ScheduleSnapshot, error) {
	var snap models.ScheduleSnapshot

	url := fmt.Sprintf("%s/api/schedules/%d", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return snap, domain.InternalError{Err: err}
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return snap, domain.DependencyUnavailableError{Dependency: "trip service", Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
			return snap, domain.DependencyUnavailableError{Dependency: "trip service", Err: err}
		}
		return snap, nil
	case http.StatusNotFound:
		return snap, domain.NotFoundError{Resource: "schedule"}
	default:
		return snap, domain.DependencyUnavailableError{
			Dependency: "trip service",
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
}

// AdjustSeats asks the ledger for a conditional adjustment. A Conflict
// means the guard rejected the delta; callers must not retry the same
// count blindly.
func (c ScheduleClient) AdjustSeats(ctx context.Context, id int64, delta int) error {
	url := fmt.Sprintf("%s/api/schedules/%d/seats?delta=%d", c.BaseURL, id, delta)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return domain.InternalError{Err: err}
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return domain.DependencyUnavailableError{Dependency: "trip service", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return domain.NotFoundError{Resource: "schedule"}
	case http.StatusConflict:
		return domain.ConflictError{Resource: "schedule", Msg: "seat adjustment rejected"}
	default:
		return domain.DependencyUnavailableError{
			Dependency: "trip service",
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
}
