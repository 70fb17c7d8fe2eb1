package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"busreservation/internal/domain"
)

func TestHasConfirmedBookingTrue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bookings/check-schedule/3" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte("true"))
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL)
	has, err := c.HasConfirmedBooking(context.Background(), 3)
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if !has {
		t.Fatal("expected has=true")
	}
}

func TestHasConfirmedBookingNotFoundMeansNone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL)
	has, err := c.HasConfirmedBooking(context.Background(), 3)
	if err != nil {
		t.Fatalf("404 must mean no bookings, got error: %v", err)
	}
	if has {
		t.Fatal("expected has=false")
	}
}

func TestHasConfirmedBookingServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL)
	_, err := c.HasConfirmedBooking(context.Background(), 3)
	if !domain.IsDependencyUnavailable(err) {
		t.Fatalf("expected dependency unavailable, got %T: %v", err, err)
	}
}

func TestHasConfirmedBookingUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewBookingClient(srv.URL)
	_, err := c.HasConfirmedBooking(context.Background(), 3)
	if !domain.IsDependencyUnavailable(err) {
		t.Fatalf("expected dependency unavailable, got %T: %v", err, err)
	}
}
