package services

import (
	"context"
	"testing"

	"busreservation/internal/domain"
	"busreservation/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

type bookingProbeStub struct {
	has   bool
	err   error
	calls int
}

func (s *bookingProbeStub) HasConfirmedBooking(ctx context.Context, scheduleID int64) (bool, error) {
	s.calls++
	return s.has, s.err
}

var scheduleJoinCols = []string{
	"id", "bus_id", "route_id", "travel_date", "departure", "arrival", "available_seats",
	"bus_name", "bus_number", "bus_type", "total_seats",
	"from_location", "to_location", "distance_km", "duration_minutes", "price",
}

func expectScheduleRow(mock sqlmock.Sqlmock, id int64, seats int) {
	mock.ExpectQuery("FROM schedules s").
		WillReturnRows(sqlmock.NewRows(scheduleJoinCols).
			AddRow(id, 1, 2, "2026-03-02", "18:00:00", "23:30:00", seats,
				"Garuda Express", "KA-01", "AC", 40,
				"Bangalore", "Chennai", 350, 360, 50000))
}

func TestAdjustSeatsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE schedules s").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := ScheduleService{ScheduleRepo: repositories.ScheduleRepository{DB: db}}
	if err := svc.AdjustSeats(3, -2); err != nil {
		t.Fatalf("adjust error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdjustSeatsGuardRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE schedules s").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schedules WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	svc := ScheduleService{ScheduleRepo: repositories.ScheduleRepository{DB: db}}
	err = svc.AdjustSeats(3, -50)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %T: %v", err, err)
	}
}

func TestAdjustSeatsUnknownSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE schedules s").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schedules WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	svc := ScheduleService{ScheduleRepo: repositories.ScheduleRepository{DB: db}}
	err = svc.AdjustSeats(999, -1)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %T: %v", err, err)
	}
}

func TestAdjustSeatsZeroDelta(t *testing.T) {
	svc := ScheduleService{}
	err := svc.AdjustSeats(3, 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %T: %v", err, err)
	}
}

func TestDeleteScheduleWithoutBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectScheduleRow(mock, 3, 10)
	mock.ExpectExec("DELETE FROM schedules").
		WillReturnResult(sqlmock.NewResult(0, 1))

	probe := &bookingProbeStub{has: false}
	svc := ScheduleService{
		ScheduleRepo: repositories.ScheduleRepository{DB: db},
		Bookings:     probe,
	}
	if err := svc.DeleteSchedule(context.Background(), 3); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if probe.calls != 1 {
		t.Fatalf("probe calls = %d, want 1", probe.calls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteScheduleGuardedByActiveBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectScheduleRow(mock, 3, 10)

	svc := ScheduleService{
		ScheduleRepo: repositories.ScheduleRepository{DB: db},
		Bookings:     &bookingProbeStub{has: true},
	}
	err = svc.DeleteSchedule(context.Background(), 3)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %T: %v", err, err)
	}
}

func TestDeleteScheduleRefusedWhenProbeUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectScheduleRow(mock, 3, 10)

	svc := ScheduleService{
		ScheduleRepo: repositories.ScheduleRepository{DB: db},
		Bookings:     &bookingProbeStub{err: domain.DependencyUnavailableError{Dependency: "booking service"}},
	}
	err = svc.DeleteSchedule(context.Background(), 3)
	if !domain.IsDependencyUnavailable(err) {
		t.Fatalf("expected dependency unavailable, got %T: %v", err, err)
	}
}

func TestCreateScheduleDuplicateDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM buses WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "bus_name", "bus_number", "bus_type", "total_seats"}).
			AddRow(1, "Garuda Express", "KA-01", "AC", 40))
	mock.ExpectQuery("FROM routes WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "from_location", "to_location", "distance_km", "duration_minutes", "price"}).
			AddRow(2, "Bangalore", "Chennai", 350, 360, 50000))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schedules WHERE bus_id").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	svc := ScheduleService{
		ScheduleRepo: repositories.ScheduleRepository{DB: db},
		BusRepo:      repositories.BusRepository{DB: db},
		RouteRepo:    repositories.RouteRepository{DB: db},
	}
	_, err = svc.CreateSchedule(ScheduleRequest{
		BusID:      1,
		RouteID:    2,
		TravelDate: "2026-03-02",
		Departure:  "18:00:00",
		Arrival:    "23:30:00",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %T: %v", err, err)
	}
}

func TestEffectivePrice(t *testing.T) {
	if got := EffectivePrice(50000, "AC"); got != 70000 {
		t.Fatalf("AC price = %d, want 70000", got)
	}
	if got := EffectivePrice(50000, "NON_AC"); got != 50000 {
		t.Fatalf("NON_AC price = %d, want 50000", got)
	}
	// 40% of 333 cents is 133.2, rounded half up to 133
	if got := EffectivePrice(333, "ac"); got != 466 {
		t.Fatalf("surcharge rounding: got %d, want 466", got)
	}
}
