package repositories

import (
	"testing"

	"busreservation/internal/domain"
	"busreservation/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAdjustSeatsGuardArguments(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// delta appears in the SET and twice in the guard
	mock.ExpectExec("UPDATE schedules s").
		WithArgs(-2, int64(3), -2, -2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := ScheduleRepository{DB: db}.AdjustSeats(3, -2)
	if err != nil {
		t.Fatalf("adjust error: %v", err)
	}
	if !applied {
		t.Fatal("expected applied=true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdjustSeatsReportsRejection(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE schedules s").
		WillReturnResult(sqlmock.NewResult(0, 0))

	applied, err := ScheduleRepository{DB: db}.AdjustSeats(3, -50)
	if err != nil {
		t.Fatalf("adjust error: %v", err)
	}
	if applied {
		t.Fatal("expected applied=false when the guard rejects")
	}
}

func TestScheduleCreateDuplicateDateConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO schedules").
		WillReturnError(errDuplicate{})

	_, err = ScheduleRepository{DB: db}.Create(models.Schedule{
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

type errDuplicate struct{}

func (errDuplicate) Error() string {
	return "Error 1062 (23000): Duplicate entry '1-2026-03-02' for key 'uniq_bus_travel_date'"
}
