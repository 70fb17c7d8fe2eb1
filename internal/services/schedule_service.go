package services

import (
	"context"
	"fmt"
	"strings"

	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
	"busreservation/internal/repositories"
	"busreservation/internal/utils"
)

// acSurchargePercent is added to the base route price for AC buses. The
// booking side never recomputes it; the snapshot's price is already
// effective.
const acSurchargePercent = 40

type ScheduleService struct {
	ScheduleRepo repositories.ScheduleRepository
	BusRepo      repositories.BusRepository
	RouteRepo    repositories.RouteRepository
	Bookings     BookingProbe
	RequestID    string
}

// ScheduleRequest is the create/update input shape.
type ScheduleRequest struct {
	BusID          int64  `json:"busId"`
	RouteID        int64  `json:"routeId"`
	TravelDate     string `json:"travelDate"`
	Departure      string `json:"departure"`
	Arrival        string `json:"arrival"`
	AvailableSeats int    `json:"availableSeats"`
}

func (s ScheduleService) GetSnapshot(id int64) (models.ScheduleSnapshot, error) {
	row, err := s.ScheduleRepo.GetByID(id)
	if err != nil {
		return models.ScheduleSnapshot{}, err
	}
	return snapshotFromRow(row), nil
}

func (s ScheduleService) ListSnapshots() ([]models.ScheduleSnapshot, error) {
	rows, err := s.ScheduleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.ScheduleSnapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, snapshotFromRow(row))
	}
	return out, nil
}

func (s ScheduleService) CreateSchedule(req ScheduleRequest) (models.ScheduleSnapshot, error) {
	if err := validateScheduleRequest(req); err != nil {
		return models.ScheduleSnapshot{}, err
	}

	bus, err := s.BusRepo.GetByID(req.BusID)
	if err != nil {
		return models.ScheduleSnapshot{}, err
	}
	if _, err := s.RouteRepo.GetByID(req.RouteID); err != nil {
		return models.ScheduleSnapshot{}, err
	}

	exists, err := s.ScheduleRepo.ExistsByBusAndDate(req.BusID, req.TravelDate)
	if err != nil {
		return models.ScheduleSnapshot{}, err
	}
	if exists {
		return models.ScheduleSnapshot{}, domain.ConflictError{
			Resource: "schedule",
			Msg:      "bus is already scheduled for this date: " + req.TravelDate,
		}
	}

	seats := req.AvailableSeats
	if seats <= 0 || seats > bus.TotalSeats {
		seats = bus.TotalSeats
	}

	created, err := s.ScheduleRepo.Create(models.Schedule{
		BusID:          req.BusID,
		RouteID:        req.RouteID,
		TravelDate:     req.TravelDate,
		Departure:      req.Departure,
		Arrival:        req.Arrival,
		AvailableSeats: seats,
	})
	if err != nil {
		return models.ScheduleSnapshot{}, err
	}
	return s.GetSnapshot(created.ID)
}

func (s ScheduleService) UpdateSchedule(id int64, req ScheduleRequest) (models.ScheduleSnapshot, error) {
	if err := validateScheduleRequest(req); err != nil {
		return models.ScheduleSnapshot{}, err
	}

	if _, err := s.ScheduleRepo.GetByID(id); err != nil {
		return models.ScheduleSnapshot{}, err
	}
	bus, err := s.BusRepo.GetByID(req.BusID)
	if err != nil {
		return models.ScheduleSnapshot{}, err
	}
	if _, err := s.RouteRepo.GetByID(req.RouteID); err != nil {
		return models.ScheduleSnapshot{}, err
	}

	seats := req.AvailableSeats
	if seats <= 0 || seats > bus.TotalSeats {
		seats = bus.TotalSeats
	}

	// The unique (bus_id, travel_date) key rejects moving the schedule onto
	// a date the bus already serves.
	if _, err := s.ScheduleRepo.Update(models.Schedule{
		ID:             id,
		BusID:          req.BusID,
		RouteID:        req.RouteID,
		TravelDate:     req.TravelDate,
		Departure:      req.Departure,
		Arrival:        req.Arrival,
		AvailableSeats: seats,
	}); err != nil {
		return models.ScheduleSnapshot{}, err
	}
	return s.GetSnapshot(id)
}

// DeleteSchedule removes a schedule only when the booking domain confirms
// no CONFIRMED booking holds seats on it. When the booking service cannot
// be reached the deletion is refused, never silently allowed.
func (s ScheduleService) DeleteSchedule(ctx context.Context, id int64) error {
	if _, err := s.ScheduleRepo.GetByID(id); err != nil {
		return err
	}

	has, err := s.Bookings.HasConfirmedBooking(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return domain.ConflictError{
			Resource: "schedule",
			Msg:      "cannot delete schedule which has active bookings",
		}
	}

	utils.LogEvent(s.RequestID, "schedule", "delete", fmt.Sprintf("schedule_id=%d", id))
	return s.ScheduleRepo.Delete(id)
}

// AdjustSeats applies the ledger's conditional adjustment. A rejected guard
// on an existing schedule is a Conflict; the caller decides whether to
// re-query and retry.
func (s ScheduleService) AdjustSeats(id int64, delta int) error {
	if delta == 0 {
		return domain.ValidationError{Field: "delta", Msg: "must not be zero"}
	}

	applied, err := s.ScheduleRepo.AdjustSeats(id, delta)
	if err != nil {
		return err
	}
	if applied {
		utils.LogEvent(s.RequestID, "schedule", "adjust_seats",
			fmt.Sprintf("schedule_id=%d delta=%d", id, delta))
		return nil
	}

	exists, err := s.ScheduleRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFoundError{Resource: "schedule"}
	}
	return domain.ConflictError{
		Resource: "schedule",
		Msg:      fmt.Sprintf("seat adjustment of %d rejected", delta),
	}
}

func (s ScheduleService) Search(source, destination, date string) ([]models.SearchResult, error) {
	source = strings.TrimSpace(source)
	destination = strings.TrimSpace(destination)
	if source == "" || destination == "" {
		return nil, domain.ValidationError{Field: "source/destination", Msg: "are required"}
	}
	if date != "" {
		if _, err := utils.ParseDate(date); err != nil {
			return nil, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD"}
		}
	}

	rows, err := s.ScheduleRepo.Search(source, destination, date)
	if err != nil {
		return nil, err
	}

	out := make([]models.SearchResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.SearchResult{
			ScheduleID:      row.Schedule.ID,
			BusName:         row.Bus.BusName,
			BusNumber:       row.Bus.BusNumber,
			BusType:         row.Bus.BusType,
			TotalSeats:      row.Bus.TotalSeats,
			FromLocation:    row.Route.FromLocation,
			ToLocation:      row.Route.ToLocation,
			DistanceKm:      row.Route.DistanceKm,
			DurationMinutes: row.Route.DurationMinutes,
			Price:           utils.FloatFromCents(EffectivePrice(row.Route.Price, row.Bus.BusType)),
			TravelDate:      row.Schedule.TravelDate,
			Departure:       row.Schedule.Departure,
			Arrival:         row.Schedule.Arrival,
			AvailableSeats:  row.Schedule.AvailableSeats,
		})
	}
	return out, nil
}

// EffectivePrice folds the bus-type surcharge into the base per-seat price.
func EffectivePrice(basePrice int64, busType string) int64 {
	if strings.EqualFold(strings.TrimSpace(busType), "AC") {
		return basePrice + utils.PercentOf(basePrice, acSurchargePercent)
	}
	return basePrice
}

func snapshotFromRow(row repositories.ScheduleRow) models.ScheduleSnapshot {
	return models.ScheduleSnapshot{
		ID:             row.Schedule.ID,
		BusID:          row.Schedule.BusID,
		RouteID:        row.Schedule.RouteID,
		TravelDate:     row.Schedule.TravelDate,
		Departure:      row.Schedule.Departure,
		Arrival:        row.Schedule.Arrival,
		AvailableSeats: row.Schedule.AvailableSeats,
		Bus:            row.Bus,
		Route: models.RouteView{
			ID:              row.Route.ID,
			FromLocation:    row.Route.FromLocation,
			ToLocation:      row.Route.ToLocation,
			DistanceKm:      row.Route.DistanceKm,
			DurationMinutes: row.Route.DurationMinutes,
			Price:           utils.FloatFromCents(EffectivePrice(row.Route.Price, row.Bus.BusType)),
		},
	}
}

func validateScheduleRequest(req ScheduleRequest) error {
	if req.BusID <= 0 {
		return domain.ValidationError{Field: "busId", Msg: "must be positive"}
	}
	if req.RouteID <= 0 {
		return domain.ValidationError{Field: "routeId", Msg: "must be positive"}
	}
	if _, err := utils.ParseDate(req.TravelDate); err != nil {
		return domain.ValidationError{Field: "travelDate", Msg: "must be YYYY-MM-DD"}
	}
	if _, err := utils.ParseClock(req.Departure); err != nil {
		return domain.ValidationError{Field: "departure", Msg: "must be HH:MM:SS"}
	}
	if _, err := utils.ParseClock(req.Arrival); err != nil {
		return domain.ValidationError{Field: "arrival", Msg: "must be HH:MM:SS"}
	}
	return nil
}
