package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"busreservation/internal/domain/models"
	"busreservation/internal/repositories"
	"busreservation/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders per-passenger e-ticket PDFs.
type DocsService struct {
	PassengerRepo repositories.PassengerRepository
	BookingRepo   repositories.BookingRepository
	Trips         TripGateway
	RequestID     string
}

type eticketData struct {
	Reference     string
	BookingID     int64
	PassengerName string
	Age           int
	Gender        models.Gender
	SeatNumber    int
	BusName       string
	BusNumber     string
	FromLocation  string
	ToLocation    string
	TravelDate    string
	Departure     string
	Arrival       string
	PricePerSeat  string
}

func (s DocsService) GenerateETicket(ctx context.Context, passengerID int64) ([]byte, string, error) {
	p, err := s.PassengerRepo.GetByID(passengerID)
	if err != nil {
		return nil, "", err
	}
	booking, err := s.BookingRepo.GetByID(p.BookingID)
	if err != nil {
		return nil, "", err
	}

	data := eticketData{
		Reference:     booking.Reference,
		BookingID:     booking.ID,
		PassengerName: p.Name,
		Age:           p.Age,
		Gender:        p.Gender,
		SeatNumber:    p.SeatNumber,
	}
	if booking.SeatCount > 0 {
		data.PricePerSeat = utils.FormatMoney(booking.TotalAmount / int64(booking.SeatCount))
	}

	// Snapshot details are best-effort; the ticket still renders when the
	// trip service is down.
	if snap, err := s.Trips.GetSchedule(ctx, booking.ScheduleID); err == nil {
		data.BusName = snap.Bus.BusName
		data.BusNumber = snap.Bus.BusNumber
		data.FromLocation = snap.Route.FromLocation
		data.ToLocation = snap.Route.ToLocation
		data.TravelDate = snap.TravelDate
		data.Departure = snap.Departure
		data.Arrival = snap.Arrival
	}

	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("passenger_id=%d", passengerID))
	return buildETicketPDF(data)
}

func buildETicketPDF(d eticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger   : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Age/Gender  : %d / %s", d.Age, safe(string(d.Gender), "-")),
		fmt.Sprintf("Seat        : %d", d.SeatNumber),
		fmt.Sprintf("Bus         : %s (%s)", safe(d.BusName, "-"), safe(d.BusNumber, "-")),
		fmt.Sprintf("Route       : %s -> %s", safe(d.FromLocation, "-"), safe(d.ToLocation, "-")),
		fmt.Sprintf("Date/Time   : %s %s", safe(d.TravelDate, "-"), safe(d.Departure, "-")),
		fmt.Sprintf("Arrival     : %s", safe(d.Arrival, "-")),
		fmt.Sprintf("Fare        : %s", safe(d.PricePerSeat, "-")),
		fmt.Sprintf("Booking Ref : %s", safe(d.Reference, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for 1 passenger (1 seat). Please present it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_SEAT%d.pdf", d.BookingID, d.SeatNumber)
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
