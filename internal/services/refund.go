package services

import "busreservation/internal/domain"

// RefundPercentForHours maps whole hours remaining before departure to the
// refund percentage. Bands are evaluated top down; under 2 hours (including
// past departures) cancellation is refused.
func RefundPercentForHours(h int64) (int, error) {
	switch {
	case h >= 24:
		return 90, nil
	case h >= 12:
		return 75, nil
	case h >= 6:
		return 50, nil
	case h >= 2:
		return 25, nil
	default:
		return 0, domain.ConflictError{
			Resource: "cancellation",
			Msg:      "cancellation not allowed within 2 hours of departure",
		}
	}
}
