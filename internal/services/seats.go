package services

import (
	"fmt"

	"busreservation/internal/domain"
)

// AllocateSeats picks the lowest-numbered free seats. It scans 1..totalSeats
// ascending, skips seats in the occupied set and stops once required seats
// are collected. Deterministic: the same inputs always produce the same
// seats in the same order.
func AllocateSeats(totalSeats int, occupied []int, required int) ([]int, error) {
	taken := make(map[int]bool, len(occupied))
	for _, s := range occupied {
		taken[s] = true
	}

	seats := make([]int, 0, required)
	for n := 1; n <= totalSeats && len(seats) < required; n++ {
		if !taken[n] {
			seats = append(seats, n)
		}
	}

	if len(seats) < required {
		return nil, domain.ConflictError{
			Resource: "seats",
			Msg:      fmt.Sprintf("unable to allocate %d seats", required),
		}
	}
	return seats, nil
}
