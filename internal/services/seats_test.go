package services

import (
	"testing"

	"busreservation/internal/domain"
)

func TestAllocateSeatsLowestFirst(t *testing.T) {
	seats, err := AllocateSeats(10, nil, 3)
	if err != nil {
		t.Fatalf("allocate error: %v", err)
	}
	want := []int{1, 2, 3}
	if len(seats) != len(want) {
		t.Fatalf("got %v, want %v", seats, want)
	}
	for i := range want {
		if seats[i] != want[i] {
			t.Fatalf("got %v, want %v", seats, want)
		}
	}
}

func TestAllocateSeatsSkipsOccupied(t *testing.T) {
	seats, err := AllocateSeats(10, []int{1, 3, 4}, 3)
	if err != nil {
		t.Fatalf("allocate error: %v", err)
	}
	want := []int{2, 5, 6}
	for i := range want {
		if seats[i] != want[i] {
			t.Fatalf("got %v, want %v", seats, want)
		}
	}
}

func TestAllocateSeatsDeterministic(t *testing.T) {
	first, err := AllocateSeats(40, []int{2, 7, 9}, 5)
	if err != nil {
		t.Fatalf("allocate error: %v", err)
	}
	second, err := AllocateSeats(40, []int{2, 7, 9}, 5)
	if err != nil {
		t.Fatalf("allocate error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("allocation not deterministic: %v vs %v", first, second)
		}
	}
}

func TestAllocateSeatsInsufficient(t *testing.T) {
	_, err := AllocateSeats(4, []int{1, 2, 3}, 2)
	if err == nil {
		t.Fatal("expected error for insufficient free seats")
	}
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %T: %v", err, err)
	}
}

func TestAllocateSeatsExactFit(t *testing.T) {
	seats, err := AllocateSeats(3, []int{2}, 2)
	if err != nil {
		t.Fatalf("allocate error: %v", err)
	}
	if seats[0] != 1 || seats[1] != 3 {
		t.Fatalf("got %v, want [1 3]", seats)
	}
}
