package history

import (
	"testing"

	"github.com/microwx/microwx/internal/types"
)

func reading(i int) types.Reading {
	return types.Reading{
		Temperature: float32(i),
		Humidity:    float32(i) + 0.5,
		Pressure:    1000 + float32(i),
	}
}

func TestSnapshotOrdering(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		inserts  int
	}{
		{name: "empty", capacity: 30, inserts: 0},
		{name: "partial fill", capacity: 30, inserts: 7},
		{name: "one short of full", capacity: 30, inserts: 29},
		{name: "exactly full", capacity: 30, inserts: 30},
		{name: "one wrap", capacity: 30, inserts: 31},
		{name: "many wraps", capacity: 30, inserts: 173},
		{name: "small capacity", capacity: 3, inserts: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.capacity)
			for i := 0; i < tt.inserts; i++ {
				b.Insert(reading(i))
			}

			wantLen := tt.inserts
			if wantLen > tt.capacity {
				wantLen = tt.capacity
			}

			if b.Len() != wantLen {
				t.Fatalf("Len() = %d, want %d", b.Len(), wantLen)
			}

			wantFilled := tt.inserts >= tt.capacity
			if b.Filled() != wantFilled {
				t.Errorf("Filled() = %v, want %v", b.Filled(), wantFilled)
			}

			window := b.Snapshot()
			if len(window) != wantLen {
				t.Fatalf("Snapshot() length = %d, want %d", len(window), wantLen)
			}

			// The window must be exactly the last wantLen inserts,
			// oldest first
			first := tt.inserts - wantLen
			for j, r := range window {
				want := reading(first + j)
				if r != want {
					t.Errorf("window[%d] = %+v, want %+v", j, r, want)
				}
			}
		})
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	b := NewBuffer(4)
	for i := 0; i < 4; i++ {
		b.Insert(reading(i))
	}

	window := b.Snapshot()
	window[0].Temperature = -999

	again := b.Snapshot()
	if again[0].Temperature == -999 {
		t.Error("mutating a snapshot leaked into buffer state")
	}
}

func TestCapacityFixed(t *testing.T) {
	b := NewBuffer(30)
	for i := 0; i < 500; i++ {
		b.Insert(reading(i))
	}
	if b.Capacity() != 30 {
		t.Errorf("Capacity() = %d after 500 inserts, want 30", b.Capacity())
	}
	if b.Len() != 30 {
		t.Errorf("Len() = %d after 500 inserts, want 30", b.Len())
	}
}
