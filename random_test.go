// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexspiral_test

import (
	"math"
	"testing"

	"github.com/2dChan/hexspiral"
	"github.com/2dChan/hexspiral/spiral"
	"github.com/2dChan/hexspiral/utils"
)

func TestIndex_RoundTripRandom(t *testing.T) {
	tests := []struct {
		name  string
		limit hexspiral.Index
	}{
		{"small", 1 << 16},
		{"medium", 1 << 40},
		{"large", math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, i := range utils.GenerateRandomIndices(10000, tt.limit, 0) {
				a, err := hexspiral.FromIndex(i)
				if err != nil {
					t.Fatalf("FromIndex(%d) error = %v, want nil", i, err)
				}
				got, err := hexspiral.ToIndex(a)
				if err != nil {
					t.Fatalf("ToIndex(%v) error = %v, want nil", a, err)
				}
				if got != i {
					t.Errorf("ToIndex(FromIndex(%d)) = %v, want %v", i, got, i)
				}

				r, _, err := spiral.Locate(i)
				if err != nil {
					t.Fatal(err)
				}
				if d := hexspiral.Distance(hexspiral.Origin, a); d != int(r) {
					t.Errorf("Distance(origin, FromIndex(%d)) = %v, want %v", i, d, r)
				}
			}
		})
	}
}

func TestAxial_RoundTripRandom(t *testing.T) {
	for _, a := range utils.GenerateRandomAxials(10000, 1<<24, 1) {
		i, err := hexspiral.ToIndex(a)
		if err != nil {
			t.Fatalf("ToIndex(%v) error = %v, want nil", a, err)
		}
		got, err := hexspiral.FromIndex(i)
		if err != nil {
			t.Fatalf("FromIndex(%d) error = %v, want nil", i, err)
		}
		if got != a {
			t.Errorf("FromIndex(ToIndex(%v)) = %v, want %v", a, got, a)
		}
	}
}

func TestNeighbors_SymmetryRandom(t *testing.T) {
	for _, i := range utils.GenerateRandomIndices(2000, 1<<50, 2) {
		ns, err := hexspiral.Neighbors(i)
		if err != nil {
			t.Fatalf("Neighbors(%d) error = %v, want nil", i, err)
		}
		for _, j := range ns {
			back, err := hexspiral.Neighbors(j)
			if err != nil {
				t.Fatalf("Neighbors(%d) error = %v, want nil", j, err)
			}
			found := false
			for _, k := range back {
				found = found || k == i
			}
			if !found {
				t.Errorf("Neighbors(%d) = %v, missing %d", j, back, i)
			}
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	indices := utils.GenerateRandomIndices(1024, math.MaxInt, 0)
	k := 0
	for b.Loop() {
		a, _ := hexspiral.FromIndex(indices[k%len(indices)])
		_, _ = hexspiral.ToIndex(a)
		k++
	}
}
