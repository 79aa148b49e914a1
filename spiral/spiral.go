// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package spiral implements the ring arithmetic of a hexagonal spiral: the
// mapping between a flat spiral index and its (ring, offset) position.
//
// Index 0 is the center and forms ring 0. Ring r >= 1 holds 6r hexes and
// starts at index 1 + 3r(r-1).
package spiral

import (
	"errors"
	"fmt"
	"math"
)

// Index identifies a single hex by its position along the spiral.
type Index int

// Ring is the hex distance of a ring from the center.
type Ring int

// Offset is the position of a hex within its ring.
type Offset int

// NumEdges is the number of straight edges every ring r >= 1 is made of.
const NumEdges = 6

// MaxRing is the outermost ring whose every index is representable as an Index.
var MaxRing = maxRing()

var (
	ErrNegativeIndex  = errors.New("spiral: negative index")
	ErrNegativeRing   = errors.New("spiral: negative ring")
	ErrInvalidOffset  = errors.New("spiral: offset out of ring range")
	ErrRingOutOfRange = errors.New("spiral: ring out of representable range")
)

// Size returns the number of hexes in ring r. Negative rings are empty.
func Size(r Ring) int {
	if r < 0 {
		return 0
	}
	if r == 0 {
		return 1
	}
	return NumEdges * int(r)
}

// First returns the index of offset 0 in ring r.
func First(r Ring) (Index, error) {
	if err := checkRing(r); err != nil {
		return 0, err
	}
	return Index(first(uint64(r))), nil
}

// Last returns the index of the final hex of ring r.
func Last(r Ring) (Index, error) {
	if err := checkRing(r); err != nil {
		return 0, err
	}
	return Index(first(uint64(r)) + uint64(Size(r)) - 1), nil
}

// Locate returns the ring and offset of index i without walking rings.
func Locate(i Index) (Ring, Offset, error) {
	if i < 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrNegativeIndex, i)
	}
	if i == 0 {
		return 0, 0, nil
	}
	r := ringOf(uint64(i))
	return Ring(r), Offset(uint64(i) - first(r)), nil
}

// IndexOf returns the index at offset o of ring r.
// Rings beyond MaxRing are accepted as long as the resulting index fits.
func IndexOf(r Ring, o Offset) (Index, error) {
	if r < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeRing, r)
	}
	if r > MaxRing+1 {
		return 0, fmt.Errorf("%w: %d > %d", ErrRingOutOfRange, r, MaxRing)
	}
	if o < 0 || int(o) >= Size(r) {
		return 0, fmt.Errorf("%w: offset %d, ring %d holds %d", ErrInvalidOffset, o, r, Size(r))
	}
	if r == 0 {
		return 0, nil
	}
	v := first(uint64(r)) + uint64(o)
	if v > math.MaxInt {
		return 0, fmt.Errorf("%w: ring %d offset %d", ErrRingOutOfRange, r, o)
	}
	return Index(v), nil
}

// Edge returns which edge of its ring i lies on (0..5) and its step along
// that edge. Edge e of ring r covers offsets [e*r, (e+1)*r).
func Edge(i Index) (edge, step int, err error) {
	r, o, err := Locate(i)
	if err != nil {
		return 0, 0, err
	}
	if r == 0 {
		return 0, 0, nil
	}
	return int(o) / int(r), int(o) % int(r), nil
}

// IsVertex reports whether i is one of the six corner hexes of its ring.
func IsVertex(i Index) (bool, error) {
	if i == 0 {
		return false, nil
	}
	_, step, err := Edge(i)
	if err != nil {
		return false, err
	}
	return step == 0, nil
}

func checkRing(r Ring) error {
	if r < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRing, r)
	}
	if r > MaxRing {
		return fmt.Errorf("%w: %d > %d", ErrRingOutOfRange, r, MaxRing)
	}
	return nil
}

// first is 1 + 3r(r-1) for r >= 1.
func first(r uint64) uint64 {
	if r == 0 {
		return 0
	}
	return 1 + 3*r*(r-1)
}

// ringOf solves 3r(r-1) <= i-1 < 3r(r+1) for i >= 1. With m = (i-1)/3 the
// largest r with r(r-1) <= m is (1 + isqrt(4m+1)) / 2.
func ringOf(i uint64) uint64 {
	m := (i - 1) / 3
	r := (1 + isqrt(4*m+1)) / 2
	switch {
	case i < first(r):
		r--
	case i >= first(r+1):
		r++
	}
	return r
}

// isqrt returns floor(sqrt(n)).
func isqrt(n uint64) uint64 {
	x := uint64(math.Sqrt(float64(n)))
	for x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}

func maxRing() Ring {
	r := ringOf(math.MaxInt)
	if first(r+1)-1 > math.MaxInt {
		r--
	}
	return Ring(r)
}
