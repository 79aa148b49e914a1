// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hexspiral maps a single-integer hexagonal spiral onto axial hex
// coordinates and answers neighbor, distance and ring queries over it.
//
// Direction 0 points north; directions and ring offsets advance clockwise
// when the grid is drawn flat-top with y growing downward. Offset 0 of ring r
// is r steps north of the center.
package hexspiral

import (
	"errors"
	"fmt"

	"github.com/2dChan/hexspiral/spiral"
)

type (
	Index  = spiral.Index
	Ring   = spiral.Ring
	Offset = spiral.Offset
)

var (
	ErrInvalidCube        = errors.New("hexspiral: cube components do not sum to zero")
	ErrInvalidDirection   = errors.New("hexspiral: direction out of range [0 6)")
	ErrInvariantViolation = errors.New("hexspiral: invariant violation")
)

// Axial is a position on the hex plane. The cube R component is implied by
// Q + R + S = 0.
type Axial struct {
	Q int
	S int
}

// Origin is the axial position of index 0.
var Origin = Axial{}

// R returns the implied cube R component.
func (a Axial) R() int { return -a.Q - a.S }

func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.S + b.S} }

func (a Axial) Sub(b Axial) Axial { return Axial{a.Q - b.Q, a.S - b.S} }

func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.S * k} }

func (a Axial) Cube() Cube { return Cube{Q: a.Q, R: a.R(), S: a.S} }

func (a Axial) String() string { return fmt.Sprintf("(%d, %d)", a.Q, a.S) }

// Cube is the three-component form of a hex position.
type Cube struct {
	Q int
	R int
	S int
}

// Valid reports whether the components sum to zero.
func (c Cube) Valid() bool { return c.Q+c.R+c.S == 0 }

// Axial drops the R component. It does not validate c.
func (c Cube) Axial() Axial { return Axial{Q: c.Q, S: c.S} }

// FromRingOffset returns the axial position of offset o within ring r.
func FromRingOffset(r Ring, o Offset) (Axial, error) {
	if _, err := spiral.IndexOf(r, o); err != nil {
		return Axial{}, err
	}
	if r == 0 {
		return Origin, nil
	}
	n := int(r)
	edge := int(o) / n
	step := int(o) % n
	return Directions[edge].Mul(n).Add(Directions[(edge+2)%NumDirections].Mul(step)), nil
}

// ToRingOffset returns the ring and offset of a. It only fails when a lies
// beyond the representable rings, or on ErrInvariantViolation.
func ToRingOffset(a Axial) (Ring, Offset, error) {
	limit := uint64(spiral.MaxRing) + 1
	if magnitude(a.Q) > limit || magnitude(a.S) > limit {
		return 0, 0, fmt.Errorf("%w: %v", spiral.ErrRingOutOfRange, a)
	}
	// |Q|, |S| <= limit keeps Q+S and the distance below from overflowing.
	n := Distance(Origin, a)
	if n == 0 {
		return 0, 0, nil
	}
	if Ring(n) > spiral.MaxRing+1 {
		return 0, 0, fmt.Errorf("%w: %v at ring %d", spiral.ErrRingOutOfRange, a, n)
	}

	var edge, step int
	switch {
	case a.R() == -n && a.Q < n:
		edge, step = 0, a.Q
	case a.Q == n && a.S > -n:
		edge, step = 1, -a.S
	case a.S == -n && a.Q > 0:
		edge, step = 2, n-a.Q
	case a.R() == n && a.Q > -n:
		edge, step = 3, -a.Q
	case a.Q == -n && a.S < n:
		edge, step = 4, a.S
	case a.S == n && a.Q < 0:
		edge, step = 5, a.Q+n
	default:
		return 0, 0, fmt.Errorf("%w: %v not on any edge of ring %d", ErrInvariantViolation, a, n)
	}
	return Ring(n), Offset(edge*n + step), nil
}

// FromIndex returns the axial position of spiral index i.
func FromIndex(i Index) (Axial, error) {
	r, o, err := spiral.Locate(i)
	if err != nil {
		return Axial{}, err
	}
	return FromRingOffset(r, o)
}

// ToIndex returns the spiral index of a.
func ToIndex(a Axial) (Index, error) {
	r, o, err := ToRingOffset(a)
	if err != nil {
		return 0, err
	}
	return spiral.IndexOf(r, o)
}

// FromCube returns the spiral index of c.
func FromCube(c Cube) (Index, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidCube, c.Q, c.R, c.S)
	}
	return ToIndex(c.Axial())
}

// RingSize returns the number of hexes in ring r.
func RingSize(r Ring) int {
	return spiral.Size(r)
}
