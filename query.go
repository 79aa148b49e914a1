// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexspiral

import (
	"fmt"
	"iter"

	"github.com/2dChan/hexspiral/spiral"
)

// Direction selects one of the six hex neighbors.
type Direction int

const (
	North Direction = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

const NumDirections = 6

// Directions holds the unit axial step for each Direction, in order.
var Directions = [NumDirections]Axial{
	North:     {0, +1},
	NorthEast: {+1, 0},
	SouthEast: {+1, -1},
	South:     {0, -1},
	SouthWest: {-1, 0},
	NorthWest: {-1, +1},
}

func (d Direction) Valid() bool { return d >= 0 && d < NumDirections }

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction { return (d + NumDirections/2) % NumDirections }

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case NorthWest:
		return "NW"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Distance returns the hex distance between a and b. The result is exact
// when the components of a.Sub(b) and their sum fit in an int.
func Distance(a, b Axial) int {
	d := a.Sub(b)
	return max(abs(d.Q), abs(d.S), abs(d.R()))
}

// IndexDistance returns the hex distance between two spiral indices.
func IndexDistance(i, j Index) (int, error) {
	a, err := FromIndex(i)
	if err != nil {
		return 0, err
	}
	b, err := FromIndex(j)
	if err != nil {
		return 0, err
	}
	return Distance(a, b), nil
}

// Neighbors returns the six neighbors of i ordered by Direction.
func Neighbors(i Index) ([NumDirections]Index, error) {
	var res [NumDirections]Index
	a, err := FromIndex(i)
	if err != nil {
		return res, err
	}
	for d, step := range Directions {
		n, err := ToIndex(a.Add(step))
		if err != nil {
			return res, err
		}
		res[d] = n
	}
	return res, nil
}

// Neighbor returns the neighbor of i in direction d.
func Neighbor(i Index, d Direction) (Index, error) {
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	a, err := FromIndex(i)
	if err != nil {
		return 0, err
	}
	return ToIndex(a.Add(Directions[d]))
}

// AreNeighbors reports whether i and j are adjacent.
func AreNeighbors(i, j Index) (bool, error) {
	d, err := IndexDistance(i, j)
	if err != nil {
		return false, err
	}
	return d == 1, nil
}

// IsInRing reports whether i lies on ring r.
func IsInRing(i Index, r Ring) (bool, error) {
	got, _, err := spiral.Locate(i)
	if err != nil {
		return false, err
	}
	return got == r, nil
}

// Within reports whether i lies on ring r or any ring inside it.
func Within(i Index, r Ring) (bool, error) {
	got, _, err := spiral.Locate(i)
	if err != nil {
		return false, err
	}
	return got <= r, nil
}

// Ray returns the indices visited by stepping from i in direction d, not
// including i itself. The sequence ends only when an index would overflow.
func Ray(i Index, d Direction) (iter.Seq[Index], error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	a, err := FromIndex(i)
	if err != nil {
		return nil, err
	}
	return func(yield func(Index) bool) {
		cur := a
		for {
			cur = cur.Add(Directions[d])
			n, err := ToIndex(cur)
			if err != nil || !yield(n) {
				return
			}
		}
	}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// magnitude is |x| without overflow at math.MinInt.
func magnitude(x int) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}
