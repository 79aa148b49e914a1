// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexspiral

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/hexspiral/spiral"
	"github.com/golang/geo/r2"
)

const (
	defaultSize = 1.0
)

var (
	ErrInvalidLayout = errors.New("hexspiral: invalid layout option")
	ErrInvalidPoint  = errors.New("hexspiral: point is not finite")
)

// Orientation selects how hexes are drawn.
type Orientation int

const (
	// FlatTop keeps North pointing straight up the screen.
	FlatTop Orientation = iota
	// PointyTop turns the grid 30 degrees counter-clockwise from FlatTop.
	PointyTop
)

func (o Orientation) String() string {
	switch o {
	case FlatTop:
		return "flat-top"
	case PointyTop:
		return "pointy-top"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

type LayoutOptions struct {
	Orientation Orientation
	// Size is the distance from a hex center to any of its corners.
	Size   float64
	Origin r2.Point
}

type LayoutOption func(*LayoutOptions) error

func WithSize(size float64) LayoutOption {
	return func(o *LayoutOptions) error {
		if !(size > 0) || math.IsInf(size, 0) {
			return fmt.Errorf("%w: size must be positive and finite, got %v", ErrInvalidLayout, size)
		}
		o.Size = size
		return nil
	}
}

func WithOrigin(p r2.Point) LayoutOption {
	return func(o *LayoutOptions) error {
		if !finite(p) {
			return fmt.Errorf("%w: origin %v is not finite", ErrInvalidLayout, p)
		}
		o.Origin = p
		return nil
	}
}

func WithOrientation(orientation Orientation) LayoutOption {
	return func(o *LayoutOptions) error {
		if orientation != FlatTop && orientation != PointyTop {
			return fmt.Errorf("%w: unknown orientation %d", ErrInvalidLayout, int(orientation))
		}
		o.Orientation = orientation
		return nil
	}
}

// Layout converts between spiral indices and screen positions, with the
// center hex placed at Origin and y growing downward.
type Layout struct {
	opts LayoutOptions

	// forward maps (q, r) to (x, y); inverse maps back. Both row-major 2x2.
	forward [4]float64
	inverse [4]float64
	// angle of corner 0, in radians.
	startAngle float64
}

func NewLayout(setters ...LayoutOption) (*Layout, error) {
	opts := LayoutOptions{
		Orientation: FlatTop,
		Size:        defaultSize,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	l := &Layout{opts: opts}
	sqrt3 := math.Sqrt(3)
	switch opts.Orientation {
	case FlatTop:
		l.forward = [4]float64{3.0 / 2.0, 0, sqrt3 / 2.0, sqrt3}
		l.inverse = [4]float64{2.0 / 3.0, 0, -1.0 / 3.0, sqrt3 / 3.0}
		l.startAngle = 0
	case PointyTop:
		l.forward = [4]float64{sqrt3, sqrt3 / 2.0, 0, 3.0 / 2.0}
		l.inverse = [4]float64{sqrt3 / 3.0, -1.0 / 3.0, 0, 2.0 / 3.0}
		l.startAngle = math.Pi / 6
	}
	return l, nil
}

func (l *Layout) Options() LayoutOptions {
	return l.opts
}

// AxialCenter returns the screen position of the center of a.
func (l *Layout) AxialCenter(a Axial) r2.Point {
	q, r := float64(a.Q), float64(a.R())
	f := l.forward
	return r2.Point{
		X: (f[0]*q + f[1]*r) * l.opts.Size,
		Y: (f[2]*q + f[3]*r) * l.opts.Size,
	}.Add(l.opts.Origin)
}

// Center returns the screen position of the center of hex i.
func (l *Layout) Center(i Index) (r2.Point, error) {
	a, err := FromIndex(i)
	if err != nil {
		return r2.Point{}, err
	}
	return l.AxialCenter(a), nil
}

// AxialAt returns the hex containing screen position p.
func (l *Layout) AxialAt(p r2.Point) (Axial, error) {
	if !finite(p) {
		return Axial{}, fmt.Errorf("%w: %v", ErrInvalidPoint, p)
	}
	v := p.Sub(l.opts.Origin).Mul(1 / l.opts.Size)
	inv := l.inverse
	q := inv[0]*v.X + inv[1]*v.Y
	r := inv[2]*v.X + inv[3]*v.Y
	return roundCube(q, r, -q-r), nil
}

// IndexAt returns the spiral index of the hex containing screen position p.
func (l *Layout) IndexAt(p r2.Point) (Index, error) {
	a, err := l.AxialAt(p)
	if err != nil {
		return 0, err
	}
	return ToIndex(a)
}

// Corners returns the six corners of hex i in clockwise screen order.
func (l *Layout) Corners(i Index) ([6]r2.Point, error) {
	var res [6]r2.Point
	c, err := l.Center(i)
	if err != nil {
		return res, err
	}
	for k := range res {
		res[k] = c.Add(l.cornerOffset(k))
	}
	return res, nil
}

// Bounds returns the smallest rectangle covering every hex on ring r and
// the rings inside it.
func (l *Layout) Bounds(r Ring) (r2.Rect, error) {
	if r < 0 {
		return r2.EmptyRect(), fmt.Errorf("%w: %d", spiral.ErrNegativeRing, r)
	}
	var centers []r2.Point
	if r == 0 {
		centers = append(centers, l.AxialCenter(Origin))
	} else {
		for _, d := range Directions {
			centers = append(centers, l.AxialCenter(d.Mul(int(r))))
		}
	}

	var corners []r2.Point
	for _, c := range centers {
		for k := range 6 {
			corners = append(corners, c.Add(l.cornerOffset(k)))
		}
	}
	return r2.RectFromPoints(corners...), nil
}

func (l *Layout) cornerOffset(k int) r2.Point {
	angle := l.startAngle + float64(k)*math.Pi/3
	return r2.Point{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(l.opts.Size)
}

// roundCube snaps fractional cube components to the nearest hex.
func roundCube(q, r, s float64) Axial {
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	default:
		rs = -rq - rr
	}
	return Cube{Q: int(rq), R: int(rr), S: int(rs)}.Axial()
}

func finite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
