// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides deterministic generators of spiral indices and axial
// coordinates for tests and benchmarks.

package utils

import (
	"math/rand"

	"github.com/2dChan/hexspiral"
)

// GenerateRandomIndices generates cnt indices drawn uniformly from [0, limit).
// The seed parameter ensures reproducibility. It panics if limit is not positive.
func GenerateRandomIndices(cnt int, limit hexspiral.Index, seed int64) []hexspiral.Index {
	if limit <= 0 {
		panic("GenerateRandomIndices: limit must be positive")
	}

	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	indices := make([]hexspiral.Index, cnt)

	for i := range cnt {
		indices[i] = hexspiral.Index(random.Int63n(int64(limit)))
	}

	return indices
}

// GenerateRandomAxials generates cnt axial coordinates at most radius away
// from the origin. The seed parameter ensures reproducibility. It panics if
// radius is negative.
func GenerateRandomAxials(cnt, radius int, seed int64) []hexspiral.Axial {
	if radius < 0 {
		panic("GenerateRandomAxials: radius must be non-negative")
	}

	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	axials := make([]hexspiral.Axial, cnt)

	for i := range cnt {
		q := random.Intn(2*radius+1) - radius
		lo, hi := max(-radius, -q-radius), min(radius, -q+radius)
		s := lo + random.Intn(hi-lo+1)
		axials[i] = hexspiral.Axial{Q: q, S: s}
	}

	return axials
}
