// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexspiral

import (
	"errors"
	"testing"

	"github.com/2dChan/hexspiral/spiral"
)

// IsPath

func TestIsPath(t *testing.T) {
	tests := []struct {
		name string
		path []Index
		want bool
	}{
		{"empty", nil, false},
		{"single", []Index{3}, false},
		{"pair", []Index{0, 1}, true},
		{"around center", []Index{1, 2, 3, 4, 5, 6, 1}, true},
		{"spiral out", []Index{0, 1, 7, 19, 37}, true},
		{"gap", []Index{0, 1, 19}, false},
		{"repeat", []Index{2, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsPath(tt.path)
			if err != nil {
				t.Fatalf("IsPath(%v) error = %v, want nil", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("IsPath(%v) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsPath_NegativeIndex(t *testing.T) {
	if _, err := IsPath([]Index{0, -1}); !errors.Is(err, spiral.ErrNegativeIndex) {
		t.Errorf("IsPath([0 -1]) error = %v, want %v", err, spiral.ErrNegativeIndex)
	}
}

// AreGrouped

func TestAreGrouped(t *testing.T) {
	tests := []struct {
		name    string
		indices []Index
		want    bool
	}{
		{"empty", nil, true},
		{"single", []Index{42}, true},
		{"duplicates", []Index{42, 42}, true},
		{"triangle", []Index{2, 8, 9}, true},
		{"through center", []Index{1, 0, 4}, true},
		{"long chain", []Index{71, 45, 25, 24, 23, 22, 41, 66}, true},
		{"center and ring one", []Index{0, 1, 2, 3, 4, 5, 6}, true},
		{"loop", []Index{11, 10, 2, 1, 6, 5, 15, 30, 29, 28, 27, 26}, true},
		{"bridged arc", []Index{1, 2, 3, 4, 5, 16, 17, 35, 36, 19, 20, 21, 22, 23, 24, 25, 26}, true},
		{"split pair", []Index{5, 17, 18}, false},
		{"two pairs", []Index{2, 3, 5, 6}, false},
		{"opposite", []Index{1, 4}, false},
		{"broken arc", []Index{1, 2, 3, 4, 5, 16, 17, 35, 36, 20, 21, 22, 23, 24, 25, 26}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The result must not depend on where the walk starts.
			for k := range max(1, len(tt.indices)) {
				rotated := append(append([]Index{}, tt.indices[k:]...), tt.indices[:k]...)
				got, err := AreGrouped(rotated)
				if err != nil {
					t.Fatalf("AreGrouped(%v) error = %v, want nil", rotated, err)
				}
				if got != tt.want {
					t.Errorf("AreGrouped(%v) = %v, want %v", rotated, got, tt.want)
				}
			}
		})
	}
}

func TestAreGrouped_NegativeIndex(t *testing.T) {
	if _, err := AreGrouped([]Index{1, -2}); !errors.Is(err, spiral.ErrNegativeIndex) {
		t.Errorf("AreGrouped([1 -2]) error = %v, want %v", err, spiral.ErrNegativeIndex)
	}
}
