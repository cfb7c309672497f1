package antclust

import (
	"math"
	"testing"
)

const floatTol = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPairwiseDistances_KnownValues(t *testing.T) {
	data := [][]float64{
		{0, 0},
		{3, 0},
		{0, 4},
	}

	result, err := PairwiseDistances(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 9 {
		t.Fatalf("expected length 9, got %d", len(result))
	}

	n := 3
	if !almostEqual(result[0*n+1], 3.0, floatTol) {
		t.Errorf("dist(0,1) = %v, expected 3.0", result[0*n+1])
	}
	if !almostEqual(result[0*n+2], 4.0, floatTol) {
		t.Errorf("dist(0,2) = %v, expected 4.0", result[0*n+2])
	}
	if !almostEqual(result[1*n+2], 5.0, floatTol) {
		t.Errorf("dist(1,2) = %v, expected 5.0", result[1*n+2])
	}
}

func TestPairwiseDistances_SymmetricZeroDiagonal(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}

	result, err := PairwiseDistances(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := len(data)
	for i := 0; i < n; i++ {
		if result[i*n+i] != 0 {
			t.Errorf("diagonal dist[%d,%d] = %v, expected 0", i, i, result[i*n+i])
		}
		for j := 0; j < n; j++ {
			if result[i*n+j] != result[j*n+i] {
				t.Errorf("asymmetric: dist[%d,%d]=%v != dist[%d,%d]=%v",
					i, j, result[i*n+j], j, i, result[j*n+i])
			}
		}
	}
}

func TestPairwiseDistances_DimensionMismatch(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4, 5}}

	if _, err := PairwiseDistances(data); err == nil {
		t.Fatal("expected error for mismatched dimensions")
	}
}

func TestPairwiseDistances_Empty(t *testing.T) {
	result, err := PairwiseDistances(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected empty result, got length %d", len(result))
	}
}

func TestSquaredDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"3-4-5 triangle", []float64{0, 0}, []float64{3, 4}, 25},
		{"one dimension", []float64{2}, []float64{5}, 9},
		{"negative components", []float64{-1, -1}, []float64{1, 1}, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := squaredDistance(tc.a, tc.b); !almostEqual(got, tc.expected, floatTol) {
				t.Errorf("squaredDistance = %v, expected %v", got, tc.expected)
			}
		})
	}
}
