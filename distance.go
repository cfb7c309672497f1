package antclust

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// PairwiseDistances computes the full n×n Euclidean distance matrix for the
// dataset. The result is a flat []float64 of length n×n in row-major order,
// symmetric with a zero diagonal. All points must share the same
// dimensionality.
func PairwiseDistances(data [][]float64) ([]float64, error) {
	n := len(data)
	if n == 0 {
		return []float64{}, nil
	}

	dims := len(data[0])
	for i, p := range data {
		if len(p) != dims {
			return nil, fmt.Errorf("antclust: point %d has %d dimensions, expected %d", i, len(p), dims)
		}
	}

	result := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := floats.Distance(data[i], data[j], 2)
			result[i*n+j] = d
			result[j*n+i] = d
		}
	}

	return result, nil
}

// squaredDistance returns the squared Euclidean distance between two vectors
// of equal length.
func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
