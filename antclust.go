package antclust

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// ErrEmptyDataset is returned by Cluster when data contains no points.
var ErrEmptyDataset = errors.New("antclust: dataset is empty")

// Config controls ACO clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Ants is the number of agents building candidate partitions each
	// iteration. Larger populations explore more per iteration at a linear
	// cost. Must be >= 1. Default: 20.
	Ants int

	// Iterations is the fixed iteration budget. A run always executes
	// exactly this many iterations; there is no convergence-based early
	// exit. Must be >= 1. Default: 50.
	Iterations int

	// Rho is the pheromone evaporation rate. Each reinforcement step scales
	// every intensity by (1 - Rho) before deposits are added; higher values
	// forget stale assignments faster. Must be in [0, 1]. Default: 0.1.
	Rho float64

	// InitialPheromone seeds every table entry before the first iteration.
	// Must be > 0. Default: 0.1.
	InitialPheromone float64

	// Seed drives all random cluster selection. Runs with the same Seed,
	// dataset and configuration produce identical results for any Workers
	// setting. 0 means seed from the current time.
	Seed int64

	// Workers controls the number of goroutines for the per-ant assignment
	// and fitness phases. 0 means use runtime.NumCPU(); 1 forces strictly
	// serial execution. Default: 0 (auto).
	Workers int
}

// Result contains the output of ACO clustering.
type Result struct {
	// Clusters holds, for each of the k clusters, the sorted indices of the
	// points assigned to it. Every point appears in exactly one cluster;
	// clusters may be empty.
	Clusters [][]int

	// Labels assigns each point to a cluster (0-indexed cluster ID).
	Labels []int

	// Fitness is the within-cluster sum-of-squares of the best partition
	// found. Lower is better.
	Fitness float64

	// BestHistory records the best fitness seen after each iteration. It is
	// monotonically non-increasing and has length Config.Iterations.
	BestHistory []float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Ants:             20,
		Iterations:       50,
		Rho:              0.1,
		InitialPheromone: 0.1,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Ants < 1 {
		return fmt.Errorf("antclust: Ants must be >= 1, got %d", cfg.Ants)
	}
	if cfg.Iterations < 1 {
		return fmt.Errorf("antclust: Iterations must be >= 1, got %d", cfg.Iterations)
	}
	if cfg.Rho < 0 || cfg.Rho > 1 {
		return fmt.Errorf("antclust: Rho must be in [0, 1], got %f", cfg.Rho)
	}
	if cfg.InitialPheromone <= 0 {
		return fmt.Errorf("antclust: InitialPheromone must be > 0, got %f", cfg.InitialPheromone)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
}

// Cluster partitions data into k clusters using ant colony optimization.
// Each element of data is a point (float64 slice); all points must have the
// same dimensionality. k must be between 1 and len(data). All input and
// configuration errors are reported before the first iteration runs.
func Cluster(data [][]float64, k int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("antclust: cluster count must be in [1, %d], got %d", n, k)
	}

	dims := len(data[0])
	if dims == 0 {
		return nil, errors.New("antclust: points must have at least one dimension")
	}
	for i, p := range data {
		if len(p) != dims {
			return nil, fmt.Errorf("antclust: point %d has %d dimensions, expected %d", i, len(p), dims)
		}
	}

	flat := make([]float64, n*dims)
	for i, row := range data {
		copy(flat[i*dims:], row)
	}

	return newEngine(flat, n, dims, k, cfg).run()
}
