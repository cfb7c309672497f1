package antclust

import (
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// engine runs the iterate → assign → score → reinforce loop over one dataset.
// It owns the pheromone table, the ant pool and the retained best partition.
type engine struct {
	data []float64 // flat row-major, n rows × dims columns
	n    int
	dims int
	k    int
	cfg  Config

	table  *PheromoneTable
	colony *colony

	best        []bool // retained best membership matrix, flat n×k
	bestFitness float64
}

func newEngine(data []float64, n, dims, k int, cfg Config) *engine {
	return &engine{
		data:        data,
		n:           n,
		dims:        dims,
		k:           k,
		cfg:         cfg,
		table:       NewPheromoneTable(n, k, cfg.InitialPheromone),
		colony:      newColony(cfg.Ants, n, k, cfg.Seed),
		best:        make([]bool, n*k),
		bestFitness: math.Inf(1),
	}
}

// run executes the fixed iteration budget. Within one iteration the phases
// are strict barriers: assignment is fully joined before scoring starts, and
// scoring is fully joined before reinforcement touches the table.
func (e *engine) run() (*Result, error) {
	history := make([]float64, 0, e.cfg.Iterations)

	for iter := 0; iter < e.cfg.Iterations; iter++ {
		e.colony.reset()
		if err := e.assign(iter); err != nil {
			return nil, err
		}
		if err := e.score(); err != nil {
			return nil, err
		}
		e.updateBest(iter)
		e.reinforce()
		history = append(history, e.bestFitness)
	}

	log.Debug().
		Int("points", e.n).
		Int("clusters", e.k).
		Int("iterations", e.cfg.Iterations).
		Float64("fitness", e.bestFitness).
		Msg("ant clustering finished")

	return e.result(history), nil
}

// assign lets every ant build a partition by roulette selection over the
// current pheromone table. The table is read-only for the whole phase and
// each ant exclusively owns its membership matrix, so partitioning the work
// by ant keeps all writes conflict-free.
func (e *engine) assign(iteration int) error {
	return ParallelFor(0, len(e.colony.ants), e.cfg.Workers, func(i int) error {
		a := e.colony.ants[i]
		rng := e.colony.rng(iteration, i)
		for p := 0; p < e.n; p++ {
			a.assign(p, rouletteSelect(e.table.row(p), rng))
		}
		return nil
	})
}

// score computes each ant's fitness. Ants are scored independently against
// their own membership matrices, so this phase parallelizes by ant too.
func (e *engine) score() error {
	return ParallelFor(0, len(e.colony.ants), e.cfg.Workers, func(i int) error {
		a := e.colony.ants[i]
		a.fitness = e.fitness(a)
		return nil
	})
}

// fitness is the within-cluster sum-of-squares: the squared Euclidean
// distance from every point to the centroid of its assigned cluster.
func (e *engine) fitness(a *ant) float64 {
	centers := e.centroids(a)
	var f float64
	for p := 0; p < e.n; p++ {
		f += squaredDistance(e.point(p), centers[a.cluster(p)])
	}
	return f
}

// centroids computes the component-wise mean of each cluster's points. A
// cluster with no points keeps the zero vector as its centroid: the naive
// mean would divide by zero, and the zero vector makes any later assignment
// to the empty cluster pay full squared distance from the origin rather than
// producing NaN fitness.
func (e *engine) centroids(a *ant) [][]float64 {
	centers := make([][]float64, e.k)
	counts := make([]int, e.k)
	for c := range centers {
		centers[c] = make([]float64, e.dims)
	}

	for p := 0; p < e.n; p++ {
		c := a.cluster(p)
		floats.Add(centers[c], e.point(p))
		counts[c]++
	}
	for c := range centers {
		if counts[c] > 0 {
			floats.Scale(1/float64(counts[c]), centers[c])
		}
	}
	return centers
}

// updateBest retains the best partition across the whole run, overwriting
// only on strict improvement.
func (e *engine) updateBest(iteration int) {
	for _, a := range e.colony.ants {
		if a.fitness < e.bestFitness {
			e.bestFitness = a.fitness
			copy(e.best, a.membership)
			log.Debug().
				Int("iteration", iteration).
				Float64("fitness", a.fitness).
				Msg("best partition improved")
		}
	}
}

// reinforce is the single writer of the pheromone table. It runs strictly
// after the assignment and scoring joins: evaporate every intensity, then
// deposit 1/F for every (point, cluster) choice each ant made, so
// better-scoring partitions bias the next iteration's selection.
func (e *engine) reinforce() {
	e.table.Evaporate(e.cfg.Rho)
	for _, a := range e.colony.ants {
		amount := depositAmount(a.fitness)
		for p := 0; p < e.n; p++ {
			e.table.Deposit(p, a.cluster(p), amount)
		}
	}
}

func (e *engine) point(p int) []float64 {
	return e.data[p*e.dims : (p+1)*e.dims]
}

// result reinterprets the retained membership matrix as labels and k
// disjoint index sets. Point indices are appended in ascending order, so the
// per-cluster sets come out sorted.
func (e *engine) result(history []float64) *Result {
	labels := make([]int, e.n)
	clusters := make([][]int, e.k)
	for c := range clusters {
		clusters[c] = []int{}
	}

	for p := 0; p < e.n; p++ {
		c := membershipCluster(e.best, p, e.k)
		labels[p] = c
		clusters[c] = append(clusters[c], p)
	}

	return &Result{
		Clusters:    clusters,
		Labels:      labels,
		Fitness:     e.bestFitness,
		BestHistory: history,
	}
}

// membershipCluster returns the cluster the point row of a flat n×k boolean
// membership matrix points at, or -1 for an unassigned row.
func membershipCluster(membership []bool, point, k int) int {
	row := membership[point*k : (point+1)*k]
	for c, in := range row {
		if in {
			return c
		}
	}
	return -1
}
