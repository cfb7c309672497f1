package antclust

import "math/rand"

// ant is one candidate partition: a flat points×clusters boolean membership
// matrix (exactly one true entry per point row after assignment) plus its
// within-cluster sum-of-squares fitness.
type ant struct {
	points     int
	clusters   int
	membership []bool
	fitness    float64
}

func newAnt(points, clusters int) *ant {
	return &ant{
		points:     points,
		clusters:   clusters,
		membership: make([]bool, points*clusters),
	}
}

// assign places point into cluster, clearing any previous choice for that
// point so the one-true-per-row invariant holds.
func (a *ant) assign(point, cluster int) {
	row := a.membership[point*a.clusters : (point+1)*a.clusters]
	for i := range row {
		row[i] = false
	}
	row[cluster] = true
}

// cluster returns the cluster point is assigned to, or -1 if the point has
// not been assigned yet.
func (a *ant) cluster(point int) int {
	return membershipCluster(a.membership, point, a.clusters)
}

// reset clears the membership matrix and fitness so the ant can be reused in
// the next iteration without reallocation.
func (a *ant) reset() {
	for i := range a.membership {
		a.membership[i] = false
	}
	a.fitness = 0
}

// colony is the fixed pool of ants reused across iterations.
type colony struct {
	ants []*ant
	seed int64
}

func newColony(count, points, clusters int, seed int64) *colony {
	c := &colony{
		ants: make([]*ant, count),
		seed: seed,
	}
	for i := range c.ants {
		c.ants[i] = newAnt(points, clusters)
	}
	return c
}

// reset clears every ant before the next assignment phase.
func (c *colony) reset() {
	for _, a := range c.ants {
		a.reset()
	}
}

// rng returns the random source for one ant in one iteration. Deriving the
// stream from (seed, iteration, ant index) keeps runs bit-identical for any
// Workers setting. The multipliers are the splitmix64 increments, used here
// only to spread the streams apart.
func (c *colony) rng(iteration, idx int) *rand.Rand {
	h := uint64(c.seed) + uint64(iteration)*0x9e3779b97f4a7c15 + uint64(idx)*0xbf58476d1ce4e5b9
	return rand.New(rand.NewSource(int64(h)))
}

// rouletteSelect picks an index with probability proportional to the weights
// in row: a uniform draw in [0, total) is inverted against the cumulative
// sum. A row that sums to zero carries no preference, so it falls back to a
// uniform draw (one Intn call, keeping the stream deterministic).
func rouletteSelect(row []float64, rng *rand.Rand) int {
	var total float64
	for _, w := range row {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(row))
	}

	draw := rng.Float64() * total
	var cum float64
	for i, w := range row {
		cum += w
		if draw < cum {
			return i
		}
	}
	// Rounding in the cumulative sum can leave draw >= cum on the last entry.
	return len(row) - 1
}
