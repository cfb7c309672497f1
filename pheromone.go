package antclust

// PheromoneTable holds the per-(point, cluster) selection intensities that
// guide ant assignment, flat row-major with points rows and clusters columns.
// Every entry stays >= 0 for the lifetime of the table.
//
// The table is read-only while ants build partitions; the engine mutates it
// through Evaporate and Deposit only between assignment phases, so readers
// never need synchronization.
type PheromoneTable struct {
	value    []float64
	points   int
	clusters int
}

// NewPheromoneTable creates a points×clusters table with every entry set to
// the initial intensity.
func NewPheromoneTable(points, clusters int, initial float64) *PheromoneTable {
	t := &PheromoneTable{
		value:    make([]float64, points*clusters),
		points:   points,
		clusters: clusters,
	}
	for i := range t.value {
		t.value[i] = initial
	}
	return t
}

// At returns the intensity for the (point, cluster) pair.
func (t *PheromoneTable) At(point, cluster int) float64 {
	return t.value[point*t.clusters+cluster]
}

// Evaporate decays every intensity by the factor (1 - rho).
func (t *PheromoneTable) Evaporate(rho float64) {
	for i := range t.value {
		t.value[i] *= 1 - rho
	}
}

// Deposit adds amount to the (point, cluster) intensity.
func (t *PheromoneTable) Deposit(point, cluster int, amount float64) {
	t.value[point*t.clusters+cluster] += amount
}

// row returns the intensities for one point. The slice aliases the table;
// callers must treat it as read-only.
func (t *PheromoneTable) row(point int) []float64 {
	return t.value[point*t.clusters : (point+1)*t.clusters]
}

// perfectFitnessDeposit is deposited by an agent whose partition has zero
// within-cluster scatter, where 1/F would divide by zero.
const perfectFitnessDeposit = 1e6

// depositAmount converts an agent's fitness into a pheromone deposit.
// Better (lower-F) agents deposit more.
func depositAmount(fitness float64) float64 {
	if fitness <= 0 {
		return perfectFitnessDeposit
	}
	return 1 / fitness
}
