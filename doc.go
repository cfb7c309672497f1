// Package antclust implements ant-colony-optimization (ACO) based clustering.
//
// A population of stochastic agents ("ants") repeatedly builds candidate
// partitions of the dataset, guided by a shared pheromone table of
// per-(point, cluster) intensities. Each iteration, every ant assigns every
// point to a cluster by roulette-wheel selection over the point's pheromone
// row, each candidate partition is scored by its within-cluster
// sum-of-squares, and the table is reinforced toward the better-scoring
// partitions while evaporation decays stale intensities. The best partition
// seen across the whole run is returned.
//
// Basic usage:
//
//	cfg := antclust.DefaultConfig()
//	cfg.Iterations = 100
//	result, err := antclust.Cluster(data, 3, cfg)
//	// result.Labels[i] is the cluster ID for point i
//	// result.Clusters[c] lists the point indices assigned to cluster c
//	// result.Fitness is the within-cluster sum-of-squares of that partition
//
// # Reproducibility
//
// All randomness derives from Config.Seed. Every ant draws from its own
// random stream keyed by (seed, iteration, ant index), so runs with the same
// seed, dataset and configuration produce identical results for any Workers
// setting, including strictly serial execution with Workers = 1.
package antclust
