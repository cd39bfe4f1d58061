package colour

import (
	"math"
)

// cluster is one k-means cluster: its HSV centroid and pixel population.
type cluster struct {
	centroid HSV
	size     int
}

// hsvDistance measures the distance between two HSV points. Hue is
// circular, so the hue component uses the shortest angular distance,
// scaled so that a half wheel (180 degrees) contributes 1.0.
func hsvDistance(a, b HSV) float64 {
	dh := HueDistance(a.H, b.H) / 180
	ds := a.S - b.S
	dv := a.V - b.V
	return math.Sqrt(dh*dh + ds*ds + dv*dv)
}

// cluster partitions the sampled points into at most e.clusters clusters
// using Lloyd's algorithm with farthest-point seeding. Every step is
// deterministic: ties in seeding and assignment resolve to the lowest
// index, and empty clusters keep their previous centroid instead of being
// re-seeded randomly.
func (e *Extractor) cluster(points []HSV) []cluster {
	k := e.clusters

	// If there are no more distinct colours than clusters, the clustering
	// degenerates: each distinct colour is its own cluster.
	if distinct := distinctClusters(points, k); distinct != nil {
		return distinct
	}

	centroids := farthestPointSeeds(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		for i, p := range points {
			assignments[i] = nearestCentroid(p, centroids)
		}

		next := recalculateCentroids(points, assignments, centroids)

		// Stop once no centroid moved meaningfully.
		maxMovement := 0.0
		for i := range centroids {
			if d := hsvDistance(centroids[i], next[i]); d > maxMovement {
				maxMovement = d
			}
		}
		centroids = next
		if maxMovement < e.convergence {
			break
		}
	}

	clusters := make([]cluster, k)
	for i := range clusters {
		clusters[i].centroid = centroids[i]
	}
	for i, p := range points {
		assignments[i] = nearestCentroid(p, centroids)
		clusters[assignments[i]].size++
	}
	return clusters
}

// distinctClusters handles the degenerate case where the sample holds at
// most k distinct colours. Returns nil when a full clustering run is
// needed. Clusters are ordered by first appearance in the sample.
func distinctClusters(points []HSV, k int) []cluster {
	index := make(map[HSV]int, k+1)
	clusters := make([]cluster, 0, k)
	for _, p := range points {
		i, ok := index[p]
		if !ok {
			if len(clusters) == k {
				return nil
			}
			i = len(clusters)
			index[p] = i
			clusters = append(clusters, cluster{centroid: p})
		}
		clusters[i].size++
	}
	return clusters
}

// farthestPointSeeds picks k initial centroids deterministically: the
// first sampled point, then repeatedly the point farthest from its
// nearest existing seed (lowest index wins ties).
func farthestPointSeeds(points []HSV, k int) []HSV {
	seeds := make([]HSV, 0, k)
	seeds = append(seeds, points[0])

	// nearest[i] is the distance from points[i] to its nearest seed.
	nearest := make([]float64, len(points))
	for i, p := range points {
		nearest[i] = hsvDistance(p, seeds[0])
	}

	for len(seeds) < k {
		best := 0
		bestDist := -1.0
		for i, d := range nearest {
			if d > bestDist {
				bestDist = d
				best = i
			}
		}
		seed := points[best]
		seeds = append(seeds, seed)

		for i, p := range points {
			if d := hsvDistance(p, seed); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	return seeds
}

// nearestCentroid finds the index of the centroid closest to a point.
// The lowest index wins ties.
func nearestCentroid(p HSV, centroids []HSV) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := hsvDistance(p, c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids recomputes centroid positions from the assigned
// points. Hue is averaged circularly (via the mean of unit vectors) so
// clusters straddling the 0/360 boundary stay put instead of collapsing
// towards cyan. A cluster that lost all its points keeps its previous
// centroid.
func recalculateCentroids(points []HSV, assignments []int, previous []HSV) []HSV {
	k := len(previous)
	sinSums := make([]float64, k)
	cosSums := make([]float64, k)
	satSums := make([]float64, k)
	valSums := make([]float64, k)
	counts := make([]int, k)

	for i, p := range points {
		c := assignments[i]
		rad := p.H * math.Pi / 180
		sinSums[c] += math.Sin(rad)
		cosSums[c] += math.Cos(rad)
		satSums[c] += p.S
		valSums[c] += p.V
		counts[c]++
	}

	centroids := make([]HSV, k)
	for i := 0; i < k; i++ {
		if counts[i] == 0 {
			centroids[i] = previous[i]
			continue
		}
		n := float64(counts[i])
		centroids[i] = HSV{
			H: meanHue(sinSums[i], cosSums[i]),
			S: satSums[i] / n,
			V: valSums[i] / n,
		}
	}
	return centroids
}

// dominantCluster returns the cluster with the largest population.
// Ties are broken by the lowest centroid hue, for determinism.
func dominantCluster(clusters []cluster) cluster {
	dom := clusters[0]
	for _, c := range clusters[1:] {
		if c.size > dom.size || (c.size == dom.size && c.centroid.H < dom.centroid.H) {
			dom = c
		}
	}
	return dom
}
