package semantic

import (
	"math"
	"math/rand"
)

const maxKMeansIterations = 100

// KMeans runs seeded centroid clustering. Initialization uses k-means++
// seeding driven by the given seed, so repeated runs on the same vectors
// produce identical labels. Returns per-row labels and the final inertia
// (sum of squared distances to the nearest centroid).
func KMeans(vectors [][]float64, k int, seed int64) ([]int, float64) {
	n := len(vectors)
	labels := make([]int, n)
	if n == 0 || k <= 1 {
		return labels, 0
	}
	if k > n {
		k = n
	}

	rng := rand.New(rand.NewSource(seed))
	centroids := seedCentroids(vectors, k, rng)

	for iter := 0; iter < maxKMeansIterations; iter++ {
		changed := false
		for i, vec := range vectors {
			best := nearest(vec, centroids)
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}

		counts := make([]int, k)
		dims := len(vectors[0])
		next := make([][]float64, k)
		for c := range next {
			next[c] = make([]float64, dims)
		}
		for i, vec := range vectors {
			c := labels[i]
			counts[c]++
			for j, v := range vec {
				next[c][j] += v
			}
		}
		for c := range next {
			if counts[c] == 0 {
				// Re-seed an empty cluster with the point farthest from its
				// current centroid so every cluster id stays in use.
				far := farthest(vectors, labels, centroids)
				labels[far] = c
				copy(next[c], vectors[far])
				counts[c] = 1
				changed = true
				continue
			}
			for j := range next[c] {
				next[c][j] /= float64(counts[c])
			}
		}
		centroids = next

		if !changed && iter > 0 {
			break
		}
	}

	var inertia float64
	for i, vec := range vectors {
		inertia += distanceSquared(vec, centroids[labels[i]])
	}
	return labels, inertia
}

// seedCentroids picks initial centroids with k-means++ weighting.
func seedCentroids(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	first := rng.Intn(len(vectors))
	centroids = append(centroids, clone(vectors[first]))

	for len(centroids) < k {
		weights := make([]float64, len(vectors))
		var total float64
		for i, vec := range vectors {
			d := math.Inf(1)
			for _, c := range centroids {
				if dist := distanceSquared(vec, c); dist < d {
					d = dist
				}
			}
			weights[i] = d
			total += d
		}
		if total == 0 {
			// All remaining points coincide with a centroid; pick uniformly.
			centroids = append(centroids, clone(vectors[rng.Intn(len(vectors))]))
			continue
		}
		target := rng.Float64() * total
		var cum float64
		pick := len(vectors) - 1
		for i, w := range weights {
			cum += w
			if cum >= target {
				pick = i
				break
			}
		}
		centroids = append(centroids, clone(vectors[pick]))
	}
	return centroids
}

func nearest(vec []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		if d := distanceSquared(vec, centroid); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func farthest(vectors [][]float64, labels []int, centroids [][]float64) int {
	far := 0
	farDist := -1.0
	for i, vec := range vectors {
		if d := distanceSquared(vec, centroids[labels[i]]); d > farDist {
			farDist = d
			far = i
		}
	}
	return far
}

func distanceSquared(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
