package simulator

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultPartitionNoise is the Gaussian std applied to normalized weights.
	DefaultPartitionNoise = 0.04

	minNoisyWeight = 0.001
)

// Partition splits total into len(weights) non-negative parts roughly
// proportional to weights. The parts always sum to exactly total.
//
// Each normalized weight is perturbed by N(0, noise) and floored at a small
// epsilon, so zero-weight recipients can still be picked. Floored
// allocations leave a remainder that is handed out one unit at a time in
// descending perturbed-weight order, ties broken by index.
func Partition(total int, weights []float64, noise float64, rng *rand.Rand) []int {
	n := len(weights)
	if n == 0 {
		return []int{}
	}
	result := make([]int, n)
	if total <= 0 {
		return result
	}

	norm := make([]float64, n)
	sum := floats.Sum(weights)
	if sum <= 0 {
		for i := range norm {
			norm[i] = 1.0 / float64(n)
		}
	} else {
		for i, w := range weights {
			norm[i] = w / sum
		}
	}

	noisy := make([]float64, n)
	for i, w := range norm {
		perturbed := w
		if noise > 0 {
			perturbed += gauss(rng, 0, noise)
		}
		if perturbed < minNoisyWeight {
			perturbed = minNoisyWeight
		}
		noisy[i] = perturbed
	}
	noisySum := floats.Sum(noisy)

	allocated := 0
	for i, w := range noisy {
		result[i] = int(float64(total) * (w / noisySum))
		allocated += result[i]
	}

	if remainder := total - allocated; remainder != 0 {
		order := indicesByWeight(noisy)
		step := 1
		if remainder < 0 {
			step = -1
			remainder = -remainder
		}
		for i := 0; i < remainder; i++ {
			idx := order[i%n]
			if result[idx]+step >= 0 {
				result[idx] += step
			}
		}
	}

	// float truncation can leave a stray unit; settle it on the largest part
	if diff := total - sumInts(result); diff != 0 {
		largest := 0
		for i, v := range result {
			if v > result[largest] {
				largest = i
			}
		}
		result[largest] += diff
		if result[largest] < 0 {
			result[largest] = 0
		}
	}

	return result
}

func sumInts(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// indicesByWeight orders indices by descending weight, ties by index.
func indicesByWeight(weights []float64) []int {
	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weights[order[a]] > weights[order[b]]
	})
	return order
}
