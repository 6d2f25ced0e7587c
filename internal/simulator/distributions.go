package simulator

import (
	"math"
	"math/rand"
)

// Distribution samples a float from an explicit RNG so a game seeded once
// replays identically.
type Distribution interface {
	Sample(rng *rand.Rand) float64
}

// NormalDistribution represents a normal (Gaussian) distribution
type NormalDistribution struct {
	mean   float64
	stdDev float64
}

func NewNormalDistribution(mean, stdDev float64) *NormalDistribution {
	return &NormalDistribution{mean: mean, stdDev: stdDev}
}

func (d *NormalDistribution) Sample(rng *rand.Rand) float64 {
	return rng.NormFloat64()*d.stdDev + d.mean
}

// ClampedNormalDistribution clamps each normal sample to [min, max].
type ClampedNormalDistribution struct {
	*NormalDistribution
	min float64
	max float64
}

func NewClampedNormalDistribution(mean, stdDev, min, max float64) *ClampedNormalDistribution {
	return &ClampedNormalDistribution{
		NormalDistribution: NewNormalDistribution(mean, stdDev),
		min:                min,
		max:                max,
	}
}

func (d *ClampedNormalDistribution) Sample(rng *rand.Rand) float64 {
	return clamp(d.NormalDistribution.Sample(rng), d.min, d.max)
}

// gauss draws from N(mean, stdDev).
func gauss(rng *rand.Rand, mean, stdDev float64) float64 {
	return rng.NormFloat64()*stdDev + mean
}

// randInt draws uniformly from [lo, hi], both inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// countHits rolls n independent trials with success probability p.
func countHits(rng *rand.Rand, n int, p float64) int {
	hits := 0
	for i := 0; i < n; i++ {
		if rng.Float64() < p {
			hits++
		}
	}
	return hits
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round rounds half away from zero to an int.
func round(v float64) int {
	return int(math.Round(v))
}
