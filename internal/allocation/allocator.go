package allocation

import (
	"math"
	"sort"
)

// Bucket is one weighted share of a quiz: a chapter for full-book tests
// or a difficulty level for custom tests. Declaration order matters for
// remainder tie-breaking.
type Bucket struct {
	Key    string
	Weight float64
}

// Allocate distributes total across the buckets in proportion to their
// weights using largest-remainder rounding, so the counts always sum to
// exactly total. Negative or NaN weights are clamped to zero; if the
// weight sum is zero the total is split equally.
func Allocate(total int, buckets []Bucket) map[string]int {
	counts := make(map[string]int, len(buckets))
	for _, b := range buckets {
		counts[b.Key] = 0
	}
	if total <= 0 || len(buckets) == 0 {
		return counts
	}

	weights := make([]float64, len(buckets))
	sum := 0.0
	for i, b := range buckets {
		w := b.Weight
		if math.IsNaN(w) || w < 0 {
			w = 0
		}
		weights[i] = w
		sum += w
	}
	if sum == 0 {
		// Equal split fallback when no bucket carries weight.
		for i := range weights {
			weights[i] = 1
		}
		sum = float64(len(weights))
	}

	type remainder struct {
		index int
		frac  float64
	}
	remainders := make([]remainder, len(buckets))
	allocated := 0

	for i, b := range buckets {
		share := weights[i] / sum * float64(total)
		base := int(math.Floor(share))
		counts[b.Key] = base
		allocated += base
		remainders[i] = remainder{index: i, frac: share - float64(base)}
	}

	// Hand the leftover units to the largest fractional remainders,
	// ties broken by declaration order.
	sort.SliceStable(remainders, func(i, j int) bool {
		return remainders[i].frac > remainders[j].frac
	})
	for i := 0; i < total-allocated; i++ {
		counts[buckets[remainders[i%len(remainders)].index].Key]++
	}

	return counts
}

// Reconcile caps each bucket's allocation at its available inventory and
// redistributes the deficit into buckets with spare capacity, most spare
// first, one unit at a time. When no spare capacity remains the returned
// total is silently less than requested.
func Reconcile(desired map[string]int, available map[string]int, buckets []Bucket) map[string]int {
	final := make(map[string]int, len(buckets))
	spare := make(map[string]int, len(buckets))
	deficit := 0

	for _, b := range buckets {
		want := desired[b.Key]
		have := available[b.Key]
		if want > have {
			deficit += want - have
			want = have
		}
		final[b.Key] = want
		spare[b.Key] = have - want
	}

	for deficit > 0 {
		best := ""
		bestSpare := 0
		for _, b := range buckets {
			if spare[b.Key] > bestSpare {
				best = b.Key
				bestSpare = spare[b.Key]
			}
		}
		if best == "" {
			break
		}
		final[best]++
		spare[best]--
		deficit--
	}

	return final
}

// NormalizePercents clamps negative or NaN percentages to zero and
// rescales the set to sum to 100. A zero sum returns zeros; callers
// supply their own fallback split in that case.
func NormalizePercents(percents map[string]float64) map[string]float64 {
	normalized := make(map[string]float64, len(percents))
	sum := 0.0
	for key, p := range percents {
		if math.IsNaN(p) || p < 0 {
			p = 0
		}
		normalized[key] = p
		sum += p
	}
	if sum == 0 {
		return normalized
	}
	for key, p := range normalized {
		normalized[key] = p / sum * 100
	}
	return normalized
}
