package utils

import (
	"math/rand"
	"strings"
)

// RandomSource is the subset of *rand.Rand the generators draw from
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a source seeded with seed
func NewRandomSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// IntBetween returns a value in [min, max], both inclusive
func IntBetween(rng RandomSource, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// Choice picks one element of items uniformly
func Choice[T any](rng RandomSource, items []T) T {
	return items[rng.Intn(len(items))]
}

// CoinFlip returns true half of the time
func CoinFlip(rng RandomSource) bool {
	return rng.Intn(2) == 0
}

// RandomString builds a string of length characters drawn from alphabet
func RandomString(rng RandomSource, alphabet string, length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}

// Sample draws k distinct elements of population without replacement, in draw order.
// population is not modified.
func Sample[T any](rng RandomSource, population []T, k int) []T {
	if k > len(population) {
		k = len(population)
	}
	pool := make([]T, len(population))
	copy(pool, population)

	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}

// IntRange returns [from, to] as a slice
func IntRange(from, to int) []int {
	if to < from {
		return []int{}
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
