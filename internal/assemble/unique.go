package assemble

import (
	"github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/internal/rng"
	"github.com/fabrica/fabrica/internal/schema"
)

// uniqueBudgetFactor bounds the total attempts of a unique batch at
// n * uniqueBudgetFactor. It trades retry headroom against unbounded
// loops on small value pools.
const uniqueBudgetFactor = 100

// UniqueStrings draws values from gen until n distinct ones have been
// collected, preserving first-seen order. When the attempt budget runs
// out before n values exist, the error reports how many were found; the
// stream keeps the draws either way.
func UniqueStrings(st *rng.Stream, n int, gen func(*rng.Stream) string) ([]string, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return nil, err
	}

	budget := n * uniqueBudgetFactor
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for attempts := 0; len(out) < n; attempts++ {
		if attempts >= budget {
			return nil, errors.NewUniqueExhaustedError(n, len(out))
		}
		v := gen(st)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// UniqueInts is UniqueStrings for integer generators.
func UniqueInts(st *rng.Stream, n int, gen func(*rng.Stream) int64) ([]int64, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return nil, err
	}

	budget := n * uniqueBudgetFactor
	seen := make(map[int64]struct{}, n)
	out := make([]int64, 0, n)
	for attempts := 0; len(out) < n; attempts++ {
		if attempts >= budget {
			return nil, errors.NewUniqueExhaustedError(n, len(out))
		}
		v := gen(st)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// UniqueFloats is UniqueStrings for float generators.
func UniqueFloats(st *rng.Stream, n int, gen func(*rng.Stream) float64) ([]float64, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return nil, err
	}

	budget := n * uniqueBudgetFactor
	seen := make(map[float64]struct{}, n)
	out := make([]float64, 0, n)
	for attempts := 0; len(out) < n; attempts++ {
		if attempts >= budget {
			return nil, errors.NewUniqueExhaustedError(n, len(out))
		}
		v := gen(st)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// Strings generates a plain batch of n string values.
func Strings(st *rng.Stream, n int, gen func(*rng.Stream) string) ([]string, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		out[i] = gen(st)
	}
	return out, nil
}

// Ints generates a plain batch of n integer values.
func Ints(st *rng.Stream, n int, gen func(*rng.Stream) int64) ([]int64, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = gen(st)
	}
	return out, nil
}

// Floats generates a plain batch of n float values.
func Floats(st *rng.Stream, n int, gen func(*rng.Stream) float64) ([]float64, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = gen(st)
	}
	return out, nil
}
