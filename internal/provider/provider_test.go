package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/internal/rng"
)

func TestNewUniformRejectsEmpty(t *testing.T) {
	_, err := NewUniform(nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeEmptyOptions, errors.GetCode(err))
}

func TestNewWeightedRejectsEmptyAndAllZero(t *testing.T) {
	_, err := NewWeighted(nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeEmptyOptions, errors.GetCode(err))

	_, err = NewWeighted([]WeightedOption{{"a", 0}, {"b", 0}})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidWeights, errors.GetCode(err))
}

func TestNewWeightedSkipsZeroWeights(t *testing.T) {
	p, err := NewWeighted([]WeightedOption{{"a", 50}, {"b", 0}, {"c", 50}})
	require.NoError(t, err)
	assert.Equal(t, 2, p.PoolSize())

	st := rng.New(42)
	for i := 0; i < 200; i++ {
		v := p.Generate(st)
		assert.NotEqual(t, "b", v)
	}
}

func TestUniformGenerateReturnsValidOption(t *testing.T) {
	p, err := NewUniform([]string{"a", "b", "c"})
	require.NoError(t, err)

	st := rng.New(42)
	for i := 0; i < 100; i++ {
		assert.Contains(t, []string{"a", "b", "c"}, p.Generate(st))
	}
}

func TestUniformGenerateDeterministic(t *testing.T) {
	p, err := NewUniform([]string{"a", "b", "c"})
	require.NoError(t, err)

	a := p.GenerateBatch(rng.New(42), 100)
	b := p.GenerateBatch(rng.New(42), 100)
	assert.Equal(t, a, b)
}

func TestWeightedDistribution(t *testing.T) {
	p, err := NewWeighted([]WeightedOption{{"a", 90}, {"b", 10}})
	require.NoError(t, err)

	st := rng.New(42)
	results := p.GenerateBatch(st, 10000)
	aCount := 0
	for _, v := range results {
		if v == "a" {
			aCount++
		}
	}
	assert.Greater(t, aCount, 8500, "a drawn %d times", aCount)
	assert.Less(t, aCount, 9500, "a drawn %d times", aCount)
}

func TestSingleOptionAlwaysReturnsIt(t *testing.T) {
	p, err := NewUniform([]string{"only"})
	require.NoError(t, err)

	st := rng.New(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, "only", p.Generate(st))
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Has("department"))
	assert.Empty(t, r.Names())

	p, err := NewUniform([]string{"eng", "sales"})
	require.NoError(t, err)
	r.Register("department", p)
	r.Register("alpha", p)

	assert.True(t, r.Has("department"))
	got, ok := r.Lookup("department")
	assert.True(t, ok)
	assert.Same(t, p, got)
	assert.Equal(t, []string{"alpha", "department"}, r.Names())

	assert.True(t, r.Remove("department"))
	assert.False(t, r.Remove("department"))
	assert.False(t, r.Has("department"))
}
