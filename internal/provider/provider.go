// Package provider implements the custom provider registry: user-supplied
// option lists, uniform or weighted, that generate values alongside the
// built-in field types.
package provider

import (
	"math"
	"sort"

	"github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/internal/rng"
)

// WeightedOption pairs a value with its selection weight.
type WeightedOption struct {
	Value  string
	Weight uint64
}

// Provider is a registered custom data source. Weighted providers store
// precomputed cumulative weights so a draw costs one stream draw plus a
// binary search.
type Provider struct {
	values     []string
	cumulative []uint64 // nil for uniform providers
	total      uint64
}

// NewUniform builds a provider where every option is equally likely.
func NewUniform(options []string) (*Provider, error) {
	if len(options) == 0 {
		return nil, errors.New(errors.ErrCategoryProvider, errors.CodeEmptyOptions,
			"options list cannot be empty")
	}
	values := make([]string, len(options))
	copy(values, options)
	return &Provider{values: values}, nil
}

// NewWeighted builds a provider selecting options proportionally to their
// weights. Zero-weight options are excluded; weights are validated here,
// never at draw time.
func NewWeighted(pairs []WeightedOption) (*Provider, error) {
	if len(pairs) == 0 {
		return nil, errors.New(errors.ErrCategoryProvider, errors.CodeEmptyOptions,
			"options list cannot be empty")
	}

	values := make([]string, 0, len(pairs))
	cumulative := make([]uint64, 0, len(pairs))
	var total uint64

	for _, p := range pairs {
		if p.Weight == 0 {
			continue
		}
		if p.Weight > math.MaxUint64-total {
			return nil, errors.New(errors.ErrCategoryProvider, errors.CodeInvalidWeights,
				"invalid weights: total overflows")
		}
		total += p.Weight
		values = append(values, p.Value)
		cumulative = append(cumulative, total)
	}

	if len(values) == 0 {
		return nil, errors.New(errors.ErrCategoryProvider, errors.CodeInvalidWeights,
			"invalid weights: all weights are zero")
	}

	return &Provider{values: values, cumulative: cumulative, total: total}, nil
}

// Generate draws one value from the provider.
func (p *Provider) Generate(st *rng.Stream) string {
	if p.cumulative == nil {
		return p.values[st.IntN(len(p.values))]
	}
	return p.values[st.Weighted(p.cumulative, p.total)]
}

// GenerateBatch draws n values from the provider.
func (p *Provider) GenerateBatch(st *rng.Stream, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = p.Generate(st)
	}
	return out
}

// PoolSize returns the number of distinct options, used to size unique
// retry budgets.
func (p *Provider) PoolSize() int { return len(p.values) }

// Registry maps provider names to providers for one generator instance.
// It is consulted, never mutated, during generation; register/remove are
// the only mutation points and are not safe for concurrent use with
// generation on the same instance.
type Registry struct {
	providers map[string]*Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]*Provider)}
}

// Register adds a provider under the given name, replacing any previous
// registration of that name.
func (r *Registry) Register(name string, p *Provider) {
	r.providers[name] = p
}

// Remove deletes the named provider, reporting whether it existed.
func (r *Registry) Remove(name string) bool {
	_, ok := r.providers[name]
	delete(r.providers, name)
	return ok
}

// Lookup returns the named provider.
func (r *Registry) Lookup(name string) (*Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Has reports whether the named provider is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.providers[name]
	return ok
}

// Names returns all registered provider names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
