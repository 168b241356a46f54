// Package fabrica is the public face of the data generation engine. A
// Generator owns one deterministic draw stream, one locale table, and one
// custom provider registry; equal seeds produce equal output for the same
// call sequence.
//
// A Generator is not safe for concurrent use. Use one per goroutine, or
// the package-level default for quick scripts.
package fabrica

import (
	"sync"

	"github.com/fabrica/fabrica/internal/dispatch"
	"github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/internal/locale"
	"github.com/fabrica/fabrica/internal/provider"
	"github.com/fabrica/fabrica/internal/rng"
	"github.com/fabrica/fabrica/internal/schema"
	"github.com/fabrica/fabrica/pkg/types"
)

// DefaultLocale is used by NewDefault.
const DefaultLocale = "en_US"

// Limits re-exported for callers that size their requests up front.
const (
	MaxBatchSize    = schema.MaxBatchSize
	MaxSchemaFields = schema.MaxSchemaFields
)

// Generator produces deterministic fake data. The zero value is not
// usable; construct with New or NewDefault.
type Generator struct {
	stream     *rng.Stream
	table      *locale.Table
	localeName string
	registry   *provider.Registry
	dispatcher *dispatch.Dispatcher
}

// New builds a generator for the named locale, seeded with 0. Unknown
// locale names are rejected.
func New(localeName string) (*Generator, error) {
	table, ok := locale.Lookup(localeName)
	if !ok {
		return nil, errors.NewLocaleError(localeName)
	}
	registry := provider.NewRegistry()
	return &Generator{
		stream:     rng.New(0),
		table:      table,
		localeName: localeName,
		registry:   registry,
		dispatcher: dispatch.New(table, registry),
	}, nil
}

// NewDefault builds an en_US generator seeded with 0.
func NewDefault() *Generator {
	g, err := New(DefaultLocale)
	if err != nil {
		// en_US is always present.
		panic(err)
	}
	return g
}

// Locale returns the generator's locale name.
func (g *Generator) Locale() string { return g.localeName }

// Seed resets the stream. Two generators seeded alike emit identical
// values for identical call sequences.
func (g *Generator) Seed(seed uint64) {
	g.stream.Seed(seed)
}

// SeedString seeds from arbitrary text, hashed into the 64-bit seed
// space.
func (g *Generator) SeedString(seed string) {
	g.stream.SeedString(seed)
}

// Draws exposes the stream position, mainly for tests asserting that a
// rejected call consumed nothing.
func (g *Generator) Draws() uint64 { return g.stream.Draws() }

// SupportedLocales lists the locale names New accepts.
func SupportedLocales() []string {
	return locale.Supported()
}

// WeightedOption pairs a custom provider value with its relative weight.
type WeightedOption = provider.WeightedOption

// RegisterProvider installs a uniform custom provider. The name must not
// shadow a built-in field type; registering an existing custom name
// replaces it.
func (g *Generator) RegisterProvider(name string, options []string) error {
	if schema.IsBuiltin(name) {
		return errors.NewProviderError(errors.CodeNameCollision, name,
			"name shadows a built-in field type")
	}
	p, err := provider.NewUniform(options)
	if err != nil {
		return err
	}
	g.registry.Register(name, p)
	return nil
}

// RegisterWeightedProvider installs a weighted custom provider. Zero
// weights are dropped; all-zero or overflowing weights are rejected.
func (g *Generator) RegisterWeightedProvider(name string, options []WeightedOption) error {
	if schema.IsBuiltin(name) {
		return errors.NewProviderError(errors.CodeNameCollision, name,
			"name shadows a built-in field type")
	}
	p, err := provider.NewWeighted(options)
	if err != nil {
		return err
	}
	g.registry.Register(name, p)
	return nil
}

// RemoveProvider unregisters a custom provider, reporting whether it
// existed. Compiled schemas that still reference it will fail at
// generation time.
func (g *Generator) RemoveProvider(name string) bool {
	return g.registry.Remove(name)
}

// HasProvider reports whether a custom provider is registered.
func (g *Generator) HasProvider(name string) bool {
	return g.registry.Has(name)
}

// ProviderNames returns the registered custom provider names, sorted.
func (g *Generator) ProviderNames() []string {
	return g.registry.Names()
}

// Custom draws one value from a registered provider.
func (g *Generator) Custom(name string) (string, error) {
	p, ok := g.registry.Lookup(name)
	if !ok {
		return "", errors.NewProviderError(errors.CodeProviderNotFound, name,
			"provider is not registered")
	}
	return p.Generate(g.stream), nil
}

// CustomBatch draws n values from a registered provider. With unique set,
// values are deduplicated under the usual retry budget; exhaustion is an
// error even when the pool is simply smaller than n.
func (g *Generator) CustomBatch(name string, n int, unique bool) ([]string, error) {
	p, ok := g.registry.Lookup(name)
	if !ok {
		return nil, errors.NewProviderError(errors.CodeProviderNotFound, name,
			"provider is not registered")
	}
	return g.strings(n, unique, p.Generate)
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// Default returns the shared package-level generator, built on first use.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGen = NewDefault()
	})
	return defaultGen
}

// Seed seeds the package-level generator.
func Seed(seed uint64) { Default().Seed(seed) }

// Rows generates n map-shaped rows on the package-level generator.
func Rows(s *Schema, n int) ([]types.Record, error) { return Default().Rows(s, n) }

// RowTuples generates n tuple-shaped rows on the package-level generator.
func RowTuples(s *Schema, n int) ([]types.Tuple, error) { return Default().RowTuples(s, n) }

// Columns generates a columnar batch on the package-level generator.
func Columns(s *Schema, n int) (*types.ColumnBatch, error) { return Default().Columns(s, n) }
