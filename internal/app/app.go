// Package app wires configuration, generator, schema and sink into a
// single generation run.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/fabrica/fabrica/internal/config"
	"github.com/fabrica/fabrica/internal/observability"
	"github.com/fabrica/fabrica/internal/sink"
	"github.com/fabrica/fabrica/pkg/fabrica"
	"github.com/fabrica/fabrica/pkg/types"
)

// App holds the components of one generation run.
type App struct {
	cfg    *config.Config
	gen    *fabrica.Generator
	schema *fabrica.Schema
	stats  *observability.RunStats
}

// New builds a run from the configuration: it validates the config,
// seeds the generator, registers custom providers and compiles the
// schema file.
func New(cfg *config.Config) (*App, error) {
	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	gen, err := fabrica.New(cfg.Locale)
	if err != nil {
		return nil, err
	}
	if cfg.SeedString != "" {
		gen.SeedString(cfg.SeedString)
	} else {
		gen.Seed(cfg.Seed)
	}

	for _, p := range cfg.Providers {
		if len(p.Weights) > 0 {
			options := make([]fabrica.WeightedOption, len(p.Options))
			for i, opt := range p.Options {
				options[i] = fabrica.WeightedOption{Value: opt, Weight: p.Weights[i]}
			}
			if err := gen.RegisterWeightedProvider(p.Name, options); err != nil {
				return nil, err
			}
		} else {
			if err := gen.RegisterProvider(p.Name, p.Options); err != nil {
				return nil, err
			}
		}
	}

	doc, err := os.ReadFile(cfg.SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	s, err := gen.CompileSchemaYAML(doc)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:    cfg,
		gen:    gen,
		schema: s,
		stats:  observability.NewRunStats(),
	}, nil
}

// Generator exposes the seeded generator, mainly for tests.
func (a *App) Generator() *fabrica.Generator { return a.gen }

// Run generates cfg.Count records chunk by chunk and writes them to
// the configured sink. Cancelling ctx stops the run between chunks.
func (a *App) Run(ctx context.Context) (observability.Snapshot, error) {
	out, err := sink.FromConfig(ctx, a.cfg.Output, a.schema.Compiled())
	if err != nil {
		return a.stats.Snapshot(), err
	}

	runErr := a.generate(ctx, out)

	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}

	a.recordOutputSize()
	return a.stats.Snapshot(), runErr
}

func (a *App) generate(ctx context.Context, out sink.Sink) error {
	switch a.cfg.Mode {
	case config.ModeTuples:
		return a.generateTuples(ctx, out)
	case config.ModeColumns:
		return a.generateColumns(ctx, out)
	default:
		return a.generateRows(ctx, out)
	}
}

func (a *App) generateRows(ctx context.Context, out sink.Sink) error {
	it, err := a.gen.RowsChunked(a.schema, a.cfg.Count, a.cfg.ChunkSize)
	if err != nil {
		return err
	}
	for {
		rows, ok := it.Next(ctx)
		if !ok {
			return it.Err()
		}
		if err := out.WriteRows(ctx, rows); err != nil {
			return err
		}
		a.stats.RecordChunk(len(rows))
	}
}

func (a *App) generateTuples(ctx context.Context, out sink.Sink) error {
	it, err := a.gen.RowTuplesChunked(a.schema, a.cfg.Count, a.cfg.ChunkSize)
	if err != nil {
		return err
	}
	names := a.schema.FieldNames()
	for {
		tuples, ok := it.Next(ctx)
		if !ok {
			return it.Err()
		}
		rows := make([]types.Record, len(tuples))
		for i, tup := range tuples {
			rec := make(types.Record, len(names))
			for j, name := range names {
				rec[name] = tup[j]
			}
			rows[i] = rec
		}
		if err := out.WriteRows(ctx, rows); err != nil {
			return err
		}
		a.stats.RecordChunk(len(rows))
	}
}

func (a *App) generateColumns(ctx context.Context, out sink.Sink) error {
	it, err := a.gen.ColumnsChunked(a.schema, a.cfg.Count, a.cfg.ChunkSize)
	if err != nil {
		return err
	}
	for {
		batch, ok := it.Next(ctx)
		if !ok {
			return it.Err()
		}
		rows := make([]types.Record, batch.Rows)
		for i := 0; i < batch.Rows; i++ {
			rec := make(types.Record, len(batch.Columns))
			for _, col := range batch.Columns {
				rec[col.Name] = col.Value(i)
			}
			rows[i] = rec
		}
		if err := out.WriteRows(ctx, rows); err != nil {
			return err
		}
		a.stats.RecordChunk(len(rows))
	}
}

// recordOutputSize stats the output file where one exists. Stdout and
// S3 outputs have no single local artifact to measure.
func (a *App) recordOutputSize() {
	switch a.cfg.Output.Type {
	case "file", "sqlite":
		if info, err := os.Stat(a.cfg.Output.Path); err == nil {
			a.stats.RecordBytes(info.Size())
		}
	}
}
