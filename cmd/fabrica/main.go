// Package main implements the fabrica binary: deterministic synthetic
// data generation driven by a YAML schema, written to stdout, files,
// SQLite or S3.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fabrica/fabrica/internal/app"
	"github.com/fabrica/fabrica/internal/config"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	// Parse command line flags
	var (
		configFile  string
		schemaFile  string
		outPath     string
		outputType  string
		mode        string
		locale      string
		seed        uint64
		seedString  string
		count       int
		chunkSize   int
		compress    bool
		showVersion bool
		showHelp    bool
	)

	flag.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
	flag.StringVar(&schemaFile, "schema", "", "Path to the YAML schema file")
	flag.StringVar(&outPath, "out", "", "Output path (file and sqlite output types)")
	flag.StringVar(&outputType, "output-type", "", "Output type: stdout, file, sqlite, s3")
	flag.StringVar(&mode, "mode", "", "Generation mode: rows, tuples, columns")
	flag.StringVar(&locale, "locale", "", "Locale for generated data")
	flag.Uint64Var(&seed, "seed", 0, "Numeric seed for the random stream")
	flag.StringVar(&seedString, "seed-string", "", "String seed (hashed, overrides --seed)")
	flag.IntVar(&count, "count", -1, "Number of records to generate")
	flag.IntVar(&chunkSize, "chunk-size", 0, "Records per chunk (0 uses the default)")
	flag.BoolVar(&compress, "compress", false, "Snappy-compress JSONL output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showHelp, "help", false, "Show help message")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Fabrica - Deterministic Synthetic Data Generation\n\n")
		fmt.Fprintf(os.Stderr, "Usage: fabrica [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fabrica --schema people.yaml --count 1000\n")
		fmt.Fprintf(os.Stderr, "  fabrica --schema people.yaml --count 1000000 --output-type sqlite --out people.db\n")
		fmt.Fprintf(os.Stderr, "  fabrica --config /etc/fabrica/config.yaml --seed 42\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  FABRICA_SEED          Numeric seed\n")
		fmt.Fprintf(os.Stderr, "  FABRICA_SCHEMA_FILE   Path to the schema file\n")
		fmt.Fprintf(os.Stderr, "  FABRICA_OUTPUT_TYPE   Output type (stdout, file, sqlite, s3)\n")
		fmt.Fprintf(os.Stderr, "  FABRICA_S3_BUCKET     Bucket for S3 output\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("fabrica version %s (commit: %s)\n", version, commit)
		os.Exit(0)
	}

	cfg, err := loadConfig(configFile, schemaFile, outPath, outputType, mode, locale, seed, seedString, count, chunkSize, compress)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// SIGINT or SIGTERM stops generation at the next chunk boundary.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snap, err := application.Run(ctx)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	log.Printf("Generated %d records in %d chunks (%.0f records/s, %v)",
		snap.Records, snap.Chunks, snap.RecordsPerSec, snap.Duration.Round(1e6))
	if snap.Bytes > 0 {
		log.Printf("Output size: %d bytes", snap.Bytes)
	}
}

// loadConfig loads configuration from file, environment, and command line flags.
func loadConfig(configFile, schemaFile, outPath, outputType, mode, locale string, seed uint64, seedString string, count, chunkSize int, compress bool) (*config.Config, error) {
	var cfg *config.Config
	var err error

	// Start with defaults or load from file
	if configFile != "" {
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	// Apply environment variables
	config.LoadFromEnv(cfg)

	// Apply command line flags (highest priority)
	if schemaFile != "" {
		cfg.SchemaFile = schemaFile
	}
	if outPath != "" {
		cfg.Output.Path = outPath
		if cfg.Output.Type == "stdout" {
			cfg.Output.Type = "file"
		}
	}
	if outputType != "" {
		cfg.Output.Type = outputType
	}
	if mode != "" {
		cfg.Mode = config.Mode(mode)
	}
	if locale != "" {
		cfg.Locale = locale
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if seedString != "" {
		cfg.SeedString = seedString
	}
	if count >= 0 {
		cfg.Count = count
	}
	if chunkSize > 0 {
		cfg.ChunkSize = chunkSize
	}
	if compress {
		cfg.Output.Compress = true
	}

	return cfg, nil
}
