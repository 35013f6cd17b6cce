// Package main implements primesift, which lists the primes up to n using a
// coordinator and a fixed pool of worker goroutines.
//
// Configuration, later sources winning:
//   - defaults: n=100, one worker per CPU, chunk size 64
//   - YAML file given by -config or SIEVE_CONFIG
//   - SIEVE_N, SIEVE_WORKERS, SIEVE_CHUNK, SIEVE_PROGRESS
//   - flags -n, -p, -c, -progress
//
// Example usage:
//
//	primesift -n 30 -p 4 -c 5
//	Primes: 2 3 5 7 11 13 17 19 23 29
//	[30] is not a prime.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/dreamware/primesift/internal/config"
	"github.com/dreamware/primesift/internal/domain"
	"github.com/dreamware/primesift/internal/report"
	"github.com/dreamware/primesift/internal/sieve"
)

// logFatal is a variable to allow mocking log.Fatal in tests
var logFatal = log.Fatalf

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		logFatal("config: %v", err)
		return
	}
	if err := run(cfg, os.Stdout); err != nil {
		logFatal("sieve: %v", err)
	}
}

// loadConfig layers defaults, the YAML file, the environment, and flags,
// then validates the result.
func loadConfig(args []string, getenv func(string) string) (config.Config, error) {
	fs := flag.NewFlagSet("primesift", flag.ContinueOnError)
	path := fs.String("config", getenv(config.EnvFile), "YAML config file")
	n := fs.Int("n", 0, "sieve bound, inclusive (>= 2)")
	p := fs.Int("p", 0, "number of worker goroutines (>= 1)")
	c := fs.Int("c", 0, "positions per chunk (>= 1)")
	progress := fs.Duration("progress", 0, "progress log interval, 0 disables")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	var err error
	if *path != "" {
		if cfg, err = config.LoadFile(*path, cfg); err != nil {
			return cfg, err
		}
	}
	if cfg, err = config.FromEnv(cfg, getenv); err != nil {
		return cfg, err
	}

	// Only flags given on the command line override
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.N = *n
		case "p":
			cfg.Workers = *p
		case "c":
			cfg.ChunkSize = *c
		case "progress":
			cfg.Progress = *progress
		}
	})

	return cfg, cfg.Validate()
}

// run sieves according to cfg and writes the report to out
func run(cfg config.Config, out io.Writer) error {
	d, err := domain.New(cfg.N)
	if err != nil {
		return err
	}

	pool, err := sieve.NewPool(d, sieve.WithWorkers(cfg.Workers), sieve.WithChunkSize(cfg.ChunkSize))
	if err != nil {
		return err
	}

	var monitor *sieve.ProgressMonitor
	if cfg.Progress > 0 {
		monitor = sieve.NewProgressMonitor(cfg.Progress)
		go monitor.Start(context.Background(), pool.Stats)
	}

	res := pool.Run()

	if monitor != nil {
		monitor.Stop()
	}

	log.Printf("run %s: %d passes, %d chunks, %d positions scanned, %d eliminations in %v",
		res.RunID, res.Stats.Passes, res.Stats.Chunks, res.Stats.Scanned,
		res.Stats.Eliminated, res.Elapsed.Round(time.Microsecond))

	return report.Write(out, d)
}
