// Command gridnav runs grid search algorithms from the terminal: either a
// single algorithm on a randomly generated map (optionally animated as
// ASCII frames), or the curated best/worst scenario suite.
//
// Usage:
//
//	gridnav -algorithm bfs -rows 15 -cols 15 -block-rate 0.2 -animate
//	gridnav -algorithm dls -depth 15
//	gridnav -algorithm suite
//
// Settings may also come from a viper config file (-config), with
// command-line flags taking precedence.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/render"
	"github.com/katalvlaran/gridnav/scenario"
	"github.com/katalvlaran/gridnav/search"
)

func main() {
	var (
		algorithm  = flag.String("algorithm", "bfs", "bfs, dfs, ucs, dls, iddfs, bidirectional or suite")
		rows       = flag.Int("rows", 15, "grid height")
		cols       = flag.Int("cols", 15, "grid width")
		blockRate  = flag.Float64("block-rate", 0.2, "obstacle probability per cell, in [0,1)")
		seed       = flag.Int64("seed", 0, "map generation seed (0 uses the clock)")
		depth      = flag.Int("depth", 15, "depth cap for dls")
		limit      = flag.Int("limit", 25, "budget ceiling for iddfs")
		animate    = flag.Bool("animate", false, "draw one ASCII frame per expansion")
		frameDelay = flag.Duration("delay", 50*time.Millisecond, "pause between animation frames")
		configPath = flag.String("config", "", "optional viper config file")
		verbose    = flag.Bool("verbose", false, "development logging")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if *algorithm == "suite" {
		if err := runSuite(log); err != nil {
			log.Error("suite failed", zap.Error(err))
			os.Exit(1)
		}

		return
	}

	if err := runOne(log, cfg, *algorithm, *rows, *cols, *blockRate, *seed,
		*depth, *limit, *animate, *frameDelay); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

// loadConfig reads the optional config file. Flag values override whatever
// the file sets, so the file only supplies defaults.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// applyConfig fills any setting the flag left at its default from the
// config file.
func applyConfig(v *viper.Viper, set map[string]bool,
	rows, cols, depth, limit *int, blockRate *float64, seed *int64) {
	if v.IsSet("rows") && !set["rows"] {
		*rows = v.GetInt("rows")
	}
	if v.IsSet("cols") && !set["cols"] {
		*cols = v.GetInt("cols")
	}
	if v.IsSet("block_rate") && !set["block-rate"] {
		*blockRate = v.GetFloat64("block_rate")
	}
	if v.IsSet("seed") && !set["seed"] {
		*seed = v.GetInt64("seed")
	}
	if v.IsSet("depth") && !set["depth"] {
		*depth = v.GetInt("depth")
	}
	if v.IsSet("limit") && !set["limit"] {
		*limit = v.GetInt("limit")
	}
}

func runOne(log *zap.Logger, cfg *viper.Viper, name string,
	rows, cols int, blockRate float64, seed int64,
	depth, limit int, animate bool, delay time.Duration) error {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	applyConfig(cfg, set, &rows, &cols, &depth, &limit, &blockRate, &seed)

	run, err := pickAlgorithm(name, depth, limit)
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := grid.Generate(rows, cols, blockRate, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("generate map: %w", err)
	}
	log.Info("map ready",
		zap.Int("rows", rows), zap.Int("cols", cols),
		zap.Float64("block_rate", blockRate), zap.Int64("seed", seed),
	)

	var opts []search.Option
	if animate {
		r := render.NewASCII(os.Stdout, g,
			render.WithHeader(name),
			render.WithDelay(delay),
		)
		opts = append(opts, search.WithObserver(r.Observe))
	} else {
		fmt.Println(g)
	}

	begin := time.Now()
	res, err := run(g, opts...)
	if err != nil {
		return err
	}
	log.Info("search finished",
		zap.String("algorithm", name),
		zap.Bool("found", res.Found),
		zap.Int("path_len", len(res.Path)),
		zap.Float64("cost", res.Cost),
		zap.Int("expanded", res.Expanded),
		zap.Duration("duration", time.Since(begin)),
	)
	if !res.Found {
		fmt.Println("no path")

		return nil
	}
	fmt.Printf("path %v (cost %.3f, %d expanded)\n", res.Path, res.Cost, res.Expanded)

	return nil
}

func pickAlgorithm(name string, depth, limit int) (scenario.Algorithm, error) {
	switch name {
	case "bfs":
		return search.BFS, nil
	case "dfs":
		return search.DFS, nil
	case "ucs":
		return search.UCS, nil
	case "dls":
		return func(g search.Grid, opts ...search.Option) (*search.Result, error) {
			return search.DLS(g, depth, opts...)
		}, nil
	case "iddfs":
		return func(g search.Grid, opts ...search.Option) (*search.Result, error) {
			return search.IDDFS(g, limit, opts...)
		}, nil
	case "bidirectional":
		return search.Bidirectional, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}

func runSuite(log *zap.Logger) error {
	runner := scenario.NewRunner(log)
	reports, err := runner.RunAll(scenario.Suite())
	if err != nil {
		return err
	}
	scenario.WriteSummary(os.Stdout, reports)

	return nil
}
