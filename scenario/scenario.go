// Package scenario bundles curated benchmark maps for every search
// algorithm, pairing a best-case and a worst-case board per algorithm,
// and a timed runner that turns one execution into a comparable report.
package scenario

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/search"
)

// Algorithm runs one search over a grid. All search package entry points
// satisfy it once depth arguments are bound.
type Algorithm func(g search.Grid, opts ...search.Option) (*search.Result, error)

// Scenario is one named board wired to one algorithm.
type Scenario struct {
	Algorithm string
	Name      string
	Grid      *grid.Grid
	Run       Algorithm
}

// Report captures the outcome of one scenario run.
type Report struct {
	Algorithm string
	Scenario  string
	Found     bool
	PathLen   int
	Cost      float64
	Expanded  int
	Duration  time.Duration
}

// Runner executes scenarios and logs each report.
type Runner struct {
	log *zap.Logger
}

// NewRunner builds a runner. A nil logger disables logging.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{log: log}
}

// Run executes one scenario, timing only the search itself. Extra options
// (an observer, typically a renderer) are forwarded to the algorithm.
func (r *Runner) Run(s Scenario, opts ...search.Option) (Report, error) {
	begin := time.Now()
	res, err := s.Run(s.Grid, opts...)
	elapsed := time.Since(begin)

	if err != nil {
		r.log.Error("scenario failed",
			zap.String("algorithm", s.Algorithm),
			zap.String("scenario", s.Name),
			zap.Error(err),
		)

		return Report{}, fmt.Errorf("scenario %s/%s: %w", s.Algorithm, s.Name, err)
	}

	rep := Report{
		Algorithm: s.Algorithm,
		Scenario:  s.Name,
		Found:     res.Found,
		PathLen:   len(res.Path),
		Cost:      res.Cost,
		Expanded:  res.Expanded,
		Duration:  elapsed,
	}
	r.log.Info("scenario done",
		zap.String("algorithm", rep.Algorithm),
		zap.String("scenario", rep.Scenario),
		zap.Bool("found", rep.Found),
		zap.Int("path_len", rep.PathLen),
		zap.Float64("cost", rep.Cost),
		zap.Int("expanded", rep.Expanded),
		zap.Duration("duration", rep.Duration),
	)

	return rep, nil
}

// RunAll executes every scenario in order and returns all reports.
// The first scenario error aborts the sweep.
func (r *Runner) RunAll(scenarios []Scenario, opts ...search.Option) ([]Report, error) {
	reports := make([]Report, 0, len(scenarios))
	for _, s := range scenarios {
		rep, err := r.Run(s, opts...)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}

// WriteSummary prints an aligned table of reports.
func WriteSummary(w io.Writer, reports []Report) {
	fmt.Fprintf(w, "%-15s %-12s %-6s %-6s %-9s %s\n",
		"ALGORITHM", "SCENARIO", "FOUND", "PATH", "EXPANDED", "DURATION")
	for _, rep := range reports {
		found := "no"
		if rep.Found {
			found = "yes"
		}
		fmt.Fprintf(w, "%-15s %-12s %-6s %-6d %-9d %s\n",
			rep.Algorithm, rep.Scenario, found, rep.PathLen, rep.Expanded, rep.Duration)
	}
}
