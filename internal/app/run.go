package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlpath/bellmanford"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/floydwarshall"
	"github.com/katalvlaran/lvlpath/internal/config"
	"github.com/katalvlaran/lvlpath/internal/logging"
	"github.com/katalvlaran/lvlpath/pathio"
)

// job is one engine run: compute returns a writer for the result file.
type job struct {
	engine  string
	path    string
	compute func() (func(io.Writer) error, error)
}

// Run reads the configured input and runs every configured engine over it.
func (a *App) Run(ctx context.Context) error {
	ctx = logging.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	start := time.Now()
	p, err := pathio.ReadProblemFile(a.config.Input, core.WithLookup(a.config.LookupMode()))
	if err != nil {
		return fmt.Errorf("failed to read problem: %w", err)
	}
	a.logger.Info("Problem loaded.",
		"input", a.config.Input,
		"vertices", humanize.Comma(int64(p.NumVertices)),
		"edges", humanize.Comma(int64(p.NumEdges)),
		"source", p.Source,
		"lookup", p.Graph.Lookup().String(),
		"elapsed", time.Since(start))

	if dir := a.config.Output.Dir; dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jobs := make([]job, 0, len(a.config.Engines))
	for _, engine := range a.config.Engines {
		jobs = append(jobs, a.newJob(engine, p))
	}

	g, ctx := errgroup.WithContext(ctx)
	if !a.config.Concurrent {
		g.SetLimit(1)
	}
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			return runJob(ctx, j)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	a.logger.Info("All engines finished.", "engines", len(jobs), "elapsed", time.Since(start))
	a.logger.Debug("App.Run method finished.")
	return nil
}

// newJob binds engine to p. engine has passed config validation.
func (a *App) newJob(engine string, p *pathio.Problem) job {
	j := job{engine: engine, path: a.config.OutputPath(engine)}

	switch engine {
	case config.BellmanFord:
		j.compute = func() (func(io.Writer) error, error) {
			res, err := bellmanford.BellmanFord(p.Graph, p.Source)
			if err != nil {
				return nil, err
			}
			return func(w io.Writer) error { return pathio.WriteSingleSource(w, res) }, nil
		}
	case config.FloydWarshall:
		var opts []floydwarshall.Option
		if a.config.Checks.FloydWarshallNegativeCycles {
			opts = append(opts, floydwarshall.WithNegativeCycleCheck())
		}
		j.compute = func() (func(io.Writer) error, error) {
			m, err := floydwarshall.FloydWarshall(p.Graph, opts...)
			if err != nil {
				return nil, err
			}
			return func(w io.Writer) error { return pathio.WriteAllPairs(w, m) }, nil
		}
	case config.Dijkstra:
		opts := []dijkstra.Option{dijkstra.Source(p.Source)}
		if a.config.Checks.DijkstraNegativeWeights {
			opts = append(opts, dijkstra.WithNegativeWeightCheck())
		}
		j.compute = func() (func(io.Writer) error, error) {
			res, err := dijkstra.Dijkstra(p.Graph, opts...)
			if err != nil {
				return nil, err
			}
			return func(w io.Writer) error { return pathio.WriteSingleSource(w, res) }, nil
		}
	}

	return j
}

// runJob computes one engine's result and writes it to its output file.
// A job whose context is already cancelled does nothing.
func runJob(ctx context.Context, j job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := logging.FromContext(ctx).With("engine", j.engine)
	logger.Debug("Engine started.")

	start := time.Now()
	write, err := j.compute()
	if err != nil {
		logger.Error("Engine failed.", "error", err)
		return fmt.Errorf("%s: %w", j.engine, err)
	}
	computed := time.Since(start)

	n, err := pathio.WriteFile(j.path, write)
	if err != nil {
		return fmt.Errorf("%s: failed to write result: %w", j.engine, err)
	}
	logger.Info("Result written.",
		"output", j.path,
		"size", humanize.Bytes(uint64(n)),
		"compute", computed,
		"elapsed", time.Since(start))

	return nil
}
