package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/featuredoc/pkg/featuredoc"
	"github.com/matzehuels/featuredoc/pkg/manifest"
	"github.com/matzehuels/featuredoc/pkg/observability"
)

// Runner executes the pipeline. It holds no per-run state, so one Runner
// may serve concurrent runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Run processes paths concurrently and returns one result per path in the
// same order. Per-manifest failures are reported in Result.Err; the
// returned error is non-nil only for invalid options or cancellation.
func (r *Runner) Run(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	results := make([]*Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.Generate(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Generate runs the pipeline for a single path. opts must already be
// validated.
func (r *Runner) Generate(ctx context.Context, path string, opts Options) *Result {
	res := &Result{Path: path}
	logger := r.Logger.With("path", path)

	m, err := manifest.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Manifest = m
	if m.Fallback {
		logger.Debug("using pre-publish manifest", "file", m.Path)
	}

	engine, cfg, err := EngineOptions(m.Dir(), opts)
	if err != nil {
		res.Err = err
		return res
	}
	if cfg != "" {
		logger.Debug("loaded options", "config", cfg)
	}

	hooks := observability.Pipeline()

	hooks.OnParseStart(ctx, m.Path)
	start := time.Now()
	doc, err := featuredoc.Parse(m.Text, engine)
	res.Stats.ParseTime = time.Since(start)
	if doc != nil {
		res.Stats.ItemCount = len(doc.Items)
	}
	hooks.OnParseComplete(ctx, m.Path, res.Stats.ItemCount, res.Stats.ParseTime, err)
	if err != nil {
		res.Err = err
		return res
	}
	res.Document = doc
	logger.Debug("parsed manifest",
		"items", res.Stats.ItemCount,
		"undocumented", len(doc.Undocumented()),
		"duration", res.Stats.ParseTime)

	hooks.OnRenderStart(ctx, m.Path, opts.Format)
	start = time.Now()
	out, err := Render(doc, m.Path, opts.Format)
	res.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, m.Path, opts.Format, res.Stats.RenderTime, err)
	if err != nil {
		res.Err = err
		return res
	}
	res.Output = out
	return res
}
