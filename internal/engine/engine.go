package engine

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/svlinks/internal/config"
	"github.com/roach88/svlinks/internal/links"
	"github.com/roach88/svlinks/internal/metrics"
	"github.com/roach88/svlinks/internal/sv"
)

// Resolution is the search result for one variant, taken from its start
// breakend.
type Resolution struct {
	VariantID  string
	BreakendID string
	Outcome    links.Outcome
	Iterations int

	// Links is the resolved chain; empty unless Outcome is links.OutcomeResolved.
	Links []links.Link
}

// Report summarizes one engine run.
type Report struct {
	RunID         string
	VariantCount  int
	AssemblyLinks int

	// Resolutions holds one entry per variant, in cache order.
	Resolutions []Resolution

	// Outcomes tallies Resolutions by outcome.
	Outcomes map[links.Outcome]int
}

// Resolved returns the resolutions that produced a chain, in variant order.
func (r *Report) Resolved() []Resolution {
	var resolved []Resolution
	for _, res := range r.Resolutions {
		if res.Outcome == links.OutcomeResolved {
			resolved = append(resolved, res)
		}
	}
	return resolved
}

// Engine runs transitive searches over every variant of a cache.
//
// Thread-safety model:
//   - BuildAssemblyLinks(): mutates the cache index; not concurrent with Run
//   - Run(): one call at a time per engine; fans searches out internally
type Engine struct {
	cache   *sv.Cache
	cfg     config.Links
	workers int
	logger  *slog.Logger
	runIDs  RunIDGenerator
}

// Option allows configuration of engine parameters.
type Option func(*Engine)

// WithWorkers overrides the number of concurrent searches.
// Values below one are treated as one.
func WithWorkers(workers int) Option {
	return func(e *Engine) {
		e.workers = workers
	}
}

// WithLogger sets the logger for run progress and search warnings.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRunIDGenerator sets the source of run IDs.
// Default: UUIDv7Generator.
func WithRunIDGenerator(gen RunIDGenerator) Option {
	return func(e *Engine) {
		e.runIDs = gen
	}
}

// New creates an Engine over cache with the budgets and worker count in cfg.
func New(cache *sv.Cache, cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		cache:   cache,
		cfg:     cfg.Links,
		workers: cfg.Workers,
		logger:  slog.Default(),
		runIDs:  UUIDv7Generator{},
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.workers < 1 {
		e.workers = 1
	}

	return e
}

// BuildAssemblyLinks rebuilds the cache's breakend map and derives the
// assembly links from it.
func (e *Engine) BuildAssemblyLinks() *links.LinkStore {
	e.cache.BuildBreakendMap()

	store := links.BuildAssemblyLinks(e.cache.BreakendMap())
	metrics.AssemblyLinks.Add(float64(store.Len()))

	e.logger.Debug("built assembly links",
		"links", store.Len(),
		"breakends", store.BreakendCount(),
	)

	return store
}

// Run builds the assembly links and searches for a transitive chain from the
// start breakend of every variant. Searches run on up to the configured
// number of workers; the report does not depend on that number.
//
// Returns ctx.Err() if the context is cancelled before all searches finish.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := e.runIDs.Generate()
	logger := e.logger.With("run", runID)

	assemblyLinks := e.BuildAssemblyLinks()

	variants := e.cache.Variants()
	if len(variants) > e.cfg.MaxVariants {
		logger.Warn("too many variants, transitive search disabled",
			"variants", len(variants),
			"max_variants", e.cfg.MaxVariants,
		)
	}

	finder := links.NewTransitiveLinkFinder(e.cache, assemblyLinks,
		links.WithConfig(e.cfg),
		links.WithLogger(logger),
	)

	resolutions := make([]Resolution, len(variants))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, v := range variants {
		if gctx.Err() != nil {
			break
		}

		i, v := i, v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			b := v.Start()
			result := finder.Search(b)

			metrics.TransitiveSearches.WithLabelValues(result.Outcome.String()).Inc()
			metrics.SearchIterations.Observe(float64(result.Iterations))

			resolutions[i] = Resolution{
				VariantID:  v.ID,
				BreakendID: b.VcfID,
				Outcome:    result.Outcome,
				Iterations: result.Iterations,
				Links:      result.Links,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:         runID,
		VariantCount:  len(variants),
		AssemblyLinks: assemblyLinks.Len(),
		Resolutions:   resolutions,
		Outcomes:      make(map[links.Outcome]int),
	}
	for _, res := range resolutions {
		report.Outcomes[res.Outcome]++
	}

	logger.Info("transitive search complete",
		"variants", report.VariantCount,
		"assembly_links", report.AssemblyLinks,
		"resolved", report.Outcomes[links.OutcomeResolved],
	)

	return report, nil
}
