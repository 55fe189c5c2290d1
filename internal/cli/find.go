package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/svlinks/internal/config"
	"github.com/roach88/svlinks/internal/engine"
	"github.com/roach88/svlinks/internal/harness"
	"github.com/roach88/svlinks/internal/links"
	"github.com/roach88/svlinks/internal/store"
)

// FindOptions holds flags for the find command.
type FindOptions struct {
	*RootOptions
	Database string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs engine.RunIDGenerator
}

// FindResolution is one searched breakend in find output.
type FindResolution struct {
	Variant    string   `json:"variant"`
	Breakend   string   `json:"breakend"`
	Outcome    string   `json:"outcome"`
	Iterations int      `json:"iterations"`
	Links      []string `json:"links,omitempty"`
	ChainID    string   `json:"chain_id,omitempty"`
}

// FindResult is the output of the find command.
type FindResult struct {
	RunID         string           `json:"run_id"`
	Variants      int              `json:"variants"`
	AssemblyLinks int              `json:"assembly_links"`
	Outcomes      map[string]int   `json:"outcomes"`
	Resolutions   []FindResolution `json:"resolutions"`
}

// WriteText renders one line per breakend followed by an outcome summary.
func (r FindResult) WriteText(w io.Writer) error {
	for _, res := range r.Resolutions {
		chain := "-"
		if len(res.Links) > 0 {
			chain = strings.Join(res.Links, ",")
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", res.Breakend, res.Outcome, chain); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(r.Outcomes))
	for name := range r.Outcomes {
		names = append(names, name)
	}
	sort.Strings(names)

	counts := make([]string, len(names))
	for i, name := range names {
		counts[i] = fmt.Sprintf("%s=%d", name, r.Outcomes[name])
	}

	_, err := fmt.Fprintf(w, "\nRun %s: %d variants, %d assembly links (%s)\n",
		r.RunID, r.Variants, r.AssemblyLinks, strings.Join(counts, " "))
	return err
}

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	return newFindCommand(&FindOptions{RootOptions: rootOpts})
}

func newFindCommand(opts *FindOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <variants.yaml>",
		Short: "Find transitive links for every variant",
		Long: `Load variants, build assembly links and search for a chain from the
start breakend of every variant.

The input uses the scenario file format; only its variants are read.
Search settings come from defaults, then --config, then flags.

Example:
  svlinks find ./variants.yaml
  svlinks find --db ./svlinks.db --workers 8 ./variants.yaml
  svlinks find --max-iterations 100 --format json ./variants.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database to record the run in")
	config.AddFlags(cmd.Flags())

	return cmd
}

func runFind(opts *FindOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	variants, err := harness.LoadVariants(path)
	if err != nil {
		return formatter.Fail(ExitCommandError, CodeLoad, "failed to load variants", err)
	}

	cfg, err := config.Load(opts.ConfigPath, cmd.Flags())
	if err != nil {
		return formatter.Fail(ExitCommandError, CodeConfig, "failed to load config", err)
	}

	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = engine.UUIDv7Generator{}
	}

	eng := engine.New(variants.BuildCache(), cfg,
		engine.WithLogger(slog.Default()),
		engine.WithRunIDGenerator(runIDs),
	)

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("searching", "file", path, "variants", len(variants.Variants), "workers", cfg.Workers)
	report, err := eng.Run(ctx)
	if err != nil {
		return formatter.Fail(ExitCommandError, CodeRun, "search failed", err)
	}

	result, err := newFindResult(report)
	if err != nil {
		return formatter.Fail(ExitCommandError, CodeRun, "failed to identify chains", err)
	}

	if opts.Database != "" {
		if err := recordRun(ctx, opts.Database, report); err != nil {
			return formatter.Fail(ExitCommandError, CodeStore, "failed to record run", err)
		}
	}

	return formatter.Success(report.RunID, result)
}

func newFindResult(report *engine.Report) (FindResult, error) {
	result := FindResult{
		RunID:         report.RunID,
		Variants:      report.VariantCount,
		AssemblyLinks: report.AssemblyLinks,
		Outcomes:      make(map[string]int, len(report.Outcomes)),
		Resolutions:   make([]FindResolution, 0, len(report.Resolutions)),
	}

	for outcome, n := range report.Outcomes {
		result.Outcomes[outcome.String()] = n
	}

	for _, res := range report.Resolutions {
		fr := FindResolution{
			Variant:    res.VariantID,
			Breakend:   res.BreakendID,
			Outcome:    res.Outcome.String(),
			Iterations: res.Iterations,
		}
		if len(res.Links) > 0 {
			chainID, err := store.ChainID(res.Links)
			if err != nil {
				return FindResult{}, err
			}
			fr.Links = links.LinkIDs(res.Links)
			fr.ChainID = chainID
		}
		result.Resolutions = append(result.Resolutions, fr)
	}

	return result, nil
}

func recordRun(ctx context.Context, path string, report *engine.Report) error {
	slog.Info("opening database", "path", path)
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	if err := st.WriteRun(ctx, report); err != nil {
		return err
	}
	slog.Info("run recorded", "run", report.RunID, "resolved", report.Outcomes[links.OutcomeResolved])
	return nil
}
