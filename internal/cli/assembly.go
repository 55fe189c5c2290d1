package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/svlinks/internal/config"
	"github.com/roach88/svlinks/internal/engine"
	"github.com/roach88/svlinks/internal/harness"
)

// AssemblyLink is one assembly link in assembly output.
type AssemblyLink struct {
	ID          string `json:"id"`
	First       string `json:"first"`
	Second      string `json:"second"`
	MinDistance int    `json:"min_distance"`
	MaxDistance int    `json:"max_distance"`
}

// AssemblyResult is the output of the assembly command.
type AssemblyResult struct {
	Links []AssemblyLink `json:"links"`
}

// WriteText renders one tab-separated line per link.
func (r AssemblyResult) WriteText(w io.Writer) error {
	if len(r.Links) == 0 {
		_, err := fmt.Fprintln(w, "No assembly links.")
		return err
	}
	for _, l := range r.Links {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			l.ID, l.First, l.Second, l.MinDistance, l.MaxDistance); err != nil {
			return err
		}
	}
	return nil
}

// NewAssemblyCommand creates the assembly command.
func NewAssemblyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assembly <variants.yaml>",
		Short: "List assembly links",
		Long: `Load variants and print the links between breakends that share a
local assembly, one per line: ID, breakends and distance bounds.

Example:
  svlinks assembly ./variants.yaml
  svlinks assembly --format json ./variants.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssembly(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runAssembly(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	variants, err := harness.LoadVariants(path)
	if err != nil {
		return formatter.Fail(ExitCommandError, CodeLoad, "failed to load variants", err)
	}

	eng := engine.New(variants.BuildCache(), config.Default(), engine.WithLogger(slog.Default()))
	store := eng.BuildAssemblyLinks()

	result := AssemblyResult{Links: make([]AssemblyLink, 0, store.Len())}
	for _, l := range store.All() {
		result.Links = append(result.Links, AssemblyLink{
			ID:          l.ID,
			First:       l.First().VcfID,
			Second:      l.Second().VcfID,
			MinDistance: l.MinDistance,
			MaxDistance: l.MaxDistance,
		})
	}

	return formatter.Success("", result)
}
