package scan

import (
	"fmt"

	"github.com/rzbill/trawl/internal/match"
	"github.com/spf13/cobra"
)

// NewPatternsCommand constructs the `patterns` command group.
func NewPatternsCommand() *cobra.Command {
	patternsCmd := &cobra.Command{Use: "patterns", Short: "Pattern set operations"}
	patternsCmd.AddCommand(newPatternsCheckCommand())
	return patternsCmd
}

// newPatternsCheckCommand constructs the `patterns check` subcommand. It
// compiles the supplied predicate set without reading any input, so a bad
// expression can be caught before wiring trawl into a pipeline.
func newPatternsCheckCommand() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Compile the pattern set and report the first failure, if any",
		RunE: func(cmd *cobra.Command, _ []string) error {
			exprs, _ := cmd.Flags().GetStringArray("regexp")
			filters, _ := cmd.Flags().GetStringArray("filter")
			files, _ := cmd.Flags().GetStringArray("patterns-file")
			set, err := match.Compile(match.CompileOptions{
				Exprs:        exprs,
				Filters:      filters,
				PatternFiles: files,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d predicates\n", len(set))
			return nil
		},
	}
	addPatternFlags(checkCmd)
	return checkCmd
}
