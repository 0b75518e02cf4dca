package scan

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs a root Cobra command for the trawl CLI.
// It registers the scan and patterns command groups.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "trawl",
		Short: "Trawl filters line streams with match context",
	}
	root.AddCommand(NewScanCommand())
	root.AddCommand(NewPatternsCommand())
	return root
}
