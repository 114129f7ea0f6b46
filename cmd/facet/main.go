package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facet-dev/facet/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐┌─┐┌─┐┌┬┐
  ├┤ ├─┤│  ├┤  │
  └  ┴ ┴└─┘└─┘ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "facet",
		Short: "Tooling for the Facet element DSL",
		Long: `Facet is a declarative element-construction layer for host UI trees.

The facet CLI maintains the static tag table the DSL resolves lower-case
tag names against:

  • Regenerate the table from a host API dump
  • Inspect the embedded table and resolve individual names`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		genCmd(),
		tagsCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var ferr *errors.FacetError
		if stderrors.As(err, &ferr) {
			fmt.Fprint(os.Stderr, ferr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the Facet ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
