package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facet-dev/facet/internal/apidump"
	"github.com/facet-dev/facet/internal/errors"
	"github.com/facet-dev/facet/internal/tablegen"
)

// defaultDumpURL is where the host platform publishes its API dump.
const defaultDumpURL = "https://facet.dev/host/api-dump.json"

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <type>",
		Short: "Generate code",
		Long: `Generate code from the host platform's API dump.

Types:
  tags    Regenerate pkg/tags/table_gen.go from an API dump

Examples:
  facet gen tags                            # Fetch the published dump
  facet gen tags --dump api-dump.json       # Use a local dump file
  facet gen tags --output /tmp/table.go     # Write somewhere else`,
	}

	cmd.AddCommand(genTagsCmd())

	return cmd
}

func genTagsCmd() *cobra.Command {
	var dump string
	var output string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Regenerate the tag table from an API dump",
		Long: `Fetch or read a host API dump and regenerate the tag table.

The dump's creatable classes (those tagged neither NotCreatable nor
Service) become table entries mapping their lower-cased name to the
canonical class name.

The output is deterministic - running it multiple times against the same
dump produces identical bytes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenTags(cmd, dump, output)
		},
	}

	cmd.Flags().StringVarP(&dump, "dump", "d", defaultDumpURL, "API dump URL or file path")
	cmd.Flags().StringVarP(&output, "output", "o", "pkg/tags/table_gen.go", "Output file")

	return cmd
}

func runGenTags(cmd *cobra.Command, source, output string) error {
	var (
		dump *apidump.Dump
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		info("Fetching %s...", source)
		dump, err = apidump.Fetch(cmd.Context(), source)
	} else {
		info("Reading %s...", source)
		dump, err = apidump.ParseFile(source)
	}
	if err != nil {
		return err
	}

	src, err := tablegen.Generate(dump)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, src, 0644); err != nil {
		return errors.New("E060").Wrap(err)
	}

	success("Generated %s (%d classes, dump version %s)",
		output, len(dump.CreatableClasses()), dump.Version)
	return nil
}
