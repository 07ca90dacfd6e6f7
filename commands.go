package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=..."
var version = "dev"

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels in play order",
	RunE:  runLevels,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "tilerunner", version)
	},
}

func runLevels(cmd *cobra.Command, args []string) error {
	logger, err := setup()
	if err != nil {
		return err
	}
	loader, err := newLevelLoader(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, name := range loader.Names() {
		fmt.Fprintf(out, "  %2d  %s\n", i+1, name)
	}
	return nil
}
