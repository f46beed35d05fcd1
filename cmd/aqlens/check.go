package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinothraj/aqlens/internal/config"
	"github.com/vinothraj/aqlens/internal/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a data source is reachable",
	Long: `Verify the selected data source is reachable without loading it fully:
a local file must exist and parse a header, a Google Sheet's export
endpoint must answer, and a ClickHouse server must accept a ping.

Useful before pointing summarize at a long-running query.`,
	RunE: runCheck,
}

func init() {
	addSourceFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	src, err := buildSource(cmd, cfg)
	if err != nil {
		return err
	}

	logger.Info("check: probing %s", src.Name())
	if err := src.Check(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s is reachable\n", src.Name())
	return nil
}
