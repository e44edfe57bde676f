package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lifeos/internal/prompt"
	"github.com/pdiddy/lifeos/internal/weekly"
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Generate the weekly check-in dashboard",
	Long: `Weekly collects the configured metrics interactively, renders the
reflection dashboard for the current week, and saves it to the memory tree
as weekly/YYYY-MM-DD.md. When last week's check-in exists it is referenced
from the Trends section. Run "lifeos setup" first to configure metrics and
reflection prompts.`,
	RunE: runWeekly,
}

func runWeekly(cmd *cobra.Command, args []string) error {
	cfg, dir, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := prompt.New(cmd.InOrStdin(), out)

	_, err = weekly.Run(p, cfg.Weekly, dir, time.Now(), out)
	return err
}

func init() {
	rootCmd.AddCommand(weeklyCmd)
}
