package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lifeos/internal/journal"
	"github.com/pdiddy/lifeos/internal/prompt"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Run the daily journal reflection prompts",
	Long: `Journal walks through a quick mood and energy check-in followed by the
configured reflection prompts, then saves the entry to the memory tree as
journal/YYYY-MM-DD.md. Prompts come from the daily section of the config
file, with sensible defaults when none are configured.`,
	RunE: runJournal,
}

func runJournal(cmd *cobra.Command, args []string) error {
	cfg, dir, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := prompt.New(cmd.InOrStdin(), out)

	_, err = journal.Run(p, cfg.Daily, dir, time.Now(), out)
	return err
}

func init() {
	rootCmd.AddCommand(journalCmd)
}
