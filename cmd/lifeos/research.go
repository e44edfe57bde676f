package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lifeos/internal/prompt"
	"github.com/pdiddy/lifeos/internal/research"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Turn research findings into a Markdown report",
	Long: `Research generates a content-research report in the memory tree as
research/YYYY-MM-DD-findings.md. Findings are entered manually through a
quick prompt flow, or loaded from a YAML file via --from. There is no
network integration: live sources feed in through the findings file.`,
	RunE: runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	cfg, dir, err := loadConfig()
	if err != nil {
		return err
	}

	findingsPath, _ := cmd.Flags().GetString("from")

	out := cmd.OutOrStdout()
	p := prompt.New(cmd.InOrStdin(), out)

	_, err = research.Run(p, cfg.Research, findingsPath, dir, time.Now(), out)
	return err
}

func init() {
	researchCmd.Flags().String("from", "", "findings YAML file to render instead of manual entry")

	rootCmd.AddCommand(researchCmd)
}
