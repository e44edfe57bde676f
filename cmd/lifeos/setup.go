package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lifeos/internal/configfile"
	"github.com/pdiddy/lifeos/internal/prompt"
	"github.com/pdiddy/lifeos/internal/weekly"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the weekly check-in metrics and prompts",
	Long: `Setup walks through an interactive wizard that defines the weekly
check-in: which metrics to track (name, prompt, type) and which reflection
prompts to answer. The result is written to the lifeos config file;
sections of the file the wizard does not own are preserved.`,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfgPath := viper.ConfigFileUsed()
	if cfgPath == "" {
		var err error
		cfgPath, err = configfile.DefaultPath()
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	p := prompt.New(cmd.InOrStdin(), out)

	return weekly.RunSetup(p, cfgPath, out)
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
