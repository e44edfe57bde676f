// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lifeos CLI, a set of personal
// life-management tools: brain-dump categorization, daily journaling, the
// weekly check-in dashboard and its setup wizard, and research notes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lifeos/internal/memory"
	"github.com/pdiddy/lifeos/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the lifeos CLI.
var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "Personal life-management notes from the command line",
	Long: `lifeos turns quick interactive sessions into organized Markdown notes
under a single memory directory: brain dumps are categorized, journal and
weekly check-in prompts become dated entries, and research findings become
structured reports.

Each tool is a subcommand: dump, journal, weekly, setup, and research.
Configuration lives in a YAML file managed by the setup wizard.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lifeos.yaml or ~/.config/lifeos/config.yaml)")
	rootCmd.PersistentFlags().String("memory-dir", "", "base directory for generated notes (default: ~/.lifeos/memory)")
	viper.BindPFlag("memory_dir", rootCmd.PersistentFlags().Lookup("memory-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lifeos")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lifeos"))
		}
	}

	viper.SetEnvPrefix("LIFEOS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig unmarshals the viper configuration, applies built-in defaults,
// and resolves the memory tree location.
func loadConfig() (types.Config, memory.Dir, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, memory.Dir{}, fmt.Errorf("loading configuration: %w", err)
	}
	cfg.ApplyDefaults()

	base := cfg.MemoryDir
	if base == "" {
		var err error
		base, err = memory.DefaultBase()
		if err != nil {
			return types.Config{}, memory.Dir{}, err
		}
	}
	return cfg, memory.New(base), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
