package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lifeos/internal/dump"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Convert unstructured thoughts into an organized note",
	Long: `Dump reads free text from a file argument or standard input, splits it
into thought fragments, sorts each fragment into a category (ideas,
questions, projects, resources, random), pulls out action items, and saves
the organized note under the memory tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	_, dir, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	var text string
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading input file: %w", err)
		}
		text = string(data)
	} else {
		fmt.Fprintln(out, "Brain Dump Processor")
		fmt.Fprintln(out, strings.Repeat("=", 40))
		fmt.Fprintln(out, "Paste or type your thoughts. Press Ctrl+D when done.")
		fmt.Fprintln(out, strings.Repeat("-", 40))

		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
		text = string(data)
	}

	_, err = dump.Process(text, dir, time.Now(), out)
	return err
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
