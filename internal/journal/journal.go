// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal runs the daily reflection prompts and renders the
// resulting journal entry.
package journal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/lifeos/internal/memory"
	"github.com/pdiddy/lifeos/internal/prompt"
	"github.com/pdiddy/lifeos/pkg/types"
)

// Response is one answered reflection prompt.
type Response struct {
	Prompt string
	Answer string
}

// Entry holds everything collected during a journal run.
type Entry struct {
	Mood      string
	Energy    string
	Responses []Response
}

// Collect runs the mood check-in followed by the configured reflection
// prompts. Blank answers to reflection prompts are skipped; mood and energy
// default to 5.
func Collect(p *prompt.Prompter, prompts []string) Entry {
	e := Entry{
		Mood:   p.AskDefault("Mood (1-10): ", "5"),
		Energy: p.AskDefault("Energy level (1-10): ", "5"),
	}
	for _, q := range prompts {
		answer := p.Ask(fmt.Sprintf("\n%s\n> ", q))
		if answer == "" {
			continue
		}
		e.Responses = append(e.Responses, Response{Prompt: q, Answer: answer})
	}
	return e
}

// Render produces the journal entry Markdown for the given day.
func Render(e Entry, now time.Time) string {
	lines := []string{
		fmt.Sprintf("# Daily Journal: %s", now.Format("Monday, January 02, 2006")),
		"",
		fmt.Sprintf("**Date:** %s", now.Format("2006-01-02")),
		fmt.Sprintf("**Time:** %s", now.Format("15:04")),
		"",
	}

	if e.Mood != "" {
		lines = append(lines, fmt.Sprintf("**Mood:** %s/10", e.Mood), "")
	}
	if e.Energy != "" {
		lines = append(lines, fmt.Sprintf("**Energy:** %s/10", e.Energy), "")
	}

	lines = append(lines, "---", "")

	for _, r := range e.Responses {
		lines = append(lines,
			fmt.Sprintf("## %s", r.Prompt),
			"",
			r.Answer,
			"",
		)
	}

	return strings.Join(lines, "\n")
}

// Run collects an entry interactively, renders it, and writes it to the
// memory tree as journal/YYYY-MM-DD.md. It returns the written path.
func Run(p *prompt.Prompter, cfg types.DailyConfig, dir memory.Dir, now time.Time, w io.Writer) (string, error) {
	fmt.Fprintln(w, "Daily Journal - Evening Reflection")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintln(w, "\nQuick check-in:")

	entry := Collect(p, cfg.Prompts)

	path := dir.JournalPath(now)
	if err := memory.WriteEntry(path, Render(entry, now)); err != nil {
		return "", err
	}

	fmt.Fprintf(w, "\nJournal entry saved to: %s\n", path)
	return path, nil
}
