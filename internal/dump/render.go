// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dump

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/lifeos/internal/memory"
	"github.com/pdiddy/lifeos/pkg/types"
)

const stampFmt = "2006-01-02 15:04"

// RenderReport assembles the brain-dump Markdown document. The raw text is
// included verbatim inside a fenced block; input that itself contains a
// closing fence will break the block, a known limitation. Deterministic
// given identical inputs and the same clock value.
func RenderReport(text string, categorized types.CategorizedThoughts, actions []string, now time.Time) string {
	lines := []string{
		fmt.Sprintf("# Brain Dump: %s", now.Format(stampFmt)),
		"",
		"## Raw Thoughts",
		"",
		"```",
		text,
		"```",
		"",
		"## Categorized",
		"",
	}

	for _, category := range types.Categories {
		items := categorized[category]
		if len(items) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("### %s", category.Title()))
		for _, item := range items {
			lines = append(lines, fmt.Sprintf("- %s", item))
		}
		lines = append(lines, "")
	}

	if len(actions) > 0 {
		lines = append(lines, "## Action Items", "")
		for _, action := range actions {
			lines = append(lines, fmt.Sprintf("- [ ] %s", action))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"---",
		"",
		fmt.Sprintf("*Processed: %s*", now.Format(stampFmt)),
	)

	return strings.Join(lines, "\n")
}

// Result holds the outcome of one dump run.
type Result struct {
	// Path is the written file, empty when no file was produced.
	Path        string
	Categorized types.CategorizedThoughts
	Actions     []string
}

// Process categorizes text, extracts action items, renders the report, and
// writes it under the memory tree. Input that is empty after trimming writes
// nothing: a notice is printed and the returned Result has an empty Path.
func Process(text string, dir memory.Dir, now time.Time, w io.Writer) (Result, error) {
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(w, "No content provided.")
		return Result{}, nil
	}

	categorized := Categorize(text)
	actions := ExtractActions(text)

	path := dir.DumpPath(now)
	if err := memory.WriteEntry(path, RenderReport(text, categorized, actions, now)); err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Brain dump saved to: %s\n", path)
	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "  - Total thoughts: %d\n", categorized.Total())
	for _, category := range types.Categories {
		if n := len(categorized[category]); n > 0 {
			fmt.Fprintf(w, "  - %s: %d\n", category.Title(), n)
		}
	}
	if len(actions) > 0 {
		fmt.Fprintf(w, "  - Action items: %d\n", len(actions))
	}

	return Result{Path: path, Categorized: categorized, Actions: actions}, nil
}
