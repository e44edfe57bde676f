// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research renders content-research findings into Markdown reports.
// Findings come from manual quick-entry or from a YAML findings file; there
// is no network integration.
package research

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lifeos/internal/memory"
	"github.com/pdiddy/lifeos/internal/prompt"
	"github.com/pdiddy/lifeos/pkg/types"
)

// LoadFindings reads a findings YAML file.
func LoadFindings(path string) (*types.Findings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading findings file: %w", err)
	}
	var f types.Findings
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing findings file: %w", err)
	}
	return &f, nil
}

// Collect runs the interactive quick-entry flow. A blank trend title skips
// the session and returns nil.
func Collect(p *prompt.Prompter, now time.Time) *types.Findings {
	title := p.Ask("Trend title: ")
	if title == "" {
		return nil
	}
	return &types.Findings{
		Summary: fmt.Sprintf("Research completed on %s", now.Format("2006-01-02")),
		Trends: []types.Trend{{
			Title:   title,
			Summary: p.Ask("Summary: "),
			Source:  p.Ask("Source: "),
		}},
	}
}

// Render produces the research report Markdown.
func Render(f types.Findings, now time.Time) string {
	summary := f.Summary
	if summary == "" {
		summary = "_Research completed_"
	}

	lines := []string{
		fmt.Sprintf("# Content Research: %s", now.Format("Monday, January 02, 2006")),
		"",
		"## Research Summary",
		"",
		summary,
		"",
	}

	if len(f.Trends) > 0 {
		lines = append(lines, "## Key Trends", "")
		for _, trend := range f.Trends {
			source := trend.Source
			if source == "" {
				source = "Unknown"
			}
			lines = append(lines,
				fmt.Sprintf("### %s", trend.Title),
				"",
				trend.Summary,
				"",
				fmt.Sprintf("**Source:** %s", source),
				fmt.Sprintf("**URL:** %s", trend.URL),
				"",
			)
		}
	}

	if len(f.Ideas) > 0 {
		lines = append(lines, "## Content Ideas", "")
		for i, idea := range f.Ideas {
			lines = append(lines,
				fmt.Sprintf("### Idea %d: %s", i+1, idea.Title),
				"",
				idea.Description,
				"",
			)
		}
	}

	if len(f.Resources) > 0 {
		lines = append(lines, "## Resources", "")
		for _, r := range f.Resources {
			lines = append(lines, fmt.Sprintf("- [%s](%s)", r.Title, r.URL))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"---",
		"",
		fmt.Sprintf("*Generated: %s*", now.Format("2006-01-02 15:04")),
	)

	return strings.Join(lines, "\n")
}

// Run generates a research report. When findingsPath is set the findings
// are loaded from that YAML file; otherwise the quick-entry flow runs and a
// blank entry skips the session without writing. Returns the written path,
// empty when skipped.
func Run(p *prompt.Prompter, cfg types.ResearchConfig, findingsPath string, dir memory.Dir, now time.Time, w io.Writer) (string, error) {
	fmt.Fprintln(w, "Content Research Agent")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintf(w, "\nResearching: %s\n", strings.Join(cfg.Interests, ", "))

	var findings *types.Findings
	if findingsPath != "" {
		f, err := LoadFindings(findingsPath)
		if err != nil {
			return "", err
		}
		findings = f
	} else {
		fmt.Fprintln(w, "\nEnter research findings manually, or pass --from with a findings YAML file.")
		fmt.Fprintln(w, "Quick research: What trends did you notice?")
		findings = Collect(p, now)
	}

	if findings == nil || findings.IsEmpty() {
		fmt.Fprintln(w, "\nSkipping research entry. Configure interests in the config file or supply --from.")
		return "", nil
	}

	path := dir.ResearchPath(now)
	if err := memory.WriteEntry(path, Render(*findings, now)); err != nil {
		return "", err
	}

	fmt.Fprintf(w, "\nResearch saved to: %s\n", path)
	return path, nil
}
