// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package weekly generates the weekly check-in dashboard and hosts the
// configuration wizard that sets it up.
package weekly

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/lifeos/internal/memory"
	"github.com/pdiddy/lifeos/internal/prompt"
	"github.com/pdiddy/lifeos/pkg/types"
)

// MetricValue is one collected metric reading.
type MetricValue struct {
	Name  string
	Value string
}

// WeekRange returns the Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (start, end time.Time) {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	start = t.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// LastWeekPath returns the path of the check-in written seven days before
// now, or the empty string when no such file exists.
func LastWeekPath(dir memory.Dir, now time.Time) string {
	path := dir.WeeklyPath(now.AddDate(0, 0, -7))
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// CollectMetrics prompts for each configured metric. Blank answers are
// skipped; order follows the configuration.
func CollectMetrics(p *prompt.Prompter, metrics []types.Metric) []MetricValue {
	var values []MetricValue
	for _, m := range metrics {
		value := p.Ask(fmt.Sprintf("%s\n> ", m.Prompt))
		if value == "" {
			continue
		}
		values = append(values, MetricValue{Name: m.Name, Value: value})
	}
	return values
}

// RenderDashboard produces the weekly check-in Markdown. lastWeek is the
// path of the previous check-in, empty when there is none.
func RenderDashboard(metrics []MetricValue, prompts []string, lastWeek string, now time.Time) string {
	start, end := WeekRange(now)

	lines := []string{
		fmt.Sprintf("# Weekly Check-in: %s - %s", start.Format("Jan 02"), end.Format("Jan 02, 2006")),
		"",
		"## Metrics",
		"",
	}

	for _, m := range metrics {
		lines = append(lines, fmt.Sprintf("- **%s:** %s", metricTitle(m.Name), m.Value))
	}

	lines = append(lines, "", "## Reflections", "")

	for _, q := range prompts {
		lines = append(lines,
			fmt.Sprintf("### %s", q),
			"",
			"*(Your response here)*",
			"",
		)
	}

	lines = append(lines, "## Trends", "")
	if lastWeek != "" {
		lines = append(lines, fmt.Sprintf("_Compare with last week: %s_", filepath.Base(lastWeek)))
	} else {
		lines = append(lines, "_Compare with last week (manual or automated)_")
	}

	lines = append(lines,
		"",
		"---",
		"",
		fmt.Sprintf("*Logged: %s*", now.Format("2006-01-02 15:04")),
	)

	return strings.Join(lines, "\n")
}

// metricTitle turns a snake_case metric name into a heading:
// "projects_completed" becomes "Projects Completed".
func metricTitle(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Run collects this week's metrics interactively, renders the dashboard,
// writes it to the memory tree as weekly/YYYY-MM-DD.md, and echoes the
// dashboard. It returns the written path.
func Run(p *prompt.Prompter, cfg types.WeeklyConfig, dir memory.Dir, now time.Time, w io.Writer) (string, error) {
	metrics := CollectMetrics(p, cfg.Metrics)

	dashboard := RenderDashboard(metrics, cfg.Prompts, LastWeekPath(dir, now), now)

	path := dir.WeeklyPath(now)
	if err := memory.WriteEntry(path, dashboard); err != nil {
		return "", err
	}

	fmt.Fprintf(w, "\nWeekly check-in saved to: %s\n", path)
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 40))
	fmt.Fprintln(w, dashboard)
	return path, nil
}
