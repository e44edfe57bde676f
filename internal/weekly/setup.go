// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package weekly

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/lifeos/internal/configfile"
	"github.com/pdiddy/lifeos/internal/prompt"
	"github.com/pdiddy/lifeos/pkg/types"
)

// cronDays maps lowercase weekday names to cron day-of-week numbers.
var cronDays = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// CronSpec derives a crontab schedule expression from a weekly day name and
// an HH:MM time. Unparsable values fall back to Sunday 19:00.
func CronSpec(day, clock string) string {
	dow, ok := cronDays[strings.ToLower(strings.TrimSpace(day))]
	if !ok {
		dow = 0
	}
	hour, minute := 19, 0
	if parts := strings.SplitN(clock, ":", 2); len(parts) == 2 {
		if h, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && h >= 0 && h < 24 {
			if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && m >= 0 && m < 60 {
				hour, minute = h, m
			}
		}
	}
	return fmt.Sprintf("%d %d * * %d", minute, hour, dow)
}

// RunSetup drives the interactive wizard that configures the weekly
// check-in: metric definitions and reflection prompts. The existing config
// file at cfgPath is loaded first so sections the wizard does not own are
// written back unchanged.
func RunSetup(p *prompt.Prompter, cfgPath string, w io.Writer) error {
	fmt.Fprintln(w, "Life OS: Weekly Check-in Setup")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	cfg, err := configfile.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg.Weekly.Day == "" && len(cfg.Weekly.Metrics) == 0 && len(cfg.Weekly.Prompts) == 0 {
		cfg.Weekly = types.DefaultConfig().Weekly
	}

	fmt.Fprintln(w, "\nLet's set up your weekly check-in. Enter your metrics or press Enter to skip.")
	fmt.Fprintln(w, "Example: 'newsletter_subscribers' or 'revenue' or 'workouts'")
	fmt.Fprintln(w, "Type 'done' when finished.")
	fmt.Fprintln(w)

	var metrics []types.Metric
	for {
		name := p.Ask("Metric name (or 'done'): ")
		if name == "" || strings.EqualFold(name, "done") {
			break
		}
		metrics = append(metrics, types.Metric{
			Name:   name,
			Prompt: p.AskDefault(fmt.Sprintf("  Prompt for %s: ", name), fmt.Sprintf("Current %s?", name)),
			Type:   p.AskDefault("  Type [number/text]: ", "text"),
		})
	}
	if len(metrics) > 0 {
		cfg.Weekly.Metrics = metrics
	}

	fmt.Fprintln(w, "\nNow let's customize your reflection prompts.")
	fmt.Fprintln(w, "Current prompts:")
	for i, q := range cfg.Weekly.Prompts {
		fmt.Fprintf(w, "  %d. %s\n", i+1, q)
	}

	custom := p.Ask("\nAdd custom prompt (or Enter to skip): ")
	for custom != "" {
		cfg.Weekly.Prompts = append(cfg.Weekly.Prompts, custom)
		custom = p.Ask("Add another (or Enter to finish): ")
	}

	if err := configfile.Save(cfgPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nConfig saved to %s\n", cfgPath)
	fmt.Fprintln(w, "\nTo schedule your weekly check-in, add a crontab entry:")
	fmt.Fprintf(w, "  %s lifeos weekly\n", CronSpec(cfg.Weekly.Day, cfg.Weekly.Time))
	return nil
}
