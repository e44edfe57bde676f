// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dump

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/lifeos/internal/memory"
)

var renderTime = time.Date(2026, time.March, 2, 21, 30, 0, 0, time.UTC)

func TestRenderReportRawTextRoundTrip(t *testing.T) {
	text := "idea: do X\nneed to call Bob.\nwent for a walk"
	report := RenderReport(text, Categorize(text), ExtractActions(text), renderTime)

	fenced := "```\n" + text + "\n```"
	if !strings.Contains(report, fenced) {
		t.Errorf("report does not contain the raw text verbatim inside a fence:\n%s", report)
	}
}

func TestRenderReportStructure(t *testing.T) {
	text := "book on negotiation\nidea: dinner parties\nneed to call Bob."
	report := RenderReport(text, Categorize(text), ExtractActions(text), renderTime)

	for _, want := range []string{
		"# Brain Dump: 2026-03-02 21:30",
		"## Raw Thoughts",
		"## Categorized",
		"### Ideas",
		"- idea: dinner parties",
		"### Resources",
		"- book on negotiation",
		"## Action Items",
		"- [ ] call Bob",
		"*Processed: 2026-03-02 21:30*",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}

	// Ideas renders before Resources regardless of input order.
	if strings.Index(report, "### Ideas") > strings.Index(report, "### Resources") {
		t.Error("category sections out of enumeration order")
	}
}

func TestRenderReportOmitsEmptySections(t *testing.T) {
	text := "went for a walk"
	report := RenderReport(text, Categorize(text), ExtractActions(text), renderTime)

	for _, unwanted := range []string{"### Ideas", "### Questions", "### Projects", "### Resources", "## Action Items"} {
		if strings.Contains(report, unwanted) {
			t.Errorf("report contains %q for empty section:\n%s", unwanted, report)
		}
	}
	if !strings.Contains(report, "### Random") {
		t.Errorf("report missing Random section:\n%s", report)
	}
}

func TestProcessWritesReport(t *testing.T) {
	dir := memory.New(t.TempDir())
	var out bytes.Buffer

	result, err := Process("idea: do X\nneed to call Bob.", dir, renderTime, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantPath := filepath.Join(dir.Base(), "brain-dumps", "2026-03-02-2130.md")
	if result.Path != wantPath {
		t.Errorf("Path = %q, want %q", result.Path, wantPath)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(data), "# Brain Dump: 2026-03-02 21:30") {
		t.Errorf("written report missing title:\n%s", data)
	}

	summary := out.String()
	for _, want := range []string{"Total thoughts: 2", "Ideas: 1", "Action items: 1"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestProcessEmptyInputWritesNothing(t *testing.T) {
	base := t.TempDir()
	var out bytes.Buffer

	result, err := Process("   \n\t  ", memory.New(base), renderTime, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Path != "" {
		t.Errorf("Path = %q, want empty", result.Path)
	}
	if !strings.Contains(out.String(), "No content provided.") {
		t.Errorf("missing empty-input notice, got %q", out.String())
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("memory directory not empty: %v", entries)
	}
}
