// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/lifeos/internal/memory"
	"github.com/pdiddy/lifeos/internal/prompt"
	"github.com/pdiddy/lifeos/pkg/types"
)

// 2026-03-02 is a Monday.
var entryTime = time.Date(2026, time.March, 2, 21, 30, 0, 0, time.UTC)

func TestRender(t *testing.T) {
	e := Entry{
		Mood:   "7",
		Energy: "4",
		Responses: []Response{
			{Prompt: "What energized you today?", Answer: "A long run."},
			{Prompt: "One thing to prioritize tomorrow:", Answer: "The draft."},
		},
	}

	got := Render(e, entryTime)

	for _, want := range []string{
		"# Daily Journal: Monday, March 02, 2026",
		"**Date:** 2026-03-02",
		"**Time:** 21:30",
		"**Mood:** 7/10",
		"**Energy:** 4/10",
		"## What energized you today?",
		"A long run.",
		"## One thing to prioritize tomorrow:",
		"The draft.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("entry missing %q:\n%s", want, got)
		}
	}
}

func TestRenderSkipsBlankMood(t *testing.T) {
	got := Render(Entry{Energy: "6"}, entryTime)
	if strings.Contains(got, "**Mood:**") {
		t.Errorf("entry contains mood line for blank mood:\n%s", got)
	}
	if !strings.Contains(got, "**Energy:** 6/10") {
		t.Errorf("entry missing energy line:\n%s", got)
	}
}

func TestCollect(t *testing.T) {
	input := "7\n4\nA long run.\n\n"
	p := prompt.New(strings.NewReader(input), &bytes.Buffer{})

	e := Collect(p, []string{"What energized you today?", "What drained your energy?"})

	if e.Mood != "7" || e.Energy != "4" {
		t.Errorf("mood/energy = %q/%q, want 7/4", e.Mood, e.Energy)
	}
	if len(e.Responses) != 1 {
		t.Fatalf("len(Responses) = %d, want 1 (blank answers skipped)", len(e.Responses))
	}
	if e.Responses[0].Prompt != "What energized you today?" || e.Responses[0].Answer != "A long run." {
		t.Errorf("Responses[0] = %+v", e.Responses[0])
	}
}

func TestCollectDefaultsOnEOF(t *testing.T) {
	p := prompt.New(strings.NewReader(""), &bytes.Buffer{})
	e := Collect(p, []string{"Anything?"})

	if e.Mood != "5" || e.Energy != "5" {
		t.Errorf("mood/energy = %q/%q, want defaults 5/5", e.Mood, e.Energy)
	}
	if len(e.Responses) != 0 {
		t.Errorf("Responses = %v, want none", e.Responses)
	}
}

func TestRun(t *testing.T) {
	dir := memory.New(t.TempDir())
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("8\n6\nGood coffee.\n"), &out)

	path, err := Run(p, types.DailyConfig{Prompts: []string{"What energized you today?"}}, dir, entryTime, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := dir.JournalPath(entryTime); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("entry not written: %v", err)
	}
	if !strings.Contains(string(data), "Good coffee.") {
		t.Errorf("written entry missing answer:\n%s", data)
	}
	if !strings.Contains(out.String(), "Journal entry saved to:") {
		t.Errorf("missing confirmation, got %q", out.String())
	}
}
