// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package memory manages the on-disk memory tree where generated Markdown
// documents are stored. Each tool writes into its own subdirectory with a
// date-derived filename; same-minute invocations of the brain dump overwrite
// each other, which is accepted for a single-user tool.
package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dumpsDir    = "brain-dumps"
	journalDir  = "journal"
	weeklyDir   = "weekly"
	researchDir = "research"
)

const (
	dateFmt     = "2006-01-02"
	dateTimeFmt = "2006-01-02-1504"
)

// Dir is the base directory of the memory tree.
type Dir struct {
	base string
}

// New returns a Dir rooted at base.
func New(base string) Dir {
	return Dir{base: base}
}

// Base returns the tree's base directory.
func (d Dir) Base() string {
	return d.base
}

// DumpPath returns the brain-dump file path for the given time, named to
// minute precision.
func (d Dir) DumpPath(now time.Time) string {
	return filepath.Join(d.base, dumpsDir, now.Format(dateTimeFmt)+".md")
}

// JournalPath returns the journal entry path for the given day.
func (d Dir) JournalPath(now time.Time) string {
	return filepath.Join(d.base, journalDir, now.Format(dateFmt)+".md")
}

// WeeklyPath returns the weekly check-in path for the given day.
func (d Dir) WeeklyPath(now time.Time) string {
	return filepath.Join(d.base, weeklyDir, now.Format(dateFmt)+".md")
}

// ResearchPath returns the research findings path for the given day.
func (d Dir) ResearchPath(now time.Time) string {
	return filepath.Join(d.base, researchDir, now.Format(dateFmt)+"-findings.md")
}

// WriteEntry writes content to path, creating parent directories as needed.
func WriteEntry(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating memory directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// DefaultBase returns the per-user default memory location, ~/.lifeos/memory.
func DefaultBase() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".lifeos", "memory"), nil
}
