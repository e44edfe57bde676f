// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package configfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/lifeos/pkg/types"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &types.Config{}, cfg)
}

func TestLoadParsesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `memory_dir: /tmp/memory
daily:
  prompts:
    - "What went well?"
weekly:
  day: friday
  time: "08:30"
  metrics:
    - name: workouts
      prompt: "Workouts this week?"
      type: number
  prompts:
    - "Biggest win this week?"
research:
  interests:
    - woodworking
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/memory", cfg.MemoryDir)
	assert.Equal(t, []string{"What went well?"}, cfg.Daily.Prompts)
	assert.Equal(t, "friday", cfg.Weekly.Day)
	assert.Equal(t, "08:30", cfg.Weekly.Time)
	require.Len(t, cfg.Weekly.Metrics, 1)
	assert.Equal(t, types.Metric{Name: "workouts", Prompt: "Workouts this week?", Type: "number"}, cfg.Weekly.Metrics[0])
	assert.Equal(t, []string{"woodworking"}, cfg.Research.Interests)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":::bad\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := types.DefaultConfig()
	want.MemoryDir = "/tmp/memory"
	require.NoError(t, Save(path, &want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &want, got)
}
