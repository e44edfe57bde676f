// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Metric describes one measurement collected during the weekly check-in.
type Metric struct {
	// Name is the snake_case identifier used in dashboard headings
	// (e.g. "projects_completed").
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Prompt is the question shown when collecting the value.
	Prompt string `json:"prompt" yaml:"prompt" mapstructure:"prompt"`

	// Type is "number" or "text". Values are stored as entered either way;
	// the type is advisory for future tooling.
	Type string `json:"type" yaml:"type" mapstructure:"type"`
}

// DailyConfig holds settings for the daily journal.
type DailyConfig struct {
	// Prompts lists the reflection questions asked each evening.
	Prompts []string `json:"prompts,omitempty" yaml:"prompts,omitempty" mapstructure:"prompts"`
}

// WeeklyConfig holds settings for the weekly check-in.
type WeeklyConfig struct {
	// Day is the lowercase weekday name the check-in is scheduled for
	// (e.g. "sunday").
	Day string `json:"day" yaml:"day" mapstructure:"day"`

	// Time is the scheduled time of day in HH:MM form (e.g. "19:00").
	Time string `json:"time" yaml:"time" mapstructure:"time"`

	// Metrics lists the measurements collected each week.
	Metrics []Metric `json:"metrics" yaml:"metrics" mapstructure:"metrics"`

	// Prompts lists the weekly reflection questions.
	Prompts []string `json:"prompts" yaml:"prompts" mapstructure:"prompts"`
}

// ResearchConfig holds settings for content research notes.
type ResearchConfig struct {
	// Interests lists the topics under investigation.
	Interests []string `json:"interests,omitempty" yaml:"interests,omitempty" mapstructure:"interests"`
}

// Config groups all tool configurations plus the memory tree location.
// Values are populated from the lifeos config file, LIFEOS_* env vars,
// and CLI flags.
type Config struct {
	// MemoryDir is the base directory of the memory tree. Empty means the
	// per-user default (~/.lifeos/memory).
	MemoryDir string `json:"memory_dir,omitempty" yaml:"memory_dir,omitempty" mapstructure:"memory_dir"`

	Daily    DailyConfig    `json:"daily,omitempty" yaml:"daily,omitempty" mapstructure:"daily"`
	Weekly   WeeklyConfig   `json:"weekly" yaml:"weekly" mapstructure:"weekly"`
	Research ResearchConfig `json:"research,omitempty" yaml:"research,omitempty" mapstructure:"research"`
}

// DefaultConfig returns the built-in configuration used when no config
// file exists.
func DefaultConfig() Config {
	return Config{
		Daily: DailyConfig{
			Prompts: []string{
				"Three things you're grateful for:",
				"What energized you today?",
				"What drained your energy?",
				"One thing to prioritize tomorrow:",
			},
		},
		Weekly: WeeklyConfig{
			Day:  "sunday",
			Time: "19:00",
			Metrics: []Metric{
				{Name: "projects_completed", Prompt: "Projects completed this week?", Type: "number"},
				{Name: "focus_area", Prompt: "Main focus this week?", Type: "text"},
			},
			Prompts: []string{
				"Biggest win this week?",
				"What didn't go as planned?",
				"One thing you learned?",
				"Focus for next week?",
			},
		},
		Research: ResearchConfig{
			Interests: []string{"AI tools", "productivity"},
		},
	}
}

// ApplyDefaults fills unset sections with the built-in defaults. A section
// the user configured, even partially, is left alone where that makes sense.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if len(c.Daily.Prompts) == 0 {
		c.Daily = def.Daily
	}
	if c.Weekly.Day == "" {
		c.Weekly.Day = def.Weekly.Day
	}
	if c.Weekly.Time == "" {
		c.Weekly.Time = def.Weekly.Time
	}
	if len(c.Weekly.Metrics) == 0 {
		c.Weekly.Metrics = def.Weekly.Metrics
	}
	if len(c.Weekly.Prompts) == 0 {
		c.Weekly.Prompts = def.Weekly.Prompts
	}
	if len(c.Research.Interests) == 0 {
		c.Research = def.Research
	}
}
