// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Trend is one notable development captured during content research.
type Trend struct {
	// Title names the trend.
	Title string `json:"title" yaml:"title"`

	// Summary describes the trend in a sentence or two.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Source names where the trend was observed.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// URL links to the source, when known.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// ContentIdea is a content idea derived from research findings.
type ContentIdea struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Resource is a link worth keeping from a research session.
type Resource struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Findings holds everything collected during one research session.
type Findings struct {
	// Summary is a one-line description of the session.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	Trends    []Trend       `json:"trends,omitempty" yaml:"trends,omitempty"`
	Ideas     []ContentIdea `json:"ideas,omitempty" yaml:"ideas,omitempty"`
	Resources []Resource    `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// IsEmpty reports whether the findings contain nothing worth reporting.
func (f Findings) IsEmpty() bool {
	return f.Summary == "" && len(f.Trends) == 0 && len(f.Ideas) == 0 && len(f.Resources) == 0
}
