// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Category labels one brain-dump classification bucket.
type Category string

const (
	CategoryIdeas     Category = "ideas"
	CategoryQuestions Category = "questions"
	CategoryProjects  Category = "projects"
	CategoryResources Category = "resources"
	CategoryRandom    Category = "random"
)

// Categories lists all buckets in the fixed rendering order.
var Categories = []Category{
	CategoryIdeas,
	CategoryQuestions,
	CategoryProjects,
	CategoryResources,
	CategoryRandom,
}

// Title returns the bucket name with its first letter upper-cased, for
// use as a Markdown heading.
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// CategorizedThoughts maps each category to its fragments in insertion
// order. All five categories are always present; empty lists are allowed.
type CategorizedThoughts map[Category][]string

// NewCategorizedThoughts returns a mapping with all five categories
// initialized to empty lists.
func NewCategorizedThoughts() CategorizedThoughts {
	ct := make(CategorizedThoughts, len(Categories))
	for _, c := range Categories {
		ct[c] = nil
	}
	return ct
}

// Add appends a fragment to a category's list unless an identical fragment
// is already present there. It reports whether the fragment was appended.
func (ct CategorizedThoughts) Add(c Category, fragment string) bool {
	for _, existing := range ct[c] {
		if existing == fragment {
			return false
		}
	}
	ct[c] = append(ct[c], fragment)
	return true
}

// Total returns the number of fragments across all categories.
func (ct CategorizedThoughts) Total() int {
	n := 0
	for _, items := range ct {
		n += len(items)
	}
	return n
}
