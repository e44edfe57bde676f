// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dump converts unstructured brain-dump text into an organized
// Markdown note: it splits the text into thought fragments, assigns each
// fragment to one of five fixed categories by ordered keyword rules,
// extracts action phrases, and renders the combined report.
package dump

import (
	"regexp"
	"strings"

	"github.com/pdiddy/lifeos/pkg/types"
)

// separatorRe matches runs of the characters that delimit thoughts:
// newlines, bullets, and hyphens.
var separatorRe = regexp.MustCompile(`[\n•-]+`)

// SplitThoughts splits raw text into trimmed, non-empty thought fragments.
// Empty input yields an empty slice.
func SplitThoughts(text string) []string {
	var thoughts []string
	for _, piece := range separatorRe.Split(text, -1) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		thoughts = append(thoughts, piece)
	}
	return thoughts
}

// rule pairs a predicate with the category it selects. Rules are evaluated
// in order and the first match wins; the final rule matches unconditionally.
type rule struct {
	category types.Category
	match    func(fragment, lower string) bool
}

var (
	projectWords  = []string{"build", "create", "app", "website", "launch", "make"}
	questionWords = []string{"how", "why", "what", "when", "should"}
	ideaWords     = []string{"idea", "thought", "maybe", "perhaps", "consider"}
	resourceWords = []string{"link", "book", "tool", "site", "url", "read"}
)

// rules is the ordered classification rule list. Priority:
// projects > questions > ideas > resources > random fallback.
var rules = []rule{
	{types.CategoryProjects, func(_, lower string) bool {
		return containsAny(lower, projectWords)
	}},
	{types.CategoryQuestions, func(fragment, lower string) bool {
		return strings.Contains(fragment, "?") || containsAny(lower, questionWords)
	}},
	{types.CategoryIdeas, func(_, lower string) bool {
		return containsAny(lower, ideaWords)
	}},
	{types.CategoryResources, func(_, lower string) bool {
		return containsAny(lower, resourceWords)
	}},
	{types.CategoryRandom, func(_, _ string) bool {
		return true
	}},
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// Classify returns the first matching category for a fragment. It always
// succeeds: the fallback rule catches everything.
func Classify(fragment string) types.Category {
	lower := strings.ToLower(fragment)
	for _, r := range rules {
		if r.match(fragment, lower) {
			return r.category
		}
	}
	// Unreachable: the last rule is unconditional.
	return types.CategoryRandom
}

// Categorize splits text into fragments and assigns each to exactly one
// category. Insertion order is preserved per category and an identical
// fragment is never listed twice within the same category.
func Categorize(text string) types.CategorizedThoughts {
	categorized := types.NewCategorizedThoughts()
	for _, thought := range SplitThoughts(text) {
		categorized.Add(Classify(thought), thought)
	}
	return categorized
}
