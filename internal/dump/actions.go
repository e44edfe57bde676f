// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dump

import (
	"regexp"
	"strings"
)

// Action-phrase patterns, applied to the whole input in order. Each captures
// the remainder of a clause introduced by a task verb, up to the next period,
// newline, or end of text.
var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:need to|should|must|have to|todo|task)[,:]?\s*(.+?)(?:[.\n]|$)`),
	regexp.MustCompile(`(?i)(?:action|next step)[,:]?\s*(.+?)(?:[.\n]|$)`),
}

// minActionLen is the trimmed length below which a capture is discarded.
const minActionLen = 3

// ExtractActions scans the full text for action phrases. All matches of the
// first pattern are collected before any of the second, left to right within
// each pattern. A phrase matched by both patterns is reported twice; that
// duplication is preserved deliberately.
func ExtractActions(text string) []string {
	var actions []string
	for _, pattern := range actionPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			action := strings.TrimSpace(m[1])
			if len(action) > minActionLen {
				actions = append(actions, action)
			}
		}
	}
	return actions
}
