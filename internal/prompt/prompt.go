// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements line-oriented interactive prompting. The reader
// and writer are injected so interactive flows can be driven from tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on w and reads answers line by line from r.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New returns a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Ask prints label verbatim and returns the next input line, trimmed of
// surrounding whitespace. End of input yields the empty string.
func (p *Prompter) Ask(label string) string {
	fmt.Fprint(p.w, label)
	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// AskDefault asks and substitutes def when the answer is blank.
func (p *Prompter) AskDefault(label, def string) string {
	if answer := p.Ask(label); answer != "" {
		return answer
	}
	return def
}
