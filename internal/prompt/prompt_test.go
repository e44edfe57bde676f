// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  hello world  \n"), &out)

	assert.Equal(t, "hello world", p.Ask("Question: "))
	assert.Equal(t, "Question: ", out.String())
}

func TestAskSequentialLines(t *testing.T) {
	p := New(strings.NewReader("first\nsecond\n"), &bytes.Buffer{})

	assert.Equal(t, "first", p.Ask("a: "))
	assert.Equal(t, "second", p.Ask("b: "))
	assert.Equal(t, "", p.Ask("c: "))
}

func TestAskEOFWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("trailing"), &bytes.Buffer{})
	assert.Equal(t, "trailing", p.Ask("q: "))
}

func TestAskDefault(t *testing.T) {
	p := New(strings.NewReader("\n7\n"), &bytes.Buffer{})

	assert.Equal(t, "5", p.AskDefault("Mood: ", "5"))
	assert.Equal(t, "7", p.AskDefault("Energy: ", "5"))
}

func TestAskDefaultEOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	assert.Equal(t, "text", p.AskDefault("Type: ", "text"))
}
