package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tributebook/tributebook/internal/text"
)

func TestPlain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no markup", "hello there", "hello there"},
		{"bold stripped", "he was <b>kind</b>", "he was kind"},
		{"br becomes newline", "line one<br>line two", "line one\nline two"},
		{"self-closing br", "line one<br/>line two", "line one\nline two"},
		{"paragraph close becomes newline", "<p>one</p><p>two</p>", "one\ntwo"},
		{"single paragraph", "<p>only</p>", "only"},
		{"trailing br dropped", "goodbye<br>", "goodbye"},
		{"entity decoded", "Tom &amp; Jerry", "Tom & Jerry"},
		{"nested markup", "<i>so <b>very</b> missed</i>", "so very missed"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Plain(tt.in))
		})
	}
}

func TestVisibleLength(t *testing.T) {
	assert.Equal(t, 5, text.VisibleLength("hello"))
	assert.Equal(t, 5, text.VisibleLength("<b>hello</b>"))
	// Code points, not bytes.
	assert.Equal(t, 4, text.VisibleLength("café"))
	assert.Equal(t, 0, text.VisibleLength(""))
	// A closing tag at the end must not count as an extra character.
	assert.Equal(t, 5, text.VisibleLength("<p>hello</p>"))
}
