package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Plain strips inline markup from a message and returns the visible
// text. <br> and </p> become newlines so line structure survives;
// entities like &amp; are decoded. A message without markup is
// returned unchanged.
func Plain(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			// The tokenizer returns io.EOF at the end of input;
			// anything else is malformed markup, which we treat as
			// text already consumed. A close tag at the end of the
			// message leaves a separator with nothing after it, so
			// trailing newlines are not part of the visible text.
			return strings.TrimRight(b.String(), "\n")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "p" {
				b.WriteByte('\n')
			}
		}
	}
}

// VisibleLength measures a message the way readers see it: markup is
// stripped and the remainder is counted in code points, not bytes.
func VisibleLength(s string) int {
	return utf8.RuneCountInString(Plain(s))
}
