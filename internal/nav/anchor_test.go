package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAnchor(t *testing.T) {
	word := mustClass("word")
	text := "foo (bar) baz"
	match := MatchRange{4, 9}

	tests := []struct {
		name string
		mode AnchorMode
		want string
	}{
		{"default", AnchorDefault, "(bar)"},
		{"before", AnchorBefore, "foo"},
		{"after", AnchorAfter, "baz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAnchor(tt.mode, text, match, word)
			assert.Equal(t, tt.want, got.Slice(text))
		})
	}
}

func TestResolveAnchorPicksNearestToken(t *testing.T) {
	word := mustClass("word")
	text := "one two (x) three four"
	match := MatchRange{8, 11}

	assert.Equal(t, "two", ResolveAnchor(AnchorBefore, text, match, word).Slice(text))
	assert.Equal(t, "three", ResolveAnchor(AnchorAfter, text, match, word).Slice(text))
}

func TestResolveAnchorFallback(t *testing.T) {
	word := mustClass("word")

	text := "  (bar)"
	got := ResolveAnchor(AnchorBefore, text, MatchRange{2, 7}, word)
	assert.Equal(t, MatchRange{0, 2}, got)

	text = "(bar)  "
	got = ResolveAnchor(AnchorAfter, text, MatchRange{0, 5}, word)
	assert.Equal(t, MatchRange{5, 7}, got)
}

func TestResolveAnchorExplicitClass(t *testing.T) {
	big := mustClass("big")
	text := "x.y (bar) a-b"
	match := MatchRange{4, 9}

	assert.Equal(t, "x.y", ResolveAnchor(AnchorBefore, text, match, big).Slice(text))
	assert.Equal(t, "a-b", ResolveAnchor(AnchorAfter, text, match, big).Slice(text))
}
