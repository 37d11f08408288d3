package nav

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/voicenav/internal/pattern"
)

func TestFindOccurrenceForward(t *testing.T) {
	p := mustLiteral("cat")
	text := "cat sat on the cat"

	tests := []struct {
		n    int
		want MatchRange
		ok   bool
	}{
		{1, MatchRange{0, 3}, true},
		{2, MatchRange{15, 18}, true},
		{3, MatchRange{}, false},
	}

	for _, tt := range tests {
		got, ok := FindOccurrence(p, tt.n, text, false)
		assert.Equal(t, tt.ok, ok, "n=%d", tt.n)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestFindOccurrenceBackward(t *testing.T) {
	p := mustLiteral("cat")
	text := "cat sat on the cat"

	got, ok := FindOccurrence(p, 1, text, true)
	require.True(t, ok)
	assert.Equal(t, MatchRange{15, 18}, got)

	got, ok = FindOccurrence(p, 2, text, true)
	require.True(t, ok)
	assert.Equal(t, MatchRange{0, 3}, got)

	_, ok = FindOccurrence(p, 3, text, true)
	assert.False(t, ok)
}

func TestFindOccurrenceBackwardFirstIsLast(t *testing.T) {
	p := mustClass("word")
	texts := []string{
		"alpha beta gamma",
		"one",
		"  trailing space  ",
		"a_b c-d e.f",
	}

	for _, text := range texts {
		all := p.FindAllStringIndex(text, -1)
		require.NotEmpty(t, all, text)

		got, ok := FindOccurrence(p, 1, text, true)
		require.True(t, ok, text)
		last := all[len(all)-1]
		assert.Equal(t, MatchRange{last[0], last[1]}, got, text)
	}
}

func TestFindOccurrenceNoMatch(t *testing.T) {
	p := mustLiteral("zzz")

	for _, backward := range []bool{false, true} {
		_, ok := FindOccurrence(p, 1, "", backward)
		assert.False(t, ok)

		_, ok = FindOccurrence(p, 1, "nothing here", backward)
		assert.False(t, ok)
	}
}

func TestFindOccurrenceInvalidInputs(t *testing.T) {
	_, ok := FindOccurrence(nil, 1, "text", false)
	assert.False(t, ok)

	_, ok = FindOccurrence(mustLiteral("t"), 0, "text", false)
	assert.False(t, ok)
}

func TestFindOccurrenceCaseInsensitiveLiteral(t *testing.T) {
	got, ok := FindOccurrence(mustLiteral("Cat"), 1, "the CAT sat", false)
	require.True(t, ok)
	assert.Equal(t, MatchRange{4, 7}, got)
}

func TestFindOccurrenceHomophoneAlternation(t *testing.T) {
	c := pattern.NewCompiler(nil, mapHomophones{"there": {"there", "their", "they're"}})
	p, err := c.Word("there")
	require.NoError(t, err)

	text := "Their house, there now, they're here"
	got, ok := FindOccurrence(p, 2, text, false)
	require.True(t, ok)
	assert.Equal(t, "there", got.Slice(text))

	got, ok = FindOccurrence(p, 1, text, true)
	require.True(t, ok)
	assert.Equal(t, "they're", got.Slice(text))

	got, ok = FindOccurrence(p, 3, text, true)
	require.True(t, ok)
	assert.Equal(t, "Their", got.Slice(text))
}

func TestFindOccurrenceAcceptsStdlibPattern(t *testing.T) {
	re := regexp.MustCompile(`\d+`)
	got, ok := FindOccurrence(re, 2, "a1 b22 c333", true)
	require.True(t, ok)
	assert.Equal(t, MatchRange{4, 6}, got)
}
