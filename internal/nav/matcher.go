package nav

// FindOccurrence returns the nth match of p in text, counted outward from
// the cursor. With backward set the cursor is at the end of text and the
// count starts from the last match; otherwise it starts from the first.
//
// The second result is false when text has fewer than n matches.
func FindOccurrence(p Pattern, n int, text string, backward bool) (MatchRange, bool) {
	if p == nil || n < 1 {
		return MatchRange{}, false
	}

	limit := -1
	if !backward {
		limit = n
	}

	matches := p.FindAllStringIndex(text, limit)
	if n > len(matches) {
		return MatchRange{}, false
	}

	idx := n - 1
	if backward {
		idx = len(matches) - n
	}
	m := matches[idx]
	return MatchRange{Start: m[0], End: m[1]}, true
}

// FindNearest returns the match of p in text closest to the cursor.
func FindNearest(p Pattern, text string, backward bool) (MatchRange, bool) {
	return FindOccurrence(p, 1, text, backward)
}
