package nav

// ResolveAnchor shifts match to the class token next to it.
//
// AnchorBefore picks the last class match in the text before match.Start.
// When there is none the range becomes everything from the window start up
// to match.Start. AnchorAfter picks the first class match after match.End,
// falling back to everything from match.End to the window end.
func ResolveAnchor(mode AnchorMode, text string, match MatchRange, class Pattern) MatchRange {
	switch mode {
	case AnchorBefore:
		if r, ok := FindNearest(class, text[:match.Start], true); ok {
			return r
		}
		return MatchRange{Start: 0, End: match.Start}
	case AnchorAfter:
		if r, ok := FindNearest(class, text[match.End:], false); ok {
			return r.Shift(match.End)
		}
		return MatchRange{Start: match.End, End: len(text)}
	default:
		return match
	}
}
