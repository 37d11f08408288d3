// Package nav implements relative text navigation: find the Nth occurrence of a
// target near the cursor and act on it.
//
// A navigation call runs through these steps:
//
//  1. SelectionGuard records any existing selection and collapses it so the
//     text window is anchored at a known edge.
//  2. WindowExtractor reads a bounded window of text adjacent to the cursor,
//     leaving the editor selection as it found it.
//  3. FindOccurrence locates the Nth match counted outward from the cursor,
//     skipping the part of the window covered by the old selection.
//  4. On no match the guard restores the old selection and the call ends.
//  5. Otherwise Dispatch resolves before/after anchors against a class
//     pattern and issues cursor primitives for the requested action.
//
// Windows, match ranges, and guards are request scoped. Nothing is kept
// between calls.
//
// Offsets:
//
// MatchRange offsets are byte offsets into TextWindow.Text. Editor primitives
// step by user-perceived characters (grapheme clusters), so every distance is
// converted with TextWindow.Chars before it is issued.
//
// Basic usage:
//
//	nv := nav.NewNavigator(editor, settings)
//	err := nv.Navigate(ctx, nav.Request{
//	    Action:     nav.ActionSelect,
//	    Direction:  nav.DirectionLeft,
//	    Anchor:     nav.AnchorDefault,
//	    Pattern:    target,
//	    Occurrence: 1,
//	})
package nav
