// Package engine provides an in-memory host editor for navigation.
//
// Editor keeps a text buffer and a single selection and implements the
// primitive cursor operations the navigator drives: character moves,
// selection extension by character, line and row, and delete, cut and
// copy against the selection.
//
// # Characters
//
// Left, Right, ExtendLeft and ExtendRight step by grapheme cluster, so a
// flag emoji or a letter with combining marks is one step. Up and down
// keep the grapheme column and clamp it to the target line.
//
// # Thread Safety
//
// All Editor operations are serialized by a mutex.
//
// # Basic Usage
//
//	ed := engine.New("foo (bar) baz", engine.WithCursor(13))
//	_ = ed.ExtendLineStart()
//	text, _ := ed.SelectedText() // "foo (bar) baz"
package engine
