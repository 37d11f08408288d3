// Package cursor provides the selection value used by the in-memory editor.
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. The selection can extend forward (head > anchor) or
// backward (head < anchor), preserving the user's selection direction.
//
// Basic usage:
//
//	sel := cursor.NewCursorSelection(10) // Cursor at offset 10
//	sel = sel.Extend(20)                 // Select from 10 to 20
//	sel = sel.CollapseToEnd()            // Cursor at 20
//
// Selection is an immutable value type and safe for concurrent use.
package cursor
