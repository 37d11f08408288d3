package cursor

import (
	"testing"
)

func TestNewSelection(t *testing.T) {
	sel := NewSelection(10, 20)

	if sel.Anchor != 10 {
		t.Errorf("expected anchor 10, got %d", sel.Anchor)
	}
	if sel.Head != 20 {
		t.Errorf("expected head 20, got %d", sel.Head)
	}
}

func TestNewCursorSelection(t *testing.T) {
	sel := NewCursorSelection(7)

	if !sel.IsEmpty() {
		t.Error("cursor selection should be empty")
	}
	if sel.Head != 7 || sel.Anchor != 7 {
		t.Errorf("expected 7/7, got %d/%d", sel.Anchor, sel.Head)
	}
}

func TestSelectionBounds(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selection
		start    int
		end      int
		length   int
		backward bool
	}{
		{"forward", NewSelection(2, 9), 2, 9, 7, false},
		{"backward", NewSelection(9, 2), 2, 9, 7, true},
		{"empty", NewCursorSelection(4), 4, 4, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Start(); got != tt.start {
				t.Errorf("Start() = %d, want %d", got, tt.start)
			}
			if got := tt.sel.End(); got != tt.end {
				t.Errorf("End() = %d, want %d", got, tt.end)
			}
			if got := tt.sel.Len(); got != tt.length {
				t.Errorf("Len() = %d, want %d", got, tt.length)
			}
			if got := tt.sel.IsBackward(); got != tt.backward {
				t.Errorf("IsBackward() = %v, want %v", got, tt.backward)
			}
		})
	}
}

func TestSelectionExtend(t *testing.T) {
	sel := NewCursorSelection(5)

	sel = sel.Extend(2)
	if sel.Anchor != 5 || sel.Head != 2 {
		t.Errorf("expected 5←2, got %s", sel)
	}

	sel = sel.Extend(8)
	if sel.Anchor != 5 || sel.Head != 8 {
		t.Errorf("expected anchor kept while head crosses it, got %s", sel)
	}
}

func TestSelectionCollapse(t *testing.T) {
	sel := NewSelection(10, 3)

	start := sel.CollapseToStart()
	if !start.IsEmpty() || start.Head != 3 {
		t.Errorf("CollapseToStart() = %s, want Cursor(3)", start)
	}

	end := sel.CollapseToEnd()
	if !end.IsEmpty() || end.Head != 10 {
		t.Errorf("CollapseToEnd() = %s, want Cursor(10)", end)
	}

	if sel.Anchor != 10 || sel.Head != 3 {
		t.Error("original selection should be unchanged")
	}
}

func TestSelectionClamp(t *testing.T) {
	sel := NewSelection(-4, 50).Clamp(30)

	if sel.Anchor != 0 {
		t.Errorf("expected anchor 0, got %d", sel.Anchor)
	}
	if sel.Head != 30 {
		t.Errorf("expected head 30, got %d", sel.Head)
	}
}

func TestSelectionString(t *testing.T) {
	tests := []struct {
		sel  Selection
		want string
	}{
		{NewCursorSelection(3), "Cursor(3)"},
		{NewSelection(1, 4), "Selection(1→4)"},
		{NewSelection(4, 1), "Selection(4←1)"},
	}

	for _, tt := range tests {
		if got := tt.sel.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
