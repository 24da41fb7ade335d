package editline

import "testing"

func TestLine_SetContent_RoundTrip(t *testing.T) {
	// Testable property #7.
	tests := []string{"", "abc", "héllo", "☃", "a☃b"}
	for _, s := range tests {
		l := New("", "")
		l.SetContent(s)
		if got := l.Content(); got != s {
			t.Errorf("Content() = %q, want %q", got, s)
		}
		if got, want := l.CursorPosition(), l.graphemeCount(); got != want {
			t.Errorf("CursorPosition() = %d, want %d", got, want)
		}
	}
}

func TestLine_GraphemeSafety(t *testing.T) {
	// Testable property #8: a multi-byte grapheme surrounded by ASCII.
	l := New("", "a☃b")
	l.End()
	l.Left() // should land just before 'b', i.e. cursor at the grapheme boundary
	if l.CursorPosition() != 2 {
		t.Fatalf("cursor position after one Left from end = %d, want 2", l.CursorPosition())
	}
	r := l.Render()
	if r.Cursor != "b" {
		t.Fatalf("cursor grapheme = %q, want %q", r.Cursor, "b")
	}

	l.Left() // now before the snowman
	if l.Render().Cursor != "☃" {
		t.Fatalf("cursor grapheme = %q, want snowman", l.Render().Cursor)
	}
	l.Delete() // should remove the whole snowman in one keystroke
	if l.Content() != "ab" {
		t.Fatalf("Content() after Delete = %q, want %q", l.Content(), "ab")
	}
}

func TestLine_InsertAndBackspace(t *testing.T) {
	tests := []struct {
		note      string
		before    string
		cursor    int
		op        func(l *Line)
		wantValue string
		wantPos   int
	}{
		{
			note:      "insert ASCII mid-string",
			before:    "ac",
			cursor:    1,
			op:        func(l *Line) { l.InsertRune('b') },
			wantValue: "abc",
			wantPos:   2,
		},
		{
			note:   "backspace at start is a no-op",
			before: "abc",
			cursor: 0,
			op:     func(l *Line) { l.Backspace() },
			wantValue: "abc",
			wantPos:   0,
		},
		{
			note:      "backspace deletes previous grapheme",
			before:    "abc",
			cursor:    3,
			op:        func(l *Line) { l.Backspace() },
			wantValue: "ab",
			wantPos:   2,
		},
		{
			note:   "delete at end is a no-op",
			before: "abc",
			cursor: 3,
			op:     func(l *Line) { l.Delete() },
			wantValue: "abc",
			wantPos:   3,
		},
	}

	for _, tt := range tests {
		l := New("", tt.before)
		l.cursor = tt.cursor
		tt.op(l)
		if l.Content() != tt.wantValue {
			t.Errorf("%s: Content() = %q, want %q", tt.note, l.Content(), tt.wantValue)
		}
		if l.CursorPosition() != tt.wantPos {
			t.Errorf("%s: CursorPosition() = %d, want %d", tt.note, l.CursorPosition(), tt.wantPos)
		}
	}
}

func TestLine_HomeEndLeftRight(t *testing.T) {
	l := New("", "abc")
	l.Home()
	if l.CursorPosition() != 0 {
		t.Fatalf("Home: cursor = %d, want 0", l.CursorPosition())
	}
	l.Right()
	if l.CursorPosition() != 1 {
		t.Fatalf("Right: cursor = %d, want 1", l.CursorPosition())
	}
	l.End()
	if l.CursorPosition() != 3 {
		t.Fatalf("End: cursor = %d, want 3", l.CursorPosition())
	}
	l.Left()
	if l.CursorPosition() != 2 {
		t.Fatalf("Left: cursor = %d, want 2", l.CursorPosition())
	}
}
