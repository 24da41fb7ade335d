package config

import "testing"

func TestConfig_Overlay_FillsDefaultsOnly(t *testing.T) {
	c := New()
	c.Editor = "nano" // caller (CLI) already set this explicitly

	src := MapSource{
		"comment-char": ";",
		"undo-limit":   "100",
		"editor":       "emacs",
		"bind.Undo":    "Controlz, u",
	}
	if err := c.Overlay(src); err != nil {
		t.Fatalf("Overlay: %v", err)
	}

	if c.CommentChar != ';' {
		t.Errorf("CommentChar = %q, want ;", c.CommentChar)
	}
	if c.UndoLimit != 100 {
		t.Errorf("UndoLimit = %d, want 100", c.UndoLimit)
	}
	if c.Editor != "nano" {
		t.Errorf("Editor = %q, want nano (CLI override must win)", c.Editor)
	}
	if got := c.KeyBindings["Undo"]; len(got) != 2 || got[0] != "Controlz" || got[1] != "u" {
		t.Errorf("KeyBindings[Undo] = %v, want [Controlz u]", got)
	}
}

func TestConfig_Overlay_RejectsBadCommentChar(t *testing.T) {
	c := New()
	err := c.Overlay(MapSource{"comment-char": "##"})
	if err == nil {
		t.Error("expected an error for a multi-byte comment-char")
	}
}

func TestConfig_Overlay_NilSourceIsNoop(t *testing.T) {
	c := New()
	if err := c.Overlay(nil); err != nil {
		t.Errorf("Overlay(nil) = %v, want nil", err)
	}
	if c.CommentChar != DefaultCommentChar {
		t.Error("nil source must not change defaults")
	}
}
