package main

import (
	"testing"
)

// TestNewHistoryCmd tests the history command creation.
//
// Execution tests live in the database package; running the command here
// would touch the real XDG data directory.
func TestNewHistoryCmd(t *testing.T) {
	t.Parallel()

	cmd := NewHistoryCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "history [url]" {
			t.Errorf("expected use 'history [url]', got %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"limit", "full", "auto-surface"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %q flag", name)
			}
		}
	})

	t.Run("limit default", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("limit")
		if flag.DefValue != "20" {
			t.Errorf("limit default = %q, want 20", flag.DefValue)
		}
	})
}
