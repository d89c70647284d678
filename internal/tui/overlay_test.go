package tui

import (
	"strings"
	"testing"
)

func TestOverlayAt(t *testing.T) {
	base := strings.Join([]string{"aaaa", "bbbb", "cccc"}, "\n")
	got := overlayAt(base, "XX", 1, 1, 4, 3)
	lines := splitLines(got)
	if lines[1] != "bXXb" {
		t.Fatalf("middle line = %q, want %q", lines[1], "bXXb")
	}
	if lines[0] != "aaaa" || lines[2] != "cccc" {
		t.Fatalf("untouched lines changed: %q", got)
	}
}

func TestOverlayBottomSheetPartiallyVisible(t *testing.T) {
	base := strings.Join([]string{".....", ".....", ".....", ".....", "....."}, "\n")
	sheet := strings.Join([]string{"S1", "S2", "S3"}, "\n")

	got := splitLines(overlayBottomSheet(base, sheet, 5, 5, 2))

	if !strings.Contains(got[3], "S1") {
		t.Fatalf("row 3 = %q, want sheet top line", got[3])
	}
	if !strings.Contains(got[4], "S2") {
		t.Fatalf("row 4 = %q, want second sheet line", got[4])
	}
	if strings.Contains(strings.Join(got[:3], "\n"), "S") {
		t.Fatal("sheet leaked above its visible window")
	}
}

func TestOverlayBottomSheetClampsToViewport(t *testing.T) {
	base := strings.Join([]string{"...", "...", "..."}, "\n")
	sheet := strings.Join([]string{"S1", "S2", "S3", "S4", "S5"}, "\n")

	got := splitLines(overlayBottomSheet(base, sheet, 3, 3, 5))
	if len(got) != 3 {
		t.Fatalf("viewport grew to %d lines", len(got))
	}
	if !strings.Contains(got[0], "S1") {
		t.Fatalf("row 0 = %q, want sheet clamped from the top", got[0])
	}
}

func TestPadRightAndTruncate(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcd", 2); got != "abcd" {
		t.Errorf("padRight should not shrink: %q", got)
	}
	if got := truncate("abcdef", 3); got != "ab…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("ab", 0); got != "" {
		t.Errorf("truncate width 0 = %q", got)
	}
}
