package bot

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCleanStripsFeat(t *testing.T) {
	cleaner := newLabelCleaner()

	got := cleaner.Clean("Lonely feat. Some Rapper")
	if got != "Lonely" {
		t.Errorf("Expected 'Lonely', got %q", got)
	}

	got = cleaner.Clean("Lonely (ft. Some Rapper)")
	if got != "Lonely" {
		t.Errorf("Expected 'Lonely', got %q", got)
	}
}

func TestCleanStripsGuffParens(t *testing.T) {
	cleaner := newLabelCleaner()

	got := cleaner.Clean(`Tum Hi Ho (From "Aashiqui 2")`)
	if got != "Tum Hi Ho" {
		t.Errorf("Expected 'Tum Hi Ho', got %q", got)
	}

	got = cleaner.Clean("Believer (Remastered 2019)")
	if got != "Believer" {
		t.Errorf("Expected 'Believer', got %q", got)
	}
}

func TestCleanKeepsMeaningfulParens(t *testing.T) {
	cleaner := newLabelCleaner()

	got := cleaner.Clean("(I Can't Get No) Satisfaction")
	if !strings.Contains(got, "Satisfaction") {
		t.Errorf("Meaningful title content was lost: %q", got)
	}
}

func TestCleanTruncatesLongLabels(t *testing.T) {
	cleaner := newLabelCleaner()

	long := strings.Repeat("অ", 100)
	got := cleaner.Clean(long)
	if utf8.RuneCountInString(got) > maxLabelRunes {
		t.Errorf("Label too long: %d runes", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
}
