package search

import "testing"

func assertHistory(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestAddToHistoryPrependsNewestFirst(t *testing.T) {
	history := AddToHistory(nil, "honey")
	history = AddToHistory(history, "basket")

	assertHistory(t, history, "basket", "honey")
}

func TestAddToHistoryDedupesCaseInsensitively(t *testing.T) {
	history := []string{"honey", "basket", "mango"}

	history = AddToHistory(history, "HONEY")

	// The newest casing wins and moves to the front.
	assertHistory(t, history, "HONEY", "basket", "mango")
}

func TestAddToHistoryCapsAtFive(t *testing.T) {
	var history []string
	for _, term := range []string{"a", "b", "c", "d", "e", "f"} {
		history = AddToHistory(history, term)
	}

	assertHistory(t, history, "f", "e", "d", "c", "b")
}

func TestAddToHistoryIgnoresBlankTerms(t *testing.T) {
	history := []string{"honey"}

	history = AddToHistory(history, "   ")

	assertHistory(t, history, "honey")
}

func TestAddToHistoryTrimsWhitespace(t *testing.T) {
	history := AddToHistory(nil, "  mango  ")

	assertHistory(t, history, "mango")
}
