package scraper

import "testing"

func TestItemAccessors(t *testing.T) {
	t.Parallel()

	item := map[string]any{
		"text":      "hello",
		"empty":     "",
		"diggCount": float64(42),
		"weird":     []int{1},
	}

	if got := itemString(item, "text", "fallback"); got != "hello" {
		t.Errorf("itemString text = %q", got)
	}
	if got := itemString(item, "empty", "fallback"); got != "fallback" {
		t.Errorf("itemString empty = %q, want fallback", got)
	}
	if got := itemString(item, "missing", "fallback"); got != "fallback" {
		t.Errorf("itemString missing = %q, want fallback", got)
	}
	if got := itemString(item, "weird", "fallback"); got != "fallback" {
		t.Errorf("itemString non-string = %q, want fallback", got)
	}

	if got := itemInt(item, "diggCount"); got != 42 {
		t.Errorf("itemInt = %d, want 42", got)
	}
	if got := itemInt(item, "missing"); got != 0 {
		t.Errorf("itemInt missing = %d, want 0", got)
	}
	if got := itemInt(item, "text"); got != 0 {
		t.Errorf("itemInt non-number = %d, want 0", got)
	}
}
