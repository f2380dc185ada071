package env

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("PRINTHUB_TEST_VALUE", "  console ")
	if got := Get("PRINTHUB_TEST_VALUE", "json"); got != "console" {
		t.Fatalf("expected trimmed value, got %q", got)
	}

	t.Setenv("PRINTHUB_TEST_VALUE", "   ")
	if got := Get("PRINTHUB_TEST_VALUE", "json"); got != "json" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
}
