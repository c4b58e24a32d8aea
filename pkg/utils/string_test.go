package utils

import (
	"strings"
	"testing"
)

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(16)
	if len(s) != 16 {
		t.Fatalf("expected length 16, got %d", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(charset, r) {
			t.Fatalf("unexpected character %q", r)
		}
	}
}

func TestGenerateRandomStringDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateRandomString(16)] = true
	}
	if len(seen) < 50 {
		t.Fatalf("expected 50 distinct tokens, got %d", len(seen))
	}
}
