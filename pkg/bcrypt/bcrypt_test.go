package bcrypt

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash must differ from the plaintext")
	}

	if err := ComparePassword(hash, "secret123"); err != nil {
		t.Fatalf("expected matching password, got %v", err)
	}
	if err := ComparePassword(hash, "secret124"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}
