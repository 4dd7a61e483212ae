package email

import "testing"

func TestVerificationHash(t *testing.T) {
	// sha1 of the address, hex encoded, 40 chars.
	got := VerificationHash("alice@example.com")
	if len(got) != 40 {
		t.Fatalf("hash length = %d, want 40", len(got))
	}
	if got != VerificationHash("alice@example.com") {
		t.Error("hash must be deterministic")
	}
	if got == VerificationHash("bob@example.com") {
		t.Error("different addresses must hash differently")
	}
}
