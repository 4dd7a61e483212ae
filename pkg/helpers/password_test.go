package helpers

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash must differ from the plain text")
	}
	if !CompareHashAndPassword(hash, "hunter22") {
		t.Error("stored hash must match the original password")
	}
	if CompareHashAndPassword(hash, "hunter23") {
		t.Error("wrong password must not match")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("bcrypt output must differ per call")
	}
}
