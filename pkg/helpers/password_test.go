package helpers

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" || strings.Contains(hash, "password123") {
		t.Fatal("hash must not contain the plaintext")
	}
	if !CompareHashAndPassword(hash, "password123") {
		t.Error("correct password did not verify")
	}
	if CompareHashAndPassword(hash, "password124") {
		t.Error("wrong password verified")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same input should differ")
	}
}

func TestBcryptPasswordService(t *testing.T) {
	svc := NewBcryptPasswordService()

	hash, err := svc.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !svc.Compare("password123", hash) {
		t.Error("Compare rejected the right password")
	}
	if svc.Compare("nope", hash) {
		t.Error("Compare accepted the wrong password")
	}
}
