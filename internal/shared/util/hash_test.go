package util

import "testing"

func TestHashUserKeyStable(t *testing.T) {
	a := HashUserKey("user-1")
	b := HashUserKey("user-1")
	if a != b {
		t.Fatalf("expected stable hash, got %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestChecksumKnownValue(t *testing.T) {
	// sha256 of the empty payload.
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Checksum(nil); got != empty {
		t.Fatalf("Checksum(nil) = %q, want %q", got, empty)
	}
	if Checksum([]byte("a")) == Checksum([]byte("b")) {
		t.Fatal("different payloads must not collide")
	}
}
