package session

import (
	"bytes"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	s, err := NewSealer("correct horse battery staple")
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}

	sealed, err := s.Seal("eyJhbGciOiJIUzI1NiJ9.payload.sig")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if bytes.Contains(sealed, []byte("payload")) {
		t.Error("sealed data contains plaintext")
	}

	got, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got != "eyJhbGciOiJIUzI1NiJ9.payload.sig" {
		t.Errorf("Open = %q", got)
	}
}

func TestSealUsesFreshNonce(t *testing.T) {
	s, _ := NewSealer("secret")
	a, _ := s.Seal("same")
	b, _ := s.Seal("same")
	if bytes.Equal(a, b) {
		t.Error("two seals of the same plaintext should differ")
	}
}

func TestOpenWrongSecret(t *testing.T) {
	s1, _ := NewSealer("secret-one")
	s2, _ := NewSealer("secret-two")

	sealed, _ := s1.Seal("token")
	if _, err := s2.Open(sealed); err == nil {
		t.Error("expected error opening with a different secret")
	}
}

func TestOpenTooSmall(t *testing.T) {
	s, _ := NewSealer("secret")
	if _, err := s.Open([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for short input")
	}
}

func TestNewSealerEmptySecret(t *testing.T) {
	if _, err := NewSealer(""); err == nil {
		t.Error("expected error for empty secret")
	}
}
