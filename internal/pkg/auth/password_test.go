package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hashed == "correct horse battery staple" {
		t.Fatal("HashPassword() returned the plaintext")
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("HashPassword() = %q, expected a bcrypt hash", hashed)
	}

	if !CheckPassword(hashed, "correct horse battery staple") {
		t.Error("CheckPassword() rejected the original password")
	}
	if CheckPassword(hashed, "wrong password") {
		t.Error("CheckPassword() accepted a wrong password")
	}
	if CheckPassword("not-a-hash", "anything") {
		t.Error("CheckPassword() accepted a malformed hash")
	}
}
