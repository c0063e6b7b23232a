package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if hash == "s3cret-password" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if !Verify("s3cret-password", hash) {
		t.Error("expected correct password to verify")
	}
	if Verify("wrong-password", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestVerifyAgainstGarbageHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Error("expected verification against a garbage hash to fail")
	}
}
