package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}
	if !Verify(hashed, "s3cret-pass") {
		t.Error("correct password rejected")
	}
	if Verify(hashed, "wrong-pass") {
		t.Error("wrong password accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}
