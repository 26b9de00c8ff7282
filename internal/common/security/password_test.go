package security

import "testing"

func TestHashPassword_NotPlaintext(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if hash == "" {
		t.Fatal("hash must not be empty")
	}
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPasswordHash("secret1", hash) {
		t.Fatal("correct password must verify")
	}
	if CheckPasswordHash("secret2", hash) {
		t.Fatal("wrong password must not verify")
	}
	if CheckPasswordHash("secret1", "not-a-hash") {
		t.Fatal("garbage hash must not verify")
	}
}
