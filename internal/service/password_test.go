package service

import "testing"

func TestPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPassword(hash, "admin123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
