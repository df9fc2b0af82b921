package models

import "testing"

func TestSetPasswordHashes(t *testing.T) {
	u := &User{Username: "alice"}
	if err := u.SetPassword("hunter2"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if u.PasswordHash == "" || u.PasswordHash == "hunter2" {
		t.Fatalf("plaintext leaked into hash field: %q", u.PasswordHash)
	}
}

func TestCheckPasswordExactMatchOnly(t *testing.T) {
	u := &User{Username: "alice"}
	if err := u.SetPassword("hunter2"); err != nil {
		t.Fatalf("set password: %v", err)
	}

	if !u.CheckPassword("hunter2") {
		t.Fatal("correct password rejected")
	}
	for _, wrong := range []string{"", "hunter", "hunter22", "Hunter2", u.PasswordHash} {
		if u.CheckPassword(wrong) {
			t.Fatalf("password %q accepted", wrong)
		}
	}
}

func TestSetPasswordReplacesHash(t *testing.T) {
	u := &User{Username: "alice"}
	_ = u.SetPassword("old")
	_ = u.SetPassword("new")

	if u.CheckPassword("old") {
		t.Fatal("old password still verifies")
	}
	if !u.CheckPassword("new") {
		t.Fatal("new password rejected")
	}
}
