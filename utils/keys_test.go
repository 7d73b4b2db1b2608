package utils

import "testing"

func TestChatRoomKey_Deterministic(t *testing.T) {
	a := ChatRoomKey("c1", "u2", "u1")
	b := ChatRoomKey("c1", "u2", "u1")
	if a != b {
		t.Fatalf("ChatRoomKey not deterministic: %q vs %q", a, b)
	}
	if a != "c1_u2_u1" {
		t.Fatalf("ChatRoomKey = %q, want %q", a, "c1_u2_u1")
	}
}

func TestChatRoomKey_UniquePerTriple(t *testing.T) {
	keys := map[string]bool{
		ChatRoomKey("c1", "u2", "u1"): true,
		ChatRoomKey("c1", "u1", "u2"): true,
		ChatRoomKey("c2", "u2", "u1"): true,
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 distinct keys, got %d", len(keys))
	}
}

func TestEnrollmentKey(t *testing.T) {
	got := EnrollmentKey("u1", "c9")
	if got != "u1_c9" {
		t.Fatalf("EnrollmentKey = %q, want %q", got, "u1_c9")
	}
	if EnrollmentKey("u1", "c9") != got {
		t.Fatal("EnrollmentKey not deterministic")
	}
}
