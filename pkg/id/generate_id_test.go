package id

import (
	"regexp"
	"strings"
	"testing"
)

func TestNewID32(t *testing.T) {
	re := regexp.MustCompile(`^[a-f0-9]{32}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		got := NewID32()
		if !re.MatchString(got) {
			t.Fatalf("NewID32() = %q, want 32 lowercase hex chars", got)
		}
		if seen[got] {
			t.Fatalf("NewID32() produced a duplicate: %q", got)
		}
		seen[got] = true
	}
}

func TestNewMessageID(t *testing.T) {
	got := NewMessageID("mail.ashgrove.ie")
	if !strings.HasPrefix(got, "<") || !strings.HasSuffix(got, "@mail.ashgrove.ie>") {
		t.Fatalf("NewMessageID() = %q", got)
	}
	if NewMessageID("") == NewMessageID("") {
		t.Fatal("message ids must be unique")
	}
}
