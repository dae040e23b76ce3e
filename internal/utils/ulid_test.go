package utils

import (
	"strings"
	"testing"
)

func TestNewUlid(t *testing.T) {
	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 1000; i++ {
		id := NewUlid()
		if len(id) != 26 {
			t.Fatalf("expected 26 chars, got %d (%q)", len(id), id)
		}
		if id != strings.ToLower(id) {
			t.Fatalf("expected lowercase id, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		if id <= prev {
			t.Fatalf("expected %q to sort after %q", id, prev)
		}
		seen[id] = true
		prev = id
	}
}

func TestIsUlid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{NewUlid(), true},
		{strings.ToUpper(NewUlid()), true},
		{"", false},
		{"not-a-ulid", false},
		{"01hzx3k8v6m2q9r7t5w4y1b0c", false},
		{"../../control/status", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			if got := IsUlid(tc.in); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
