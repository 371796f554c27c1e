package id

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

var reSuffix = regexp.MustCompile(`^[0-9A-Z]{6}$`)

func TestNew_IsUUID(t *testing.T) {
	got := New()
	u, err := uuid.Parse(got)
	if err != nil {
		t.Fatalf("uuid.Parse(%q): %v", got, err)
	}
	if u.Version() != 4 {
		t.Fatalf("version = %d, want 4", u.Version())
	}
}

func TestSuffix_Format(t *testing.T) {
	for i := 0; i < 50; i++ {
		if got := Suffix(); !reSuffix.MatchString(got) {
			t.Fatalf("not 6-char uppercase base36: %q", got)
		}
	}
}

func TestSuffix_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		s := Suffix()
		if _, ok := seen[s]; ok {
			t.Fatalf("duplicate suffix after %d iterations: %q", i, s)
		}
		seen[s] = struct{}{}
	}
}

func TestNew_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := New()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}
