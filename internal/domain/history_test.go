package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

func TestHistory_RecordIsImmutable(t *testing.T) {
	h0 := domain.NewHistory(3)
	h1 := h0.Record("a")
	h2 := h1.Record("b")

	if h0.Len() != 0 {
		t.Errorf("original history changed: %v", h0.IDs())
	}
	if diff := cmp.Diff([]string{"a"}, h1.IDs()); diff != "" {
		t.Errorf("h1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, h2.IDs()); diff != "" {
		t.Errorf("h2 mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_EvictsOldest(t *testing.T) {
	h := domain.NewHistory(3)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		h = h.Record(id)
	}
	if diff := cmp.Diff([]string{"c", "d", "e"}, h.IDs()); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if h.Contains("a") {
		t.Error("evicted id still reported")
	}
}

func TestHistory_CountsRepeats(t *testing.T) {
	h := domain.NewHistory(8).Record("a").Record("b").Record("a")
	if got := h.Count("a"); got != 2 {
		t.Errorf("Count(a) = %d, want 2", got)
	}
	if got := h.Last(); got != "a" {
		t.Errorf("Last() = %q, want a", got)
	}
	if diff := cmp.Diff([]string{"a", "b"}, h.Recent(2)); diff != "" {
		t.Errorf("Recent mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHistory_ClampsCapacity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, domain.DefaultHistorySize},
		{-4, domain.DefaultHistorySize},
		{5, 5},
		{100, 32},
	}
	for _, tt := range tests {
		if got := domain.NewHistory(tt.in).Cap(); got != tt.want {
			t.Errorf("NewHistory(%d).Cap() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHistory_ZeroValueUsable(t *testing.T) {
	var h domain.History
	h = h.Record("a")
	if h.Cap() != domain.DefaultHistorySize || h.Last() != "a" {
		t.Errorf("zero history: cap=%d last=%q", h.Cap(), h.Last())
	}
}
