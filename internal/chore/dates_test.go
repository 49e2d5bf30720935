package chore

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2026-08-24")
	if !ok {
		t.Fatal("expected 2026-08-24 to parse")
	}
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("date = %v, want %v", d, want)
	}
}

func TestParseDateMalformed(t *testing.T) {
	for _, s := range []string{"", "yesterday", "24/08/2026", "2026-13-01"} {
		if _, ok := ParseDate(s); ok {
			t.Errorf("expected %q not to parse", s)
		}
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("minus5", -5*3600)
	late := time.Date(2026, 8, 24, 23, 45, 0, 0, loc)

	got := DateOf(late)
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	if got := daysBetween(a, b); got != 4 {
		t.Errorf("daysBetween = %d, want 4", got)
	}
	if got := daysBetween(b, a); got != -4 {
		t.Errorf("daysBetween reversed = %d, want -4", got)
	}
}
