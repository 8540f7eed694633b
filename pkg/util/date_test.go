package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2026-01-01")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, ok := ParseDate("01.01.2026"); ok {
		t.Fatalf("expected not ok")
	}
	if _, ok := ParseDate(""); ok {
		t.Fatalf("expected not ok for empty")
	}
}

func TestParseDateDefault(t *testing.T) {
	def := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got := ParseDateDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	if s := FormatDate(d); s != "2026-01-31" {
		t.Fatalf("unexpected format %q", s)
	}
}

func TestFormatEuro(t *testing.T) {
	if s := FormatEuro(0.1); s != "€0.10" {
		t.Fatalf("unexpected euro format %q", s)
	}
}
