package utils

import (
	"testing"
	"time"
)

func TestValidAttendance(t *testing.T) {
	for _, v := range []string{"hadir", "tidak_hadir", "belum_pasti"} {
		if !ValidAttendance(v) {
			t.Errorf("ValidAttendance(%q) = false", v)
		}
	}
	for _, v := range []string{"", "maybe", "HADIR", "yes"} {
		if ValidAttendance(v) {
			t.Errorf("ValidAttendance(%q) = true", v)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, v := range []string{"admin", "viewer"} {
		if !ValidRole(v) {
			t.Errorf("ValidRole(%q) = false", v)
		}
	}
	for _, v := range []string{"", "superuser", "ADMIN"} {
		if ValidRole(v) {
			t.Errorf("ValidRole(%q) = true", v)
		}
	}
}

func TestValidMusicSourceType(t *testing.T) {
	for _, v := range []string{"mp3", "youtube", "upload"} {
		if !ValidMusicSourceType(v) {
			t.Errorf("ValidMusicSourceType(%q) = false", v)
		}
	}
	for _, v := range []string{"", "spotify", "MP3"} {
		if ValidMusicSourceType(v) {
			t.Errorf("ValidMusicSourceType(%q) = true", v)
		}
	}
}

func TestNormalizeGuestCount(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{5, 5},
		{10, 10},
		{11, 10},
		{100, 10},
	}
	for _, tc := range cases {
		if got := NormalizeGuestCount(tc.in); got != tc.want {
			t.Errorf("NormalizeGuestCount(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Budi@Example.COM "); got != "budi@example.com" {
		t.Errorf("got %q", got)
	}
}

func TestParseEventDateWithTime(t *testing.T) {
	got, err := ParseEventDate("2026-12-12", "08:30")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := time.Date(2026, 12, 12, 8, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseEventDateBareDate(t *testing.T) {
	got, err := ParseEventDate("2026-12-12", "")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := time.Date(2026, 12, 12, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("bare date should mean start of day: got %v", got)
	}
}

func TestParseEventDateInvalid(t *testing.T) {
	if _, err := ParseEventDate("12 Desember 2026", ""); err == nil {
		t.Error("expected error for unparseable date")
	}
	if _, err := ParseEventDate("", ""); err == nil {
		t.Error("expected error for empty date")
	}
}
