package main

import (
	"testing"
	"time"
)

func TestRemainingPassed(t *testing.T) {
	now := time.Date(2026, 12, 12, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		target time.Time
	}{
		{"exactly now", now},
		{"one second ago", now.Add(-time.Second)},
		{"long past", now.AddDate(-1, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cd := Remaining(tc.target, now)
			if !cd.Passed {
				t.Error("Passed = false")
			}
			if cd.Days != "00" || cd.Hours != "00" || cd.Minutes != "00" || cd.Seconds != "00" {
				t.Errorf("fields not zeroed: %+v", cd)
			}
		})
	}
}

func TestRemainingFuture(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// 1 day, 1 hour, 1 minute, 1 second ahead
	cd := Remaining(now.Add(90061*time.Second), now)
	if cd.Passed {
		t.Error("Passed = true for future target")
	}
	if cd.Days != "01" || cd.Hours != "01" || cd.Minutes != "01" || cd.Seconds != "01" {
		t.Errorf("got %s/%s/%s/%s, want 01/01/01/01", cd.Days, cd.Hours, cd.Minutes, cd.Seconds)
	}
}

func TestRemainingZeroPadding(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	cd := Remaining(now.Add(5*time.Second), now)
	if cd.Seconds != "05" {
		t.Errorf("Seconds = %q, want 05", cd.Seconds)
	}
	if cd.Days != "00" {
		t.Errorf("Days = %q, want 00", cd.Days)
	}
}

func TestRemainingLargeDayCount(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	cd := Remaining(now.AddDate(0, 0, 365), now)
	if cd.Days != "365" {
		t.Errorf("Days = %q, want 365", cd.Days)
	}
}

func TestRemainingSubSecondTruncation(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	cd := Remaining(now.Add(1500*time.Millisecond), now)
	if cd.Seconds != "01" {
		t.Errorf("Seconds = %q, want 01", cd.Seconds)
	}
}
