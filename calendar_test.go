package main

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestGoogleCalendarURL(t *testing.T) {
	event := EventInfo{
		Name:      "Akad Nikah",
		Date:      "2026-12-12",
		TimeStart: "08:00",
		TimeEnd:   "10:00",
		VenueName: "Masjid Agung",
		Address:   "Jl. Melati No. 1, Jakarta",
	}

	raw := GoogleCalendarURL("Raka", "Sinta", event)
	if raw == "" {
		t.Fatal("empty URL")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Host != "calendar.google.com" || parsed.Path != "/calendar/render" {
		t.Errorf("unexpected base: %s://%s%s", parsed.Scheme, parsed.Host, parsed.Path)
	}

	q := parsed.Query()
	if q.Get("action") != "TEMPLATE" {
		t.Errorf("action = %q", q.Get("action"))
	}
	if q.Get("text") != "Pernikahan Raka & Sinta" {
		t.Errorf("text = %q", q.Get("text"))
	}
	if q.Get("location") != event.Address {
		t.Errorf("location = %q", q.Get("location"))
	}
	if q.Get("details") != event.VenueName {
		t.Errorf("details = %q", q.Get("details"))
	}

	start, _ := time.ParseInLocation("2006-01-02 15:04", "2026-12-12 08:00", time.Local)
	end, _ := time.ParseInLocation("2006-01-02 15:04", "2026-12-12 10:00", time.Local)
	wantDates := start.UTC().Format("20060102T150405Z") + "/" + end.UTC().Format("20060102T150405Z")
	if q.Get("dates") != wantDates {
		t.Errorf("dates = %q, want %q", q.Get("dates"), wantDates)
	}
}

func TestGoogleCalendarURLMissingEndTime(t *testing.T) {
	event := EventInfo{Date: "2026-12-12", TimeStart: "08:00"}

	raw := GoogleCalendarURL("A", "B", event)
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	dates := parsed.Query().Get("dates")
	parts := strings.Split(dates, "/")
	if len(parts) != 2 || parts[0] != parts[1] {
		t.Errorf("end should fall back to start: %q", dates)
	}
}

func TestGoogleCalendarURLBadDate(t *testing.T) {
	if got := GoogleCalendarURL("A", "B", EventInfo{Date: "not-a-date"}); got != "" {
		t.Errorf("want empty URL for unparseable date, got %q", got)
	}
}
