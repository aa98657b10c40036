package main

import (
	"net/url"
	"time"
)

// GoogleCalendarURL builds a Google Calendar "add event" template link
// for the main wedding event. Returns "" when there is no usable start
// time. The end time falls back to start when time_end is missing.
func GoogleCalendarURL(groomName, brideName string, event EventInfo) string {
	start, err := parseEventMoment(event.Date, event.TimeStart)
	if err != nil {
		return ""
	}
	end, err := parseEventMoment(event.Date, event.TimeEnd)
	if err != nil || end.Before(start) {
		end = start
	}

	title := "Pernikahan " + groomName + " & " + brideName

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", title)
	q.Set("dates", calendarStamp(start)+"/"+calendarStamp(end))
	q.Set("location", event.Address)
	q.Set("details", event.VenueName)

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}

// calendarStamp formats a time in the basic UTC format Google Calendar
// template links expect
func calendarStamp(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func parseEventMoment(date, clock string) (time.Time, error) {
	if clock != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local); err == nil {
			return t, nil
		}
	}
	return time.ParseInLocation("2006-01-02", date, time.Local)
}
