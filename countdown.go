package main

import (
	"fmt"
	"time"
)

// Countdown is a point-in-time snapshot of the remaining time until
// the main event, pre-formatted for display
type Countdown struct {
	Days    string `json:"days"`
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
	Passed  bool   `json:"passed"`
}

// Remaining computes the countdown from now to target. When the target
// has passed (or is exactly now) all fields are zero and Passed is set.
func Remaining(target, now time.Time) Countdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Countdown{
			Days:    "00",
			Hours:   "00",
			Minutes: "00",
			Seconds: "00",
			Passed:  true,
		}
	}

	totalSeconds := int64(diff / time.Second)
	days := totalSeconds / 86400
	hours := (totalSeconds % 86400) / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return Countdown{
		Days:    pad2(days),
		Hours:   pad2(hours),
		Minutes: pad2(minutes),
		Seconds: pad2(seconds),
	}
}

func pad2(n int64) string {
	return fmt.Sprintf("%02d", n)
}
