package utils

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// --- HTTP Response Helpers ---

// ErrorResponse returns a JSON error response with the given status code and message
func ErrorResponse(re *core.RequestEvent, status int, message string) error {
	return re.JSON(status, map[string]string{"error": message})
}

// NotFoundResponse returns a 404 JSON error response
func NotFoundResponse(re *core.RequestEvent, message string) error {
	return ErrorResponse(re, http.StatusNotFound, message)
}

// BadRequestResponse returns a 400 JSON error response
func BadRequestResponse(re *core.RequestEvent, message string) error {
	return ErrorResponse(re, http.StatusBadRequest, message)
}

// InternalErrorResponse returns a 500 JSON error response
func InternalErrorResponse(re *core.RequestEvent, message string) error {
	return ErrorResponse(re, http.StatusInternalServerError, message)
}

// ForbiddenResponse returns a 403 JSON error response
func ForbiddenResponse(re *core.RequestEvent, message string) error {
	return ErrorResponse(re, http.StatusForbidden, message)
}

// UnauthorizedResponse returns a 401 JSON error response
func UnauthorizedResponse(re *core.RequestEvent, message string) error {
	return ErrorResponse(re, http.StatusUnauthorized, message)
}

// SuccessResponse returns a 200 JSON success response with a message
func SuccessResponse(re *core.RequestEvent, message string) error {
	return re.JSON(http.StatusOK, map[string]string{"message": message})
}

// DataResponse returns a 200 JSON response with arbitrary data
func DataResponse(re *core.RequestEvent, data any) error {
	return re.JSON(http.StatusOK, data)
}

// --- Validation Helpers ---

// ValidAttendance reports whether v is one of the accepted RSVP attendance values.
func ValidAttendance(v string) bool {
	for _, a := range AttendanceValues {
		if v == a {
			return true
		}
	}
	return false
}

// ValidRole reports whether v is one of the accepted user roles.
func ValidRole(v string) bool {
	for _, r := range UserRoles {
		if v == r {
			return true
		}
	}
	return false
}

// ValidMusicSourceType reports whether v is an accepted music source type.
func ValidMusicSourceType(v string) bool {
	for _, t := range MusicSourceTypes {
		if v == t {
			return true
		}
	}
	return false
}

// NormalizeGuestCount clamps a submitted guest count into the accepted
// range. Zero (unset) becomes the default of 1.
func NormalizeGuestCount(n int) int {
	if n < MinGuestCount {
		return MinGuestCount
	}
	if n > MaxGuestCount {
		return MaxGuestCount
	}
	return n
}

// NormalizeEmail normalizes an email address (lowercase, trimmed)
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Date Helpers ---

// ParseEventDate parses an event date in the formats invitations store:
// a bare date, a date with a time, or a full RFC3339 timestamp. A bare
// date means start of day.
func ParseEventDate(dateStr, timeStart string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty event date")
	}

	if timeStart != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStart, time.Local); err == nil {
			return t, nil
		}
	}

	formats := []string{
		"2006-01-02",
		"2006-01-02 15:04",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return t, nil
		}
	}

	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("could not parse event date: %s", dateStr)
}
