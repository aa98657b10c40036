package utils

// Collection names
const (
	CollectionUsers       = "users"
	CollectionInvitations = "invitations"
	CollectionRSVPs       = "rsvps"
	CollectionMessages    = "messages"
	CollectionGuests      = "guests"
	CollectionAuditLogs   = "audit_logs"
)

// Field names
const (
	FieldRole       = "role"
	FieldInvitation = "invitation"
	FieldSettings   = "settings"
)

// Theme identifiers. ThemeDefault is substituted for unknown keys.
const (
	ThemeAdat    = "adat"
	ThemeFloral  = "floral"
	ThemeModern  = "modern"
	ThemeDefault = ThemeFloral
)

var ThemeKeys = []string{ThemeAdat, ThemeFloral, ThemeModern}

// Attendance values for RSVP submissions
const (
	AttendanceYes   = "hadir"
	AttendanceNo    = "tidak_hadir"
	AttendanceMaybe = "belum_pasti"
)

var AttendanceValues = []string{AttendanceYes, AttendanceNo, AttendanceMaybe}

// Guest count bounds for attending RSVPs
const (
	MinGuestCount = 1
	MaxGuestCount = 10
)

// Music source types for settings.music_list entries
var MusicSourceTypes = []string{"mp3", "youtube", "upload"}

// User roles
var UserRoles = []string{"admin", "viewer"}

// File size limits (in bytes)
const (
	MaxMusicFileSize = 10485760 // 10MB
)
