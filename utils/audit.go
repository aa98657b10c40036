package utils

import (
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// Audit actions
const (
	AuditActionLogin            = "auth_login"
	AuditActionRegister         = "auth_register"
	AuditActionInvitationCreate = "invitation_create"
	AuditActionInvitationUpdate = "invitation_update"
	AuditActionInvitationDelete = "invitation_delete"
	AuditActionRSVPSubmit       = "rsvp_submit"
	AuditActionRSVPDelete       = "rsvp_delete"
	AuditActionMessageSubmit    = "message_submit"
	AuditActionMessageReply     = "message_reply"
	AuditActionMessageDelete    = "message_delete"
	AuditActionGuestCreate      = "guest_create"
	AuditActionGuestUpdate      = "guest_update"
	AuditActionGuestDelete      = "guest_delete"
	AuditActionMusicUpload      = "music_upload"
)

// Audit statuses
const (
	AuditStatusSuccess = "success"
	AuditStatusFailure = "failure"
)

// AuditEntry describes a single audit log entry
type AuditEntry struct {
	UserID   string
	Action   string
	Resource string
	IP       string
	Metadata map[string]any
	Status   string
}

// LogAudit writes an audit entry asynchronously so request handling
// never blocks on the audit trail
func LogAudit(app core.App, entry AuditEntry) {
	go func() {
		collection, err := app.FindCollectionByNameOrId(CollectionAuditLogs)
		if err != nil {
			log.Printf("[Audit] Collection not found: %v", err)
			return
		}

		record := core.NewRecord(collection)
		record.Set("user", entry.UserID)
		record.Set("action", entry.Action)
		record.Set("resource", entry.Resource)
		record.Set("ip", entry.IP)
		record.Set("status", entry.Status)
		if entry.Metadata != nil {
			record.Set("metadata", entry.Metadata)
		}

		if err := app.SaveNoValidate(record); err != nil {
			log.Printf("[Audit] Failed to save entry %s/%s: %v", entry.Action, entry.Resource, err)
		}
	}()
}

// AuditSuccess records a successful action from a request event
func AuditSuccess(app core.App, e *core.RequestEvent, action, resource string, metadata map[string]any) {
	userID := ""
	if e.Auth != nil {
		userID = e.Auth.Id
	}
	LogAudit(app, AuditEntry{
		UserID:   userID,
		Action:   action,
		Resource: resource,
		IP:       e.RealIP(),
		Metadata: metadata,
		Status:   AuditStatusSuccess,
	})
}

// AuditFailure records a failed action from a request event
func AuditFailure(app core.App, e *core.RequestEvent, action, resource string, metadata map[string]any) {
	userID := ""
	if e.Auth != nil {
		userID = e.Auth.Id
	}
	LogAudit(app, AuditEntry{
		UserID:   userID,
		Action:   action,
		Resource: resource,
		IP:       e.RealIP(),
		Metadata: metadata,
		Status:   AuditStatusFailure,
	})
}
