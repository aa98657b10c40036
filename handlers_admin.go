package main

import (
	"log"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

type auditLogResponse struct {
	ID       string         `json:"id"`
	User     string         `json:"user"`
	Action   string         `json:"action"`
	Resource string         `json:"resource"`
	IP       string         `json:"ip"`
	Status   string         `json:"status"`
	Metadata map[string]any `json:"metadata"`
	Created  string         `json:"created_at"`
}

func auditLogToResponse(record *core.Record) auditLogResponse {
	entry := auditLogResponse{
		ID:       record.Id,
		User:     record.GetString("user"),
		Action:   record.GetString("action"),
		Resource: record.GetString("resource"),
		IP:       record.GetString("ip"),
		Status:   record.GetString("status"),
		Created:  record.GetDateTime("created").String(),
	}
	if err := record.UnmarshalJSONField("metadata", &entry.Metadata); err != nil {
		entry.Metadata = nil
	}
	return entry
}

// handleListAuditLogs returns the newest audit entries, optionally
// filtered by action. Admin only.
func handleListAuditLogs(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		filter := "status != ''"
		params := dbx.Params{}
		if action := re.Request.URL.Query().Get("action"); action != "" {
			filter = filter + " && action = {:action}"
			params["action"] = action
		}

		records, err := app.FindRecordsByFilter(
			utils.CollectionAuditLogs,
			filter,
			"-created",
			200,
			0,
			params,
		)
		if err != nil {
			log.Printf("[Audit] List failed: %v", err)
			return utils.InternalErrorResponse(re, "Failed to load audit logs")
		}

		entries := make([]auditLogResponse, 0, len(records))
		for _, record := range records {
			entries = append(entries, auditLogToResponse(record))
		}
		return utils.DataResponse(re, entries)
	}
}
