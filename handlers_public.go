package main

import (
	"log"
	"strings"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

type publicInvitationResponse struct {
	Invitation
	ThemeData Theme `json:"theme_data"`
}

type rsvpResponse struct {
	ID           string `json:"id"`
	InvitationID string `json:"invitation_id"`
	GuestName    string `json:"guest_name"`
	Phone        string `json:"phone"`
	Attendance   string `json:"attendance"`
	GuestCount   int    `json:"guest_count"`
	Created      string `json:"created_at"`
}

type messageResponse struct {
	ID           string `json:"id"`
	InvitationID string `json:"invitation_id"`
	GuestName    string `json:"guest_name"`
	Message      string `json:"message"`
	Reply        string `json:"reply"`
	Created      string `json:"created_at"`
}

func rsvpToResponse(record *core.Record) rsvpResponse {
	return rsvpResponse{
		ID:           record.Id,
		InvitationID: record.GetString(utils.FieldInvitation),
		GuestName:    record.GetString("guest_name"),
		Phone:        record.GetString("phone"),
		Attendance:   record.GetString("attendance"),
		GuestCount:   record.GetInt("guest_count"),
		Created:      record.GetDateTime("created").String(),
	}
}

func messageToResponse(record *core.Record) messageResponse {
	return messageResponse{
		ID:           record.Id,
		InvitationID: record.GetString(utils.FieldInvitation),
		GuestName:    record.GetString("guest_name"),
		Message:      record.GetString("message"),
		Reply:        record.GetString("reply"),
		Created:      record.GetDateTime("created").String(),
	}
}

func findInvitationMessages(app core.App, invitationID string) ([]messageResponse, error) {
	records, err := app.FindRecordsByFilter(
		utils.CollectionMessages,
		"invitation = {:invitationId}",
		"-created",
		0,
		0,
		dbx.Params{"invitationId": invitationID},
	)
	if err != nil {
		return nil, err
	}
	messages := make([]messageResponse, 0, len(records))
	for _, record := range records {
		messages = append(messages, messageToResponse(record))
	}
	return messages, nil
}

// handlePublicInvitation returns the invitation document with its
// resolved theme bundle attached
func handlePublicInvitation(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		record, err := app.FindRecordById(utils.CollectionInvitations, re.Request.PathValue("id"))
		if err != nil {
			return utils.NotFoundResponse(re, "Invitation not found")
		}

		inv := InvitationFromRecord(record)
		return utils.DataResponse(re, publicInvitationResponse{
			Invitation: inv,
			ThemeData:  ResolveTheme(inv.Theme),
		})
	}
}

// handlePublicMessages returns an invitation's messages, newest first
func handlePublicMessages(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		messages, err := findInvitationMessages(app, re.Request.PathValue("id"))
		if err != nil {
			log.Printf("[Messages] Public list failed: %v", err)
			return utils.InternalErrorResponse(re, "Failed to load messages")
		}
		return utils.DataResponse(re, messages)
	}
}

type rsvpRequest struct {
	GuestName  string `json:"guest_name"`
	Phone      string `json:"phone"`
	Attendance string `json:"attendance"`
	GuestCount int    `json:"guest_count"`
}

// handleSubmitRSVP records a guest's attendance response
func handleSubmitRSVP(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		invitation, err := app.FindRecordById(utils.CollectionInvitations, re.Request.PathValue("id"))
		if err != nil {
			return utils.NotFoundResponse(re, "Invitation not found")
		}

		var req rsvpRequest
		if err := re.BindBody(&req); err != nil {
			return utils.BadRequestResponse(re, "Invalid request body")
		}

		req.GuestName = strings.TrimSpace(req.GuestName)
		if req.GuestName == "" {
			return utils.BadRequestResponse(re, "Guest name is required")
		}
		if !utils.ValidAttendance(req.Attendance) {
			return utils.BadRequestResponse(re, "Invalid attendance value")
		}

		collection, err := app.FindCollectionByNameOrId(utils.CollectionRSVPs)
		if err != nil {
			return utils.InternalErrorResponse(re, "RSVPs collection not found")
		}

		record := core.NewRecord(collection)
		record.Set(utils.FieldInvitation, invitation.Id)
		record.Set("guest_name", req.GuestName)
		record.Set("phone", req.Phone)
		record.Set("attendance", req.Attendance)
		record.Set("guest_count", utils.NormalizeGuestCount(req.GuestCount))

		if err := app.Save(record); err != nil {
			log.Printf("[RSVP] Save failed for invitation %s: %v", invitation.Id, err)
			return utils.InternalErrorResponse(re, "Could not save RSVP")
		}

		utils.AuditSuccess(app, re, utils.AuditActionRSVPSubmit, record.Id, map[string]any{
			"invitation": invitation.Id,
			"attendance": req.Attendance,
		})
		notifyNewRSVP(app, invitation, record)

		return utils.DataResponse(re, rsvpToResponse(record))
	}
}

type messageRequest struct {
	GuestName string `json:"guest_name"`
	Message   string `json:"message"`
}

// handleSubmitMessage records a guest's well-wish. Blank messages are
// rejected before anything is stored.
func handleSubmitMessage(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		invitation, err := app.FindRecordById(utils.CollectionInvitations, re.Request.PathValue("id"))
		if err != nil {
			return utils.NotFoundResponse(re, "Invitation not found")
		}

		var req messageRequest
		if err := re.BindBody(&req); err != nil {
			return utils.BadRequestResponse(re, "Invalid request body")
		}

		req.GuestName = strings.TrimSpace(req.GuestName)
		req.Message = strings.TrimSpace(req.Message)
		if req.GuestName == "" {
			return utils.BadRequestResponse(re, "Guest name is required")
		}
		if req.Message == "" {
			return utils.BadRequestResponse(re, "Message is required")
		}

		collection, err := app.FindCollectionByNameOrId(utils.CollectionMessages)
		if err != nil {
			return utils.InternalErrorResponse(re, "Messages collection not found")
		}

		record := core.NewRecord(collection)
		record.Set(utils.FieldInvitation, invitation.Id)
		record.Set("guest_name", req.GuestName)
		record.Set("message", req.Message)
		record.Set("reply", "")

		if err := app.Save(record); err != nil {
			log.Printf("[Messages] Save failed for invitation %s: %v", invitation.Id, err)
			return utils.InternalErrorResponse(re, "Could not save message")
		}

		utils.AuditSuccess(app, re, utils.AuditActionMessageSubmit, record.Id, map[string]any{
			"invitation": invitation.Id,
		})
		notifyNewMessage(app, invitation, record)

		return utils.DataResponse(re, messageToResponse(record))
	}
}

// handleAPIRoot is a small liveness/info endpoint
func handleAPIRoot() func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		return utils.DataResponse(re, map[string]string{
			"message": "Wedding Invitation API",
			"version": "2.0",
		})
	}
}
