package main

import (
	"log"
	"net/url"
	"strings"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

type guestResponse struct {
	ID           string `json:"id"`
	InvitationID string `json:"invitation_id"`
	Name         string `json:"name"`
	RSVPStatus   string `json:"rsvp_status"`
	Link         string `json:"link"`
	Created      string `json:"created_at"`
}

// BuildGuestLink builds the shareable per-guest invitation link with
// the guest name carried in the kpd query parameter
func BuildGuestLink(invitationID, guestName string) string {
	return "/undangan/" + invitationID + "?kpd=" + url.QueryEscape(guestName)
}

// lookupGuestRSVPStatus finds the attendance of an RSVP submitted
// under the exact same guest name, "" when none exists
func lookupGuestRSVPStatus(app core.App, invitationID, guestName string) string {
	records, err := app.FindRecordsByFilter(
		utils.CollectionRSVPs,
		"invitation = {:invitationId} && guest_name = {:guestName}",
		"-created",
		1,
		0,
		dbx.Params{"invitationId": invitationID, "guestName": guestName},
	)
	if err != nil || len(records) == 0 {
		return ""
	}
	return records[0].GetString("attendance")
}

func guestToResponse(app core.App, record *core.Record) guestResponse {
	invitationID := record.GetString(utils.FieldInvitation)
	name := record.GetString("name")
	return guestResponse{
		ID:           record.Id,
		InvitationID: invitationID,
		Name:         name,
		RSVPStatus:   lookupGuestRSVPStatus(app, invitationID, name),
		Link:         BuildGuestLink(invitationID, name),
		Created:      record.GetDateTime("created").String(),
	}
}

// findOwnedGuest loads a guest record scoped to an owned invitation
func findOwnedGuest(app core.App, re *core.RequestEvent, invitationID, guestID string) (*core.Record, error) {
	record, err := app.FindRecordById(utils.CollectionGuests, guestID)
	if err != nil || record.GetString(utils.FieldInvitation) != invitationID {
		return nil, utils.NotFoundResponse(re, "Guest not found")
	}
	return record, nil
}

// handleListGuests returns the guest list of an owned invitation
func handleListGuests(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		invitation, err := findOwnedInvitation(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		records, err := app.FindRecordsByFilter(
			utils.CollectionGuests,
			"invitation = {:invitationId}",
			"created",
			0,
			0,
			dbx.Params{"invitationId": invitation.Id},
		)
		if err != nil {
			log.Printf("[Guests] List failed for %s: %v", invitation.Id, err)
			return utils.InternalErrorResponse(re, "Failed to load guests")
		}

		guests := make([]guestResponse, 0, len(records))
		for _, record := range records {
			guests = append(guests, guestToResponse(app, record))
		}
		return utils.DataResponse(re, guests)
	}
}

type guestRequest struct {
	Name string `json:"name"`
}

// handleCreateGuest adds a guest to an owned invitation
func handleCreateGuest(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		invitation, err := findOwnedInvitation(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		var req guestRequest
		if err := re.BindBody(&req); err != nil {
			return utils.BadRequestResponse(re, "Invalid request body")
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return utils.BadRequestResponse(re, "Guest name is required")
		}

		collection, err := app.FindCollectionByNameOrId(utils.CollectionGuests)
		if err != nil {
			return utils.InternalErrorResponse(re, "Guests collection not found")
		}

		record := core.NewRecord(collection)
		record.Set(utils.FieldInvitation, invitation.Id)
		record.Set("name", req.Name)

		if err := app.Save(record); err != nil {
			log.Printf("[Guests] Create failed for %s: %v", invitation.Id, err)
			return utils.InternalErrorResponse(re, "Could not create guest")
		}

		utils.AuditSuccess(app, re, utils.AuditActionGuestCreate, record.Id, map[string]any{
			"invitation": invitation.Id,
		})
		return utils.DataResponse(re, guestToResponse(app, record))
	}
}

// handleUpdateGuest renames a guest
func handleUpdateGuest(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		invitation, err := findOwnedInvitation(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		record, err := findOwnedGuest(app, re, invitation.Id, re.Request.PathValue("guestId"))
		if err != nil {
			return err
		}

		var req guestRequest
		if err := re.BindBody(&req); err != nil {
			return utils.BadRequestResponse(re, "Invalid request body")
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return utils.BadRequestResponse(re, "Guest name is required")
		}

		record.Set("name", req.Name)
		if err := app.Save(record); err != nil {
			log.Printf("[Guests] Update failed for %s: %v", record.Id, err)
			return utils.InternalErrorResponse(re, "Could not update guest")
		}

		utils.AuditSuccess(app, re, utils.AuditActionGuestUpdate, record.Id, nil)
		return utils.DataResponse(re, guestToResponse(app, record))
	}
}

// handleDeleteGuest removes a guest from an owned invitation
func handleDeleteGuest(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		invitation, err := findOwnedInvitation(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		record, err := findOwnedGuest(app, re, invitation.Id, re.Request.PathValue("guestId"))
		if err != nil {
			return err
		}

		if err := app.Delete(record); err != nil {
			log.Printf("[Guests] Delete failed for %s: %v", record.Id, err)
			return utils.InternalErrorResponse(re, "Could not delete guest")
		}

		utils.AuditSuccess(app, re, utils.AuditActionGuestDelete, record.Id, nil)
		return utils.SuccessResponse(re, "Guest deleted successfully")
	}
}
