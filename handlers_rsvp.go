package main

import (
	"log"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

// handleListRSVPs returns all RSVPs of an owned invitation
func handleListRSVPs(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		invitation, err := findOwnedInvitation(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		records, err := app.FindRecordsByFilter(
			utils.CollectionRSVPs,
			"invitation = {:invitationId}",
			"-created",
			0,
			0,
			dbx.Params{"invitationId": invitation.Id},
		)
		if err != nil {
			log.Printf("[RSVP] List failed for %s: %v", invitation.Id, err)
			return utils.InternalErrorResponse(re, "Failed to load RSVPs")
		}

		rsvps := make([]rsvpResponse, 0, len(records))
		for _, record := range records {
			rsvps = append(rsvps, rsvpToResponse(record))
		}
		return utils.DataResponse(re, rsvps)
	}
}

// handleDeleteRSVP removes an RSVP after checking the caller owns the
// parent invitation
func handleDeleteRSVP(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		record, err := app.FindRecordById(utils.CollectionRSVPs, re.Request.PathValue("id"))
		if err != nil {
			return utils.NotFoundResponse(re, "RSVP not found")
		}

		invitation, err := app.FindRecordById(utils.CollectionInvitations, record.GetString(utils.FieldInvitation))
		if err != nil || invitation.GetString("user_id") != re.Auth.Id {
			return utils.ForbiddenResponse(re, "Not authorized")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("[RSVP] Delete failed for %s: %v", record.Id, err)
			return utils.InternalErrorResponse(re, "Could not delete RSVP")
		}

		utils.AuditSuccess(app, re, utils.AuditActionRSVPDelete, record.Id, nil)
		return utils.SuccessResponse(re, "RSVP deleted successfully")
	}
}
