package main

import (
	"log"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

// findOwnedInvitation loads an invitation and verifies the requesting
// user owns it. Missing and not-owned both come back as not found so
// ids cannot be probed.
func findOwnedInvitation(app core.App, re *core.RequestEvent, invitationID string) (*core.Record, error) {
	record, err := app.FindRecordById(utils.CollectionInvitations, invitationID)
	if err != nil {
		return nil, utils.NotFoundResponse(re, "Invitation not found")
	}
	if record.GetString("user_id") != re.Auth.Id {
		return nil, utils.NotFoundResponse(re, "Invitation not found")
	}
	return record, nil
}

// handleListInvitations returns all invitations owned by the user
func handleListInvitations(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter(
			utils.CollectionInvitations,
			"user_id = {:userId}",
			"-created",
			100,
			0,
			dbx.Params{"userId": re.Auth.Id},
		)
		if err != nil {
			log.Printf("[Invitations] List failed for %s: %v", re.Auth.Id, err)
			return utils.InternalErrorResponse(re, "Failed to load invitations")
		}

		invitations := make([]Invitation, 0, len(records))
		for _, record := range records {
			invitations = append(invitations, InvitationFromRecord(record))
		}
		return utils.DataResponse(re, invitations)
	}
}

// handleGetInvitation returns a single owned invitation
func handleGetInvitation(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		record, err := findOwnedInvitation(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}
		return utils.DataResponse(re, InvitationFromRecord(record))
	}
}

// handleCreateInvitation creates an invitation for the user
func handleCreateInvitation(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		// Settings keys the client omits keep their defaults
		input := Invitation{Settings: DefaultSettings()}
		if err := re.BindBody(&input); err != nil {
			return utils.BadRequestResponse(re, "Invalid request body")
		}

		if input.Groom.Name == "" || input.Bride.Name == "" {
			return utils.BadRequestResponse(re, "Groom and bride names are required")
		}

		if input.QuranVerse == "" {
			input.QuranVerse = DefaultQuranVerse
		}
		if input.QuranSurah == "" {
			input.QuranSurah = DefaultQuranSurah
		}

		collection, err := app.FindCollectionByNameOrId(utils.CollectionInvitations)
		if err != nil {
			return utils.InternalErrorResponse(re, "Invitations collection not found")
		}

		record := core.NewRecord(collection)
		record.Set("user_id", re.Auth.Id)
		ApplyInvitationInput(record, input)

		if err := app.Save(record); err != nil {
			log.Printf("[Invitations] Create failed for %s: %v", re.Auth.Id, err)
			return utils.BadRequestResponse(re, "Could not create invitation")
		}

		utils.AuditSuccess(app, re, utils.AuditActionInvitationCreate, record.Id, nil)
		return utils.DataResponse(re, InvitationFromRecord(record))
	}
}

// handleUpdateInvitation replaces an owned invitation's document
func handleUpdateInvitation(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		record, err := findOwnedInvitation(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		input := Invitation{Settings: DefaultSettings()}
		if err := re.BindBody(&input); err != nil {
			return utils.BadRequestResponse(re, "Invalid request body")
		}

		ApplyInvitationInput(record, input)

		if err := app.Save(record); err != nil {
			log.Printf("[Invitations] Update failed for %s: %v", record.Id, err)
			return utils.BadRequestResponse(re, "Could not update invitation")
		}

		utils.AuditSuccess(app, re, utils.AuditActionInvitationUpdate, record.Id, nil)
		return utils.DataResponse(re, InvitationFromRecord(record))
	}
}

// handleDeleteInvitation deletes an owned invitation. Related RSVPs,
// messages and guests cascade through their relations.
func handleDeleteInvitation(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		record, err := findOwnedInvitation(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		if err := app.Delete(record); err != nil {
			log.Printf("[Invitations] Delete failed for %s: %v", record.Id, err)
			return utils.InternalErrorResponse(re, "Could not delete invitation")
		}

		utils.AuditSuccess(app, re, utils.AuditActionInvitationDelete, record.Id, nil)
		return utils.SuccessResponse(re, "Invitation deleted successfully")
	}
}

type statsResponse struct {
	TotalRSVP     int `json:"total_rsvp"`
	Attending     int `json:"attending"`
	NotAttending  int `json:"not_attending"`
	Uncertain     int `json:"uncertain"`
	TotalGuests   int `json:"total_guests"`
	TotalMessages int `json:"total_messages"`
}

// handleInvitationStats aggregates RSVP and message counts. Guest
// totals only count confirmed attendees.
func handleInvitationStats(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		record, err := findOwnedInvitation(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		rsvps, err := app.FindRecordsByFilter(
			utils.CollectionRSVPs,
			"invitation = {:invitationId}",
			"",
			0,
			0,
			dbx.Params{"invitationId": record.Id},
		)
		if err != nil {
			log.Printf("[Stats] RSVP query failed for %s: %v", record.Id, err)
			return utils.InternalErrorResponse(re, "Failed to load stats")
		}

		stats := statsResponse{TotalRSVP: len(rsvps)}
		for _, rsvp := range rsvps {
			switch rsvp.GetString("attendance") {
			case utils.AttendanceYes:
				stats.Attending++
				stats.TotalGuests += rsvp.GetInt("guest_count")
			case utils.AttendanceNo:
				stats.NotAttending++
			case utils.AttendanceMaybe:
				stats.Uncertain++
			}
		}

		messageCount, err := app.CountRecords(
			utils.CollectionMessages,
			dbx.NewExp("invitation = {:invitationId}", dbx.Params{"invitationId": record.Id}),
		)
		if err != nil {
			log.Printf("[Stats] Message count failed for %s: %v", record.Id, err)
			return utils.InternalErrorResponse(re, "Failed to load stats")
		}
		stats.TotalMessages = int(messageCount)

		return utils.DataResponse(re, stats)
	}
}
