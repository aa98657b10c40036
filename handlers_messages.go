package main

import (
	"log"

	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

// findOwnedMessage loads a message and verifies the caller owns its
// parent invitation
func findOwnedMessage(app core.App, re *core.RequestEvent, messageID string) (*core.Record, error) {
	record, err := app.FindRecordById(utils.CollectionMessages, messageID)
	if err != nil {
		return nil, utils.NotFoundResponse(re, "Message not found")
	}

	invitation, err := app.FindRecordById(utils.CollectionInvitations, record.GetString(utils.FieldInvitation))
	if err != nil || invitation.GetString("user_id") != re.Auth.Id {
		return nil, utils.ForbiddenResponse(re, "Not authorized")
	}
	return record, nil
}

// handleListMessages returns all messages of an owned invitation,
// newest first
func handleListMessages(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		invitation, err := findOwnedInvitation(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		messages, err := findInvitationMessages(app, invitation.Id)
		if err != nil {
			log.Printf("[Messages] List failed for %s: %v", invitation.Id, err)
			return utils.InternalErrorResponse(re, "Failed to load messages")
		}
		return utils.DataResponse(re, messages)
	}
}

type replyRequest struct {
	Reply string `json:"reply"`
}

// handleReplyMessage sets or replaces the reply on a message
func handleReplyMessage(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		record, err := findOwnedMessage(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		var req replyRequest
		if err := re.BindBody(&req); err != nil {
			return utils.BadRequestResponse(re, "Invalid request body")
		}

		record.Set("reply", req.Reply)
		if err := app.Save(record); err != nil {
			log.Printf("[Messages] Reply failed for %s: %v", record.Id, err)
			return utils.InternalErrorResponse(re, "Could not save reply")
		}

		utils.AuditSuccess(app, re, utils.AuditActionMessageReply, record.Id, nil)
		return utils.DataResponse(re, messageToResponse(record))
	}
}

// handleDeleteMessage removes a message from an owned invitation
func handleDeleteMessage(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		record, err := findOwnedMessage(app, re, re.Request.PathValue("id"))
		if err != nil {
			return err
		}

		if err := app.Delete(record); err != nil {
			log.Printf("[Messages] Delete failed for %s: %v", record.Id, err)
			return utils.InternalErrorResponse(re, "Could not delete message")
		}

		utils.AuditSuccess(app, re, utils.AuditActionMessageDelete, record.Id, nil)
		return utils.SuccessResponse(re, "Message deleted successfully")
	}
}
