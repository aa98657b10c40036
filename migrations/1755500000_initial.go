package migrations

import (
	"log"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		// Extend the default users collection first
		if err := extendUsersCollection(app); err != nil {
			return err
		}

		// Invitations before the collections that reference them
		invitationsID, err := createInvitationsCollection(app)
		if err != nil {
			return err
		}

		if err := createRSVPsCollection(app, invitationsID); err != nil {
			return err
		}

		if err := createMessagesCollection(app, invitationsID); err != nil {
			return err
		}

		return nil
	}, nil)
}

func extendUsersCollection(app core.App) error {
	collection, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		// Users collection should exist by default
		return nil
	}

	if !fieldExists(collection, "role") {
		collection.Fields.Add(&core.SelectField{
			Id:        "users_role",
			Name:      "role",
			Required:  false,
			MaxSelect: 1,
			Values:    []string{"admin", "viewer"},
		})
	}

	if !fieldExists(collection, "name") {
		collection.Fields.Add(&core.TextField{
			Id:       "users_name",
			Name:     "name",
			Required: false,
			Max:      200,
		})
	}

	if err := app.Save(collection); err != nil {
		return err
	}

	log.Println("[Migration] Extended users collection")
	return nil
}

func createInvitationsCollection(app core.App) (string, error) {
	existing, _ := app.FindCollectionByNameOrId("invitations")
	if existing != nil {
		log.Println("[Migration] invitations collection already exists")
		return existing.Id, nil
	}

	usersCollection, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		return "", err
	}

	collection := core.NewBaseCollection("invitations")
	collection.Fields.Add(
		&core.RelationField{
			Id:            "inv_user",
			Name:          "user_id",
			Required:      true,
			CollectionId:  usersCollection.Id,
			MaxSelect:     1,
			CascadeDelete: true,
		},
		&core.SelectField{
			Id:        "inv_theme",
			Name:      "theme",
			Required:  false,
			MaxSelect: 1,
			Values:    []string{"adat", "floral", "modern"},
		},
		&core.TextField{
			Id:   "inv_cover_photo",
			Name: "cover_photo",
			Max:  1000,
		},
		&core.JSONField{
			Id:      "inv_groom",
			Name:    "groom",
			MaxSize: 10000,
		},
		&core.JSONField{
			Id:      "inv_bride",
			Name:    "bride",
			MaxSize: 10000,
		},
		&core.JSONField{
			Id:      "inv_events",
			Name:    "events",
			MaxSize: 50000,
		},
		&core.JSONField{
			Id:      "inv_love_story",
			Name:    "love_story",
			MaxSize: 100000,
		},
		&core.JSONField{
			Id:      "inv_gallery",
			Name:    "gallery",
			MaxSize: 100000,
		},
		&core.JSONField{
			Id:      "inv_gifts",
			Name:    "gifts",
			MaxSize: 20000,
		},
		&core.TextField{
			Id:   "inv_opening_text",
			Name: "opening_text",
			Max:  2000,
		},
		&core.TextField{
			Id:   "inv_closing_text",
			Name: "closing_text",
			Max:  2000,
		},
		&core.TextField{
			Id:   "inv_quran_verse",
			Name: "quran_verse",
			Max:  2000,
		},
		&core.TextField{
			Id:   "inv_quran_surah",
			Name: "quran_surah",
			Max:  200,
		},
		&core.TextField{
			Id:   "inv_video_url",
			Name: "video_url",
			Max:  1000,
		},
		&core.TextField{
			Id:   "inv_streaming_url",
			Name: "streaming_url",
			Max:  1000,
		},
		&core.JSONField{
			Id:      "inv_settings",
			Name:    "settings",
			MaxSize: 50000,
		},
		&core.AutodateField{
			Id:       "inv_created",
			Name:     "created",
			OnCreate: true,
		},
		&core.AutodateField{
			Id:       "inv_updated",
			Name:     "updated",
			OnCreate: true,
			OnUpdate: true,
		},
	)

	collection.Indexes = []string{
		"CREATE INDEX idx_invitations_user ON invitations (user_id)",
	}

	// All access goes through custom routes
	collection.ListRule = nil
	collection.ViewRule = nil
	collection.CreateRule = nil
	collection.UpdateRule = nil
	collection.DeleteRule = nil

	if err := app.Save(collection); err != nil {
		return "", err
	}

	log.Println("[Migration] Created invitations collection")
	return collection.Id, nil
}

func createRSVPsCollection(app core.App, invitationsID string) error {
	existing, _ := app.FindCollectionByNameOrId("rsvps")
	if existing != nil {
		log.Println("[Migration] rsvps collection already exists")
		return nil
	}

	collection := core.NewBaseCollection("rsvps")
	collection.Fields.Add(
		&core.RelationField{
			Id:            "rsvp_invitation",
			Name:          "invitation",
			Required:      true,
			CollectionId:  invitationsID,
			MaxSelect:     1,
			CascadeDelete: true,
		},
		&core.TextField{
			Id:       "rsvp_guest_name",
			Name:     "guest_name",
			Required: true,
			Max:      200,
		},
		&core.TextField{
			Id:   "rsvp_phone",
			Name: "phone",
			Max:  50,
		},
		&core.SelectField{
			Id:        "rsvp_attendance",
			Name:      "attendance",
			Required:  true,
			MaxSelect: 1,
			Values:    []string{"hadir", "tidak_hadir", "belum_pasti"},
		},
		&core.NumberField{
			Id:      "rsvp_guest_count",
			Name:    "guest_count",
			OnlyInt: true,
		},
		&core.AutodateField{
			Id:       "rsvp_created",
			Name:     "created",
			OnCreate: true,
		},
	)

	collection.Indexes = []string{
		"CREATE INDEX idx_rsvps_invitation ON rsvps (invitation)",
		"CREATE INDEX idx_rsvps_guest_name ON rsvps (invitation, guest_name)",
	}

	collection.ListRule = nil
	collection.ViewRule = nil
	collection.CreateRule = nil
	collection.UpdateRule = nil
	collection.DeleteRule = nil

	if err := app.Save(collection); err != nil {
		return err
	}

	log.Println("[Migration] Created rsvps collection")
	return nil
}

func createMessagesCollection(app core.App, invitationsID string) error {
	existing, _ := app.FindCollectionByNameOrId("messages")
	if existing != nil {
		log.Println("[Migration] messages collection already exists")
		return nil
	}

	collection := core.NewBaseCollection("messages")
	collection.Fields.Add(
		&core.RelationField{
			Id:            "msg_invitation",
			Name:          "invitation",
			Required:      true,
			CollectionId:  invitationsID,
			MaxSelect:     1,
			CascadeDelete: true,
		},
		&core.TextField{
			Id:       "msg_guest_name",
			Name:     "guest_name",
			Required: true,
			Max:      200,
		},
		&core.TextField{
			Id:       "msg_message",
			Name:     "message",
			Required: true,
			Max:      2000,
		},
		&core.TextField{
			Id:   "msg_reply",
			Name: "reply",
			Max:  2000,
		},
		&core.AutodateField{
			Id:       "msg_created",
			Name:     "created",
			OnCreate: true,
		},
	)

	collection.Indexes = []string{
		"CREATE INDEX idx_messages_invitation ON messages (invitation)",
		"CREATE INDEX idx_messages_created ON messages (invitation, created)",
	}

	collection.ListRule = nil
	collection.ViewRule = nil
	collection.CreateRule = nil
	collection.UpdateRule = nil
	collection.DeleteRule = nil

	if err := app.Save(collection); err != nil {
		return err
	}

	log.Println("[Migration] Created messages collection")
	return nil
}

func fieldExists(collection *core.Collection, name string) bool {
	return collection.Fields.GetByName(name) != nil
}
