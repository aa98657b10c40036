package migrations

import (
	"log"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/types"
)

func init() {
	m.Register(func(app core.App) error {
		existing, _ := app.FindCollectionByNameOrId("audit_logs")
		if existing != nil {
			log.Println("[Migration] audit_logs collection already exists")
			return nil
		}

		collection := core.NewBaseCollection("audit_logs")
		collection.Fields.Add(
			&core.TextField{
				Id:   "audit_user",
				Name: "user",
				Max:  50,
			},
			&core.SelectField{
				Id:        "audit_action",
				Name:      "action",
				Required:  true,
				MaxSelect: 1,
				Values: []string{
					"auth_login", "auth_register",
					"invitation_create", "invitation_update", "invitation_delete",
					"rsvp_submit", "rsvp_delete",
					"message_submit", "message_reply", "message_delete",
					"guest_create", "guest_update", "guest_delete",
					"music_upload",
				},
			},
			&core.TextField{
				Id:   "audit_resource",
				Name: "resource",
				Max:  200,
			},
			&core.TextField{
				Id:   "audit_ip",
				Name: "ip",
				Max:  45, // IPv6 max length
			},
			&core.JSONField{
				Id:      "audit_metadata",
				Name:    "metadata",
				MaxSize: 10000,
			},
			&core.SelectField{
				Id:        "audit_status",
				Name:      "status",
				Required:  true,
				MaxSelect: 1,
				Values:    []string{"success", "failure"},
			},
			&core.AutodateField{
				Id:       "audit_created",
				Name:     "created",
				OnCreate: true,
			},
		)

		collection.Indexes = []string{
			"CREATE INDEX idx_audit_user ON audit_logs (user)",
			"CREATE INDEX idx_audit_action ON audit_logs (action)",
			"CREATE INDEX idx_audit_created ON audit_logs (created)",
		}

		// Admin read only; entries are written by the app itself
		collection.ListRule = types.Pointer("@request.auth.role = 'admin'")
		collection.ViewRule = types.Pointer("@request.auth.role = 'admin'")
		collection.CreateRule = nil
		collection.UpdateRule = nil
		collection.DeleteRule = nil

		if err := app.Save(collection); err != nil {
			return err
		}

		log.Println("[Migration] Created audit_logs collection")
		return nil
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("audit_logs")
		if err != nil {
			return nil
		}
		return app.Delete(collection)
	})
}
