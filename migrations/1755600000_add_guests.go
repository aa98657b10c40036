package migrations

import (
	"log"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		existing, _ := app.FindCollectionByNameOrId("guests")
		if existing != nil {
			log.Println("[Migration] guests collection already exists")
			return nil
		}

		invitations, err := app.FindCollectionByNameOrId("invitations")
		if err != nil {
			return err
		}

		collection := core.NewBaseCollection("guests")
		collection.Fields.Add(
			&core.RelationField{
				Id:            "guest_invitation",
				Name:          "invitation",
				Required:      true,
				CollectionId:  invitations.Id,
				MaxSelect:     1,
				CascadeDelete: true,
			},
			&core.TextField{
				Id:       "guest_name",
				Name:     "name",
				Required: true,
				Max:      200,
			},
			&core.AutodateField{
				Id:       "guest_created",
				Name:     "created",
				OnCreate: true,
			},
			&core.AutodateField{
				Id:       "guest_updated",
				Name:     "updated",
				OnCreate: true,
				OnUpdate: true,
			},
		)

		collection.Indexes = []string{
			"CREATE INDEX idx_guests_invitation ON guests (invitation)",
		}

		collection.ListRule = nil
		collection.ViewRule = nil
		collection.CreateRule = nil
		collection.UpdateRule = nil
		collection.DeleteRule = nil

		if err := app.Save(collection); err != nil {
			return err
		}

		log.Println("[Migration] Created guests collection")
		return nil
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("guests")
		if err != nil {
			return nil
		}
		return app.Delete(collection)
	})
}
