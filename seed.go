package main

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

const (
	demoEmail    = "demo@undanganku.id"
	demoPassword = "demo1234"
)

// seedDemoData creates a demo account with one fully populated
// invitation so a fresh install has something to look at
func seedDemoData(app core.App) error {
	if existing, _ := app.FindAuthRecordByEmail(utils.CollectionUsers, demoEmail); existing != nil {
		log.Printf("[Seed] Demo account already exists (%s)", demoEmail)
		return nil
	}

	usersCollection, err := app.FindCollectionByNameOrId(utils.CollectionUsers)
	if err != nil {
		return fmt.Errorf("users collection: %w", err)
	}

	user := core.NewRecord(usersCollection)
	user.SetEmail(demoEmail)
	user.Set("name", "Demo Undanganku")
	user.Set(utils.FieldRole, "admin")
	user.SetPassword(demoPassword)
	user.SetVerified(true)
	if err := app.Save(user); err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}

	invitationsCollection, err := app.FindCollectionByNameOrId(utils.CollectionInvitations)
	if err != nil {
		return fmt.Errorf("invitations collection: %w", err)
	}

	invitation := Invitation{
		Theme: utils.ThemeFloral,
		Groom: CoupleInfo{
			Name:       "Raka",
			FullName:   "Raka Pratama, S.T.",
			FatherName: "Budi Santoso",
			MotherName: "Sri Wahyuni",
			ChildOrder: "pertama",
			Instagram:  "rakapratama",
		},
		Bride: CoupleInfo{
			Name:       "Sinta",
			FullName:   "Sinta Dewi, S.E.",
			FatherName: "Agus Hidayat",
			MotherName: "Rina Kusuma",
			ChildOrder: "kedua",
			Instagram:  "sintadewi",
		},
		Events: []EventInfo{
			{
				Name:      "Akad Nikah",
				Date:      "2026-12-12",
				TimeStart: "08:00",
				TimeEnd:   "10:00",
				VenueName: "Masjid Agung Al-Azhar",
				Address:   "Jl. Sisingamangaraja, Kebayoran Baru, Jakarta Selatan",
				MapsURL:   "https://maps.google.com/?q=Masjid+Agung+Al-Azhar",
			},
			{
				Name:      "Resepsi",
				Date:      "2026-12-12",
				TimeStart: "11:00",
				TimeEnd:   "14:00",
				VenueName: "Balai Kartini",
				Address:   "Jl. Gatot Subroto Kav. 37, Jakarta Selatan",
				MapsURL:   "https://maps.google.com/?q=Balai+Kartini",
			},
		},
		LoveStory: []LoveStoryItem{
			{ID: RandomHex(8), Date: "2020-03-14", Title: "Pertemuan Pertama", Description: "Kami bertemu di sebuah acara kampus dan mulai saling mengenal."},
			{ID: RandomHex(8), Date: "2024-08-17", Title: "Lamaran", Description: "Raka melamar Sinta di hadapan kedua keluarga."},
		},
		Gifts: []GiftAccount{
			{ID: RandomHex(8), BankName: "BCA", AccountNumber: "1234567890", AccountHolder: "Raka Pratama"},
		},
		Settings: DefaultSettings(),
	}
	invitation.QuranVerse = DefaultQuranVerse
	invitation.QuranSurah = DefaultQuranSurah

	record := core.NewRecord(invitationsCollection)
	record.Set("user_id", user.Id)
	ApplyInvitationInput(record, invitation)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("create demo invitation: %w", err)
	}

	log.Printf("[Seed] Created demo account %s / %s", demoEmail, demoPassword)
	log.Printf("[Seed] Demo invitation at /undangan/%s", record.Id)
	return nil
}
