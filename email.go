package main

import (
	"fmt"
	"html"
	"log"
	"net/mail"
	"os"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/mailer"
	"github.com/undanganku/undanganku/utils"
)

// configureSMTP configures PocketBase's SMTP settings from the
// environment. Without credentials notifications stay disabled and
// everything else keeps working.
func configureSMTP(app core.App) {
	host := os.Getenv("SMTP_HOST")
	password := os.Getenv("SMTP_PASSWORD")
	if host == "" || password == "" {
		log.Println("[SMTP] No SMTP credentials configured, skipping SMTP setup")
		return
	}

	username := os.Getenv("SMTP_USERNAME")
	sender := os.Getenv("SMTP_SENDER")
	if sender == "" {
		sender = "noreply@undanganku.id"
	}

	settings := app.Settings()

	if settings.SMTP.Enabled && settings.SMTP.Host == host && settings.Meta.SenderAddress == sender {
		log.Println("[SMTP] Already configured correctly")
		return
	}

	settings.SMTP.Enabled = true
	settings.SMTP.Host = host
	settings.SMTP.Port = 587
	settings.SMTP.Username = username
	settings.SMTP.Password = password
	settings.SMTP.TLS = false

	settings.Meta.SenderName = "Undanganku"
	settings.Meta.SenderAddress = sender

	if err := app.Save(settings); err != nil {
		log.Printf("[SMTP] Failed to save settings: %v", err)
	} else {
		log.Println("[SMTP] Settings saved successfully")
	}
}

// wrapEmailHTML wraps content in the notification email shell
func wrapEmailHTML(content string) string {
	return `<!DOCTYPE html>
<html lang="id">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; line-height: 1.5; color: #202020; font-size: 16px; margin: 0; padding: 0; background: #FEFCFB;">
    <div style="max-width: 600px; margin: auto; padding: 24px;">
        <div style="text-align: center; padding: 16px 0;">
            <span style="font-size: 24px; color: #B76E79;">Undanganku</span>
        </div>
        <div style="background: #ffffff; padding: 24px; border-radius: 8px; border: 1px solid #F5E6E8;">
` + content + `
        </div>
        <p style="text-align: center; font-size: 12px; color: #9a9a9a; margin-top: 16px;">
            Email ini dikirim otomatis oleh Undanganku.
        </p>
    </div>
</body>
</html>`
}

// sendAdminNotification emails the invitation owner. Synchronous; the
// notify helpers call it from a goroutine.
func sendAdminNotification(app core.App, invitation *core.Record, subject, content string) {
	if !app.Settings().SMTP.Enabled {
		return
	}

	owner, err := app.FindRecordById(utils.CollectionUsers, invitation.GetString("user_id"))
	if err != nil {
		log.Printf("[Email] Owner lookup failed for invitation %s: %v", invitation.Id, err)
		return
	}

	msg := &mailer.Message{
		From:    mail.Address{Address: app.Settings().Meta.SenderAddress, Name: app.Settings().Meta.SenderName},
		To:      []mail.Address{{Address: owner.Email(), Name: owner.GetString("name")}},
		Subject: subject,
		HTML:    wrapEmailHTML(content),
	}

	if err := app.NewMailClient().Send(msg); err != nil {
		log.Printf("[Email] Failed to send %q to %s: %v", subject, owner.Email(), err)
	}
}

// notifyNewRSVP tells the invitation owner a guest responded. Fire and
// forget; failures are only logged.
func notifyNewRSVP(app core.App, invitation *core.Record, rsvp *core.Record) {
	guestName := rsvp.GetString("guest_name")
	attendance := rsvp.GetString("attendance")
	guestCount := rsvp.GetInt("guest_count")

	go func() {
		content := fmt.Sprintf(`
            <p style="margin: 0 0 16px 0;">Ada konfirmasi kehadiran baru di undangan Anda:</p>
            <p style="margin: 0 0 8px 0;"><strong>%s</strong></p>
            <p style="margin: 0 0 8px 0;">Kehadiran: %s</p>
            <p style="margin: 0;">Jumlah tamu: %d</p>
`, html.EscapeString(guestName), html.EscapeString(attendance), guestCount)
		sendAdminNotification(app, invitation, "Konfirmasi kehadiran baru", content)
	}()
}

// notifyNewMessage tells the invitation owner a guest left a message
func notifyNewMessage(app core.App, invitation *core.Record, message *core.Record) {
	guestName := message.GetString("guest_name")
	body := message.GetString("message")

	go func() {
		content := fmt.Sprintf(`
            <p style="margin: 0 0 16px 0;">Ada ucapan baru di undangan Anda:</p>
            <p style="margin: 0 0 8px 0;"><strong>%s</strong></p>
            <p style="margin: 0; font-style: italic;">&ldquo;%s&rdquo;</p>
`, html.EscapeString(guestName), html.EscapeString(body))
		sendAdminNotification(app, invitation, "Ucapan baru dari tamu", content)
	}()
}
