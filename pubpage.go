package main

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PageComposition decides which sections the rendered page contains.
// Cover, hero, quote, couple, events and closing always render; the
// rest depend on data presence and the invitation's display flags.
type PageComposition struct {
	ShowCountdown bool
	ShowLoveStory bool
	ShowGallery   bool
	ShowVideo     bool
	ShowRSVP      bool
	ShowMessages  bool
	ShowGifts     bool
	ShowMusic     bool
}

// ComposePage computes the section set for an invitation. A section is
// present only when its flag is on and its backing data exists.
func ComposePage(inv Invitation) PageComposition {
	s := inv.Settings
	_, hasMusic := ResolveActiveMusic(s)
	return PageComposition{
		ShowCountdown: s.ShowCountdown && len(inv.Events) > 0,
		ShowLoveStory: s.ShowLoveStory && len(inv.LoveStory) > 0,
		ShowGallery:   s.ShowGallery && len(inv.Gallery) > 0,
		ShowVideo:     s.ShowVideo && inv.VideoURL != "",
		ShowRSVP:      s.ShowRSVP,
		ShowMessages:  s.ShowMessages,
		ShowGifts:     s.ShowGift && len(inv.Gifts) > 0,
		ShowMusic:     hasMusic,
	}
}

// invitationPageData is everything the page template renders from
type invitationPageData struct {
	Invitation  Invitation
	Theme       Theme
	Compose     PageComposition
	GuestName   string
	Countdown   Countdown
	TargetDate  string
	CalendarURL string
	Music       MusicItem
	MusicEmbed  string
	Messages    []messageResponse
}

// DefaultGuestName is used when a link carries no kpd parameter
const DefaultGuestName = "Tamu Undangan"

// buildPageData assembles the render model for an invitation page
func buildPageData(app core.App, inv Invitation, guestName string, now time.Time) invitationPageData {
	if guestName == "" {
		guestName = DefaultGuestName
	}

	data := invitationPageData{
		Invitation: inv,
		Theme:      ResolveTheme(inv.Theme),
		Compose:    ComposePage(inv),
		GuestName:  guestName,
	}

	if len(inv.Events) > 0 {
		first := inv.Events[0]
		if target, err := utils.ParseEventDate(first.Date, first.TimeStart); err == nil {
			data.Countdown = Remaining(target, now)
			data.TargetDate = target.Format(time.RFC3339)
		} else {
			data.Compose.ShowCountdown = false
		}
		data.CalendarURL = GoogleCalendarURL(inv.Groom.Name, inv.Bride.Name, first)
	}

	if music, ok := ResolveActiveMusic(inv.Settings); ok {
		data.Music = music
		if music.SourceType == "youtube" {
			data.MusicEmbed = YouTubeAudioEmbedURL(music.URL)
		}
	}

	if data.Compose.ShowMessages {
		messages, err := findInvitationMessages(app, inv.ID)
		if err != nil {
			log.Printf("[Page] Message load failed for %s: %v", inv.ID, err)
		} else {
			data.Messages = messages
		}
	}

	return data
}

// handleInvitationPage renders the public guest-facing invitation
func handleInvitationPage(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		record, err := app.FindRecordById(utils.CollectionInvitations, re.Request.PathValue("id"))
		if err != nil {
			return renderNotFoundPage(re)
		}

		inv := InvitationFromRecord(record)
		data := buildPageData(app, inv, re.Request.URL.Query().Get("kpd"), time.Now())

		re.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplates.ExecuteTemplate(re.Response, "invitation.html", data); err != nil {
			log.Printf("[Page] Render failed for %s: %v", inv.ID, err)
			return utils.InternalErrorResponse(re, "Failed to render invitation")
		}
		return nil
	}
}

func renderNotFoundPage(re *core.RequestEvent) error {
	re.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	re.Response.WriteHeader(http.StatusNotFound)
	if err := pageTemplates.ExecuteTemplate(re.Response, "notfound.html", nil); err != nil {
		log.Printf("[Page] Not-found render failed: %v", err)
	}
	return nil
}
