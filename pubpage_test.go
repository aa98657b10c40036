package main

import (
	"bytes"
	"strings"
	"testing"
)

func fullInvitation() Invitation {
	settings := DefaultSettings()
	settings.MusicURL = "https://example.com/song.mp3"
	return NormalizeInvitation(Invitation{
		Theme:     "floral",
		Groom:     CoupleInfo{Name: "Raka"},
		Bride:     CoupleInfo{Name: "Sinta"},
		Events:    []EventInfo{{Name: "Akad", Date: "2026-12-12", TimeStart: "08:00"}},
		LoveStory: []LoveStoryItem{{Title: "Awal"}},
		Gallery:   []GalleryItem{{URL: "https://example.com/1.jpg"}},
		Gifts:     []GiftAccount{{BankName: "BCA"}},
		VideoURL:  "https://youtu.be/abc",
		Settings:  settings,
	})
}

func TestComposePageAllSectionsPresent(t *testing.T) {
	c := ComposePage(fullInvitation())
	if !c.ShowCountdown || !c.ShowLoveStory || !c.ShowGallery || !c.ShowVideo ||
		!c.ShowRSVP || !c.ShowMessages || !c.ShowGifts || !c.ShowMusic {
		t.Errorf("expected all sections present: %+v", c)
	}
}

func TestComposePageEmptyDataOmitsSections(t *testing.T) {
	inv := fullInvitation()
	inv.Gallery = nil
	inv.LoveStory = nil
	inv.Gifts = nil
	inv.VideoURL = ""
	inv.Settings.MusicURL = ""

	c := ComposePage(inv)
	if c.ShowGallery {
		t.Error("empty gallery should omit the gallery section")
	}
	if c.ShowLoveStory {
		t.Error("empty love story should omit the section")
	}
	if c.ShowGifts {
		t.Error("no gift accounts should omit the section")
	}
	if c.ShowVideo {
		t.Error("no video URL should omit the section")
	}
	if c.ShowMusic {
		t.Error("no music source should omit the player")
	}
}

func TestComposePageFlagsWinOverData(t *testing.T) {
	inv := fullInvitation()
	inv.Settings.ShowGallery = false
	inv.Settings.ShowLoveStory = false
	inv.Settings.ShowVideo = false
	inv.Settings.ShowGift = false
	inv.Settings.ShowCountdown = false
	inv.Settings.ShowRSVP = false
	inv.Settings.ShowMessages = false

	c := ComposePage(inv)
	if c.ShowGallery || c.ShowLoveStory || c.ShowVideo || c.ShowGifts ||
		c.ShowCountdown || c.ShowRSVP || c.ShowMessages {
		t.Errorf("disabled flags should hide sections even with data: %+v", c)
	}
}

func TestComposePageCountdownNeedsEvent(t *testing.T) {
	inv := fullInvitation()
	inv.Events = nil
	if ComposePage(inv).ShowCountdown {
		t.Error("countdown needs at least one event")
	}
}

func TestInvitationPageClientValidation(t *testing.T) {
	inv := fullInvitation()
	inv.Settings.MusicURL = "https://youtu.be/dQw4w9WgXcQ"

	music, ok := ResolveActiveMusic(inv.Settings)
	if !ok {
		t.Fatal("expected music")
	}

	data := invitationPageData{
		Invitation: inv,
		Theme:      ResolveTheme(inv.Theme),
		Compose:    ComposePage(inv),
		GuestName:  DefaultGuestName,
		Music:      music,
		MusicEmbed: YouTubeAudioEmbedURL(music.URL),
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "invitation.html", data); err != nil {
		t.Fatalf("render: %v", err)
	}
	page := buf.String()

	// Blank submissions must be stopped in the page, not by the server
	if !strings.Contains(page, "messageForm.message.value.trim()") {
		t.Error("message form should trim the message before posting")
	}
	if !strings.Contains(page, "rsvpForm.guest_name.value.trim()") {
		t.Error("rsvp form should trim the guest name before posting")
	}

	want := `data-src="https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&amp;loop=1&amp;playlist=dQw4w9WgXcQ"`
	if !strings.Contains(page, want) {
		t.Error("music iframe should carry a single well-formed embed URL")
	}
}

func TestInvitationTemplateRenders(t *testing.T) {
	if pageTemplates.Lookup("invitation.html") == nil {
		t.Fatal("invitation.html template missing")
	}
	if pageTemplates.Lookup("notfound.html") == nil {
		t.Fatal("notfound.html template missing")
	}
}
