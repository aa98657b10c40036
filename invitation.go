package main

import (
	"log"

	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

// CoupleInfo describes one half of the couple
type CoupleInfo struct {
	Name       string `json:"name"`
	FullName   string `json:"full_name"`
	Photo      string `json:"photo"`
	FatherName string `json:"father_name"`
	MotherName string `json:"mother_name"`
	ChildOrder string `json:"child_order"`
	Instagram  string `json:"instagram"`
}

// EventInfo describes one ceremony or reception event
type EventInfo struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
	VenueName string `json:"venue_name"`
	Address   string `json:"address"`
	MapsURL   string `json:"maps_url"`
	MapsEmbed string `json:"maps_embed"`
}

// LoveStoryItem is one entry on the love story timeline
type LoveStoryItem struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// GalleryItem is one photo in the gallery
type GalleryItem struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// GiftAccount is one bank account guests can send gifts to
type GiftAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

// MusicItem is one entry in the invitation's music list
type MusicItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	SourceType string `json:"source_type"`
	URL        string `json:"url"`
	IsActive   bool   `json:"is_active"`
}

// InvitationSettings holds per-invitation display and music settings
type InvitationSettings struct {
	MusicURL       string      `json:"music_url"`
	MusicList      []MusicItem `json:"music_list"`
	ActiveMusicID  string      `json:"active_music_id"`
	PrimaryColor   string      `json:"primary_color"`
	SecondaryColor string      `json:"secondary_color"`
	AccentColor    string      `json:"accent_color"`
	FontHeading    string      `json:"font_heading"`
	FontBody       string      `json:"font_body"`
	AutoScroll     bool        `json:"auto_scroll"`
	ShowCountdown  bool        `json:"show_countdown"`
	ShowLoveStory  bool        `json:"show_love_story"`
	ShowGallery    bool        `json:"show_gallery"`
	ShowVideo      bool        `json:"show_video"`
	ShowGift       bool        `json:"show_gift"`
	ShowRSVP       bool        `json:"show_rsvp"`
	ShowMessages   bool        `json:"show_messages"`
}

// DefaultSettings returns the settings a new invitation starts with
func DefaultSettings() InvitationSettings {
	return InvitationSettings{
		MusicList:      []MusicItem{},
		PrimaryColor:   "#B76E79",
		SecondaryColor: "#F5E6E8",
		AccentColor:    "#D4AF37",
		FontHeading:    "Playfair Display",
		FontBody:       "Manrope",
		AutoScroll:     true,
		ShowCountdown:  true,
		ShowLoveStory:  true,
		ShowGallery:    true,
		ShowVideo:      true,
		ShowGift:       true,
		ShowRSVP:       true,
		ShowMessages:   true,
	}
}

// Invitation is the full invitation document
type Invitation struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	Theme        string             `json:"theme"`
	CoverPhoto   string             `json:"cover_photo"`
	Groom        CoupleInfo         `json:"groom"`
	Bride        CoupleInfo         `json:"bride"`
	Events       []EventInfo        `json:"events"`
	LoveStory    []LoveStoryItem    `json:"love_story"`
	Gallery      []GalleryItem      `json:"gallery"`
	Gifts        []GiftAccount      `json:"gifts"`
	OpeningText  string             `json:"opening_text"`
	ClosingText  string             `json:"closing_text"`
	VideoURL     string             `json:"video_url"`
	StreamingURL string             `json:"streaming_url"`
	QuranVerse   string             `json:"quran_verse"`
	QuranSurah   string             `json:"quran_surah"`
	Settings     InvitationSettings `json:"settings"`
	Created      string             `json:"created_at"`
	Updated      string             `json:"updated_at"`
}

// Default body texts used when an invitation leaves them blank
const (
	DefaultOpeningText = "Dengan memohon rahmat dan ridho Allah SWT, kami bermaksud menyelenggarakan acara pernikahan"
	DefaultClosingText = "Merupakan suatu kehormatan dan kebahagiaan bagi kami apabila Bapak/Ibu/Saudara/i berkenan hadir untuk memberikan doa restu kepada kedua mempelai."
	DefaultQuranVerse  = "Dan di antara tanda-tanda (kebesaran)-Nya ialah Dia menciptakan pasangan-pasangan untukmu dari jenismu sendiri, agar kamu cenderung dan merasa tenteram kepadanya, dan Dia menjadikan di antaramu rasa kasih dan sayang."
	DefaultQuranSurah  = "Q.S Ar-Rum : 21"
)

// NormalizeInvitation fills defaults for fields older records may miss
// and restores the settings invariants. Returned value is safe to render.
func NormalizeInvitation(inv Invitation) Invitation {
	if _, ok := LookupTheme(inv.Theme); !ok {
		inv.Theme = utils.ThemeDefault
	}
	if inv.OpeningText == "" {
		inv.OpeningText = DefaultOpeningText
	}
	if inv.ClosingText == "" {
		inv.ClosingText = DefaultClosingText
	}
	if inv.Events == nil {
		inv.Events = []EventInfo{}
	}
	if inv.LoveStory == nil {
		inv.LoveStory = []LoveStoryItem{}
	}
	if inv.Gallery == nil {
		inv.Gallery = []GalleryItem{}
	}
	if inv.Gifts == nil {
		inv.Gifts = []GiftAccount{}
	}
	inv.VideoURL = ConvertYouTubeToEmbed(inv.VideoURL)
	inv.Settings = NormalizeSettings(inv.Settings)
	return inv
}

// NormalizeSettings fills setting defaults and enforces the single
// active music entry invariant (first active wins)
func NormalizeSettings(s InvitationSettings) InvitationSettings {
	defaults := DefaultSettings()
	if s.PrimaryColor == "" {
		s.PrimaryColor = defaults.PrimaryColor
	}
	if s.SecondaryColor == "" {
		s.SecondaryColor = defaults.SecondaryColor
	}
	if s.AccentColor == "" {
		s.AccentColor = defaults.AccentColor
	}
	if s.FontHeading == "" {
		s.FontHeading = defaults.FontHeading
	}
	if s.FontBody == "" {
		s.FontBody = defaults.FontBody
	}
	if s.MusicList == nil {
		s.MusicList = []MusicItem{}
	}

	activeSeen := false
	s.ActiveMusicID = ""
	for i := range s.MusicList {
		if !utils.ValidMusicSourceType(s.MusicList[i].SourceType) {
			s.MusicList[i].SourceType = "mp3"
		}
		if s.MusicList[i].IsActive {
			if activeSeen {
				s.MusicList[i].IsActive = false
			} else {
				activeSeen = true
				s.ActiveMusicID = s.MusicList[i].ID
			}
		}
	}
	return s
}

// ResolveActiveMusic picks the music a page should play: the active
// music list entry first, the legacy music_url second, nothing third.
func ResolveActiveMusic(s InvitationSettings) (MusicItem, bool) {
	for _, item := range s.MusicList {
		if item.IsActive && item.URL != "" {
			return item, true
		}
	}
	if s.MusicURL != "" {
		sourceType := "mp3"
		if IsYouTubeURL(s.MusicURL) {
			sourceType = "youtube"
		}
		return MusicItem{Title: "Background Music", SourceType: sourceType, URL: s.MusicURL, IsActive: true}, true
	}
	return MusicItem{}, false
}

// --- record mapping ---

// InvitationFromRecord decodes an invitations record into the domain
// document, normalized
func InvitationFromRecord(record *core.Record) Invitation {
	inv := Invitation{
		// Absent settings keys keep their defaults when the stored
		// JSON is merged over them
		Settings:     DefaultSettings(),
		ID:           record.Id,
		UserID:       record.GetString("user_id"),
		Theme:        record.GetString("theme"),
		CoverPhoto:   record.GetString("cover_photo"),
		OpeningText:  record.GetString("opening_text"),
		ClosingText:  record.GetString("closing_text"),
		VideoURL:     record.GetString("video_url"),
		StreamingURL: record.GetString("streaming_url"),
		QuranVerse:   record.GetString("quran_verse"),
		QuranSurah:   record.GetString("quran_surah"),
		Created:      record.GetDateTime("created").String(),
		Updated:      record.GetDateTime("updated").String(),
	}

	for field, target := range map[string]any{
		"groom":             &inv.Groom,
		"bride":             &inv.Bride,
		"events":            &inv.Events,
		"love_story":        &inv.LoveStory,
		"gallery":           &inv.Gallery,
		"gifts":             &inv.Gifts,
		utils.FieldSettings: &inv.Settings,
	} {
		if err := record.UnmarshalJSONField(field, target); err != nil {
			log.Printf("[Invitation] Bad %s field on %s: %v", field, record.Id, err)
		}
	}

	return NormalizeInvitation(inv)
}

// ApplyInvitationInput writes a submitted invitation document onto a
// record, normalizing it first. The owner and id fields are left alone.
func ApplyInvitationInput(record *core.Record, inv Invitation) {
	inv = NormalizeInvitation(inv)
	record.Set("theme", inv.Theme)
	record.Set("cover_photo", inv.CoverPhoto)
	record.Set("groom", inv.Groom)
	record.Set("bride", inv.Bride)
	record.Set("events", inv.Events)
	record.Set("love_story", inv.LoveStory)
	record.Set("gallery", inv.Gallery)
	record.Set("gifts", inv.Gifts)
	record.Set("opening_text", inv.OpeningText)
	record.Set("closing_text", inv.ClosingText)
	record.Set("video_url", inv.VideoURL)
	record.Set("streaming_url", inv.StreamingURL)
	record.Set("quran_verse", inv.QuranVerse)
	record.Set("quran_surah", inv.QuranSurah)
	record.Set(utils.FieldSettings, inv.Settings)
}
