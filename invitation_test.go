package main

import "testing"

func TestNormalizeSettingsFillsDefaults(t *testing.T) {
	s := NormalizeSettings(InvitationSettings{})
	if s.PrimaryColor != "#B76E79" {
		t.Errorf("PrimaryColor = %q", s.PrimaryColor)
	}
	if s.FontHeading != "Playfair Display" {
		t.Errorf("FontHeading = %q", s.FontHeading)
	}
	if s.MusicList == nil {
		t.Error("MusicList should be initialized")
	}
}

func TestNormalizeSettingsSingleActiveMusic(t *testing.T) {
	s := InvitationSettings{
		MusicList: []MusicItem{
			{ID: "a", URL: "https://example.com/a.mp3", IsActive: false},
			{ID: "b", URL: "https://example.com/b.mp3", IsActive: true},
			{ID: "c", URL: "https://example.com/c.mp3", IsActive: true},
		},
	}

	got := NormalizeSettings(s)

	active := 0
	for _, item := range got.MusicList {
		if item.IsActive {
			active++
		}
	}
	if active != 1 {
		t.Errorf("active count = %d, want 1", active)
	}
	if !got.MusicList[1].IsActive || got.MusicList[2].IsActive {
		t.Error("first active entry should win")
	}
	if got.ActiveMusicID != "b" {
		t.Errorf("ActiveMusicID = %q, want b", got.ActiveMusicID)
	}
}

func TestNormalizeSettingsDefaultSourceType(t *testing.T) {
	s := NormalizeSettings(InvitationSettings{
		MusicList: []MusicItem{{ID: "a", URL: "https://example.com/a.mp3"}},
	})
	if s.MusicList[0].SourceType != "mp3" {
		t.Errorf("SourceType = %q, want mp3", s.MusicList[0].SourceType)
	}
}

func TestNormalizeSettingsCoercesUnknownSourceType(t *testing.T) {
	s := NormalizeSettings(InvitationSettings{
		MusicList: []MusicItem{{ID: "a", SourceType: "spotify", URL: "https://example.com/a"}},
	})
	if s.MusicList[0].SourceType != "mp3" {
		t.Errorf("SourceType = %q, want mp3", s.MusicList[0].SourceType)
	}
}

func TestResolveActiveMusicPrecedence(t *testing.T) {
	// Active list entry wins over the fallback URL
	s := InvitationSettings{
		MusicURL: "https://example.com/fallback.mp3",
		MusicList: []MusicItem{
			{ID: "a", Title: "First Dance", SourceType: "mp3", URL: "https://example.com/a.mp3", IsActive: true},
		},
	}
	music, ok := ResolveActiveMusic(s)
	if !ok {
		t.Fatal("expected music")
	}
	if music.URL != "https://example.com/a.mp3" {
		t.Errorf("URL = %q", music.URL)
	}

	// Fallback URL used when nothing in the list is active
	s.MusicList[0].IsActive = false
	music, ok = ResolveActiveMusic(s)
	if !ok {
		t.Fatal("expected fallback music")
	}
	if music.URL != "https://example.com/fallback.mp3" {
		t.Errorf("URL = %q", music.URL)
	}
	if music.SourceType != "mp3" {
		t.Errorf("SourceType = %q", music.SourceType)
	}

	// Neither → no player
	s.MusicURL = ""
	if _, ok := ResolveActiveMusic(s); ok {
		t.Error("expected no music")
	}
}

func TestResolveActiveMusicYouTubeFallback(t *testing.T) {
	s := InvitationSettings{MusicURL: "https://youtu.be/dQw4w9WgXcQ"}
	music, ok := ResolveActiveMusic(s)
	if !ok {
		t.Fatal("expected music")
	}
	if music.SourceType != "youtube" {
		t.Errorf("SourceType = %q, want youtube", music.SourceType)
	}
}

func TestNormalizeInvitationDefaults(t *testing.T) {
	inv := NormalizeInvitation(Invitation{Theme: "unknown"})
	if inv.Theme != "floral" {
		t.Errorf("Theme = %q", inv.Theme)
	}
	if inv.OpeningText == "" || inv.ClosingText == "" {
		t.Error("texts should default")
	}
	if inv.Events == nil || inv.Gallery == nil || inv.LoveStory == nil || inv.Gifts == nil {
		t.Error("slices should be initialized")
	}
}

func TestNormalizeInvitationConvertsVideoURL(t *testing.T) {
	inv := NormalizeInvitation(Invitation{
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	if inv.VideoURL != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Errorf("VideoURL = %q", inv.VideoURL)
	}
}
