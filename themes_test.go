package main

import "testing"

func TestResolveThemeKnownKeys(t *testing.T) {
	for _, key := range []string{"adat", "floral", "modern"} {
		theme := ResolveTheme(key)
		if theme.ID != key {
			t.Errorf("ResolveTheme(%q).ID = %q", key, theme.ID)
		}
	}
}

func TestResolveThemeFallback(t *testing.T) {
	cases := []string{"", "unknown", "ADAT", "vintage"}
	for _, key := range cases {
		theme := ResolveTheme(key)
		if theme.ID != "floral" {
			t.Errorf("ResolveTheme(%q).ID = %q, want floral", key, theme.ID)
		}
	}
}

func TestFloralBundleValues(t *testing.T) {
	theme := ResolveTheme("floral")
	if theme.PrimaryColor != "#B76E79" {
		t.Errorf("PrimaryColor = %q", theme.PrimaryColor)
	}
	if theme.SecondaryColor != "#F5E6E8" {
		t.Errorf("SecondaryColor = %q", theme.SecondaryColor)
	}
	if theme.AccentColor != "#D4AF37" {
		t.Errorf("AccentColor = %q", theme.AccentColor)
	}
	if theme.FontHeading != "Playfair Display" {
		t.Errorf("FontHeading = %q", theme.FontHeading)
	}
	if theme.FontBody != "Manrope" {
		t.Errorf("FontBody = %q", theme.FontBody)
	}
	if theme.BackgroundPattern != "floral" {
		t.Errorf("BackgroundPattern = %q", theme.BackgroundPattern)
	}
}

func TestModernHasNoOrnaments(t *testing.T) {
	theme := ResolveTheme("modern")
	if theme.Ornaments.TopLeft != "" || theme.Ornaments.Bottom != "" {
		t.Errorf("modern theme should have empty ornaments: %+v", theme.Ornaments)
	}
}

func TestListThemesStableOrder(t *testing.T) {
	themes := ListThemes()
	if len(themes) != 3 {
		t.Fatalf("len = %d, want 3", len(themes))
	}
	want := []string{"adat", "floral", "modern"}
	for i, theme := range themes {
		if theme.ID != want[i] {
			t.Errorf("themes[%d].ID = %q, want %q", i, theme.ID, want[i])
		}
	}
}

func TestLookupThemeNoFallback(t *testing.T) {
	if _, ok := LookupTheme("vintage"); ok {
		t.Error("LookupTheme should not fall back for unknown keys")
	}
	if _, ok := LookupTheme("adat"); !ok {
		t.Error("LookupTheme failed for known key")
	}
}
