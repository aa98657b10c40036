package main

import "testing"

func TestRandomHexLengthAndUniqueness(t *testing.T) {
	a := RandomHex(16)
	b := RandomHex(16)
	if len(a) != 32 || len(b) != 32 {
		t.Errorf("len = %d/%d, want 32", len(a), len(b))
	}
	if a == b {
		t.Error("two tokens should not collide")
	}
}

func TestRandomFilenameKeepsExtension(t *testing.T) {
	name := RandomFilename(".mp3")
	if len(name) != 36 {
		t.Errorf("len = %d, want 36", len(name))
	}
	if name[len(name)-4:] != ".mp3" {
		t.Errorf("extension lost: %q", name)
	}
}

func TestBuildGuestLink(t *testing.T) {
	link := BuildGuestLink("abc123", "Budi & Keluarga")
	want := "/undangan/abc123?kpd=Budi+%26+Keluarga"
	if link != want {
		t.Errorf("link = %q, want %q", link, want)
	}
}

func TestBuildGuestLinkPlainName(t *testing.T) {
	if got := BuildGuestLink("abc", "Sinta"); got != "/undangan/abc?kpd=Sinta" {
		t.Errorf("link = %q", got)
	}
}
