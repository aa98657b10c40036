package main

import (
	"strings"
	"testing"
)

func TestConvertYouTubeToEmbed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"watch with params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=30s", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"share link", "https://youtu.be/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"share link with params", "https://youtu.be/dQw4w9WgXcQ?si=abc123", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"already embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"not youtube", "https://vimeo.com/12345", "https://vimeo.com/12345"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConvertYouTubeToEmbed(tc.in); got != tc.want {
				t.Errorf("ConvertYouTubeToEmbed(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestYouTubeVideoID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?si=x", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ?feature=share", "dQw4w9WgXcQ"},
		{"https://example.com/song.mp3", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := YouTubeVideoID(tc.in); got != tc.want {
			t.Errorf("YouTubeVideoID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestYouTubeAudioEmbedURL(t *testing.T) {
	want := "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&loop=1&playlist=dQw4w9WgXcQ"
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want},
		{"share link", "https://youtu.be/dQw4w9WgXcQ?si=abc", want},
		{"embed with existing query", "https://www.youtube.com/embed/dQw4w9WgXcQ?si=abc", want},
		{"not youtube", "https://example.com/song.mp3", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := YouTubeAudioEmbedURL(tc.in)
			if got != tc.want {
				t.Errorf("YouTubeAudioEmbedURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if strings.Count(got, "?") > 1 {
				t.Errorf("embed URL has more than one query separator: %q", got)
			}
		})
	}
}

func TestIsYouTubeURL(t *testing.T) {
	if !IsYouTubeURL("https://youtu.be/abc") {
		t.Error("short link not detected")
	}
	if !IsYouTubeURL("https://www.youtube.com/watch?v=abc") {
		t.Error("watch link not detected")
	}
	if IsYouTubeURL("https://example.com/song.mp3") {
		t.Error("mp3 URL misdetected")
	}
}
