package main

import "strings"

// ConvertYouTubeToEmbed rewrites a YouTube watch/share/shorts URL into
// its embed form. Already-embedded URLs pass through unchanged, and
// non-YouTube URLs are returned as-is.
func ConvertYouTubeToEmbed(url string) string {
	if url == "" {
		return ""
	}

	var videoID string

	switch {
	case strings.Contains(url, "youtube.com/watch?v="):
		videoID = splitAfter(url, "v=", "&")
	case strings.Contains(url, "youtu.be/"):
		videoID = splitAfter(url, "youtu.be/", "?")
	case strings.Contains(url, "youtube.com/embed/"):
		return url
	case strings.Contains(url, "youtube.com/shorts/"):
		videoID = splitAfter(url, "shorts/", "?")
	}

	if videoID != "" {
		return "https://www.youtube.com/embed/" + videoID
	}
	return url
}

// YouTubeVideoID extracts the bare video id for audio playback.
// Returns "" when the URL is not a recognized YouTube form.
func YouTubeVideoID(url string) string {
	if url == "" {
		return ""
	}

	switch {
	case strings.Contains(url, "youtube.com/watch?v="):
		return splitAfter(url, "v=", "&")
	case strings.Contains(url, "youtu.be/"):
		return splitAfter(url, "youtu.be/", "?")
	case strings.Contains(url, "youtube.com/embed/"):
		return splitAfter(url, "embed/", "?")
	case strings.Contains(url, "youtube.com/shorts/"):
		return splitAfter(url, "shorts/", "?")
	}
	return ""
}

// YouTubeAudioEmbedURL builds the embed URL a page loads for background
// music. Looping a single video requires the playlist parameter to name
// the video itself. Returns "" when the URL is not a YouTube video.
func YouTubeAudioEmbedURL(url string) string {
	id := YouTubeVideoID(url)
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id + "?autoplay=1&loop=1&playlist=" + id
}

// IsYouTubeURL reports whether a music URL points at YouTube
func IsYouTubeURL(url string) bool {
	return strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be")
}

// splitAfter returns the segment following marker, cut at the first
// occurrence of stop
func splitAfter(s, marker, stop string) string {
	_, after, found := strings.Cut(s, marker)
	if !found {
		return ""
	}
	before, _, _ := strings.Cut(after, stop)
	return before
}
