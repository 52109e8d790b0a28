package service

import (
	"strings"

	"modaly_backend/internals/constants"
)

// EmbedURL builds the player URL for an external video. Upload-type videos
// have no embed URL (the file is streamed directly); ok is false for them.
// Malformed external URLs pass through the same best-effort slicing and may
// yield a non-functional embed URL.
func EmbedURL(videoType, rawURL string) (string, bool) {
	switch videoType {
	case constants.VideoTypeYouTube:
		return youtubeEmbedURL(rawURL), true
	case constants.VideoTypeVimeo:
		return vimeoEmbedURL(rawURL), true
	default:
		return "", false
	}
}

var youtubePrefixes = []string{
	"watch?v=",
	"youtu.be/",
	"/embed/",
	"/shorts/",
}

func youtubeEmbedURL(raw string) string {
	id := strings.TrimSpace(raw)
	for _, p := range youtubePrefixes {
		if i := strings.Index(id, p); i >= 0 {
			id = id[i+len(p):]
			break
		}
	}
	// Drop everything after the video id (&t=..., ?si=..., fragments).
	if i := strings.IndexAny(id, "?&#"); i >= 0 {
		id = id[:i]
	}
	return "https://www.youtube.com/embed/" + id
}

func vimeoEmbedURL(raw string) string {
	id := strings.TrimSpace(raw)
	if i := strings.IndexAny(id, "?#"); i >= 0 {
		id = id[:i]
	}
	id = strings.TrimRight(id, "/")
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}
	return "https://player.vimeo.com/video/" + id
}
