package service

import "testing"

func TestEmbedURLYouTube(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?si=xyz", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/abc_123", "https://www.youtube.com/embed/abc_123"},
	}
	for _, tc := range cases {
		got, ok := EmbedURL("youtube", tc.in)
		if !ok {
			t.Errorf("EmbedURL(youtube, %q) ok = false", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("EmbedURL(youtube, %q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEmbedURLVimeo(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://vimeo.com/123456789", "https://player.vimeo.com/video/123456789"},
		{"https://vimeo.com/123456789/", "https://player.vimeo.com/video/123456789"},
		{"https://vimeo.com/123456789?share=copy", "https://player.vimeo.com/video/123456789"},
	}
	for _, tc := range cases {
		got, ok := EmbedURL("vimeo", tc.in)
		if !ok {
			t.Errorf("EmbedURL(vimeo, %q) ok = false", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("EmbedURL(vimeo, %q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEmbedURLUploadsHaveNone(t *testing.T) {
	if _, ok := EmbedURL("upload", "https://cdn.test/clip.mp4"); ok {
		t.Error("upload videos must not get an embed URL")
	}
	if _, ok := EmbedURL("", "https://example.com"); ok {
		t.Error("unknown type must not get an embed URL")
	}
}
