package oss

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"My Photo 01":    "my-photo-01",
		"snake_case_x":   "snake-case-x",
		"déjà vu!!":      "dj-vu",
		"":               "file",
		"@@@":            "file",
		"Already-Clean":  "already-clean",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildObjectKey(t *testing.T) {
	s := &OSSService{Prefix: "uploads"}
	key := s.buildObjectKey("campaigns/xyz/images", "My Pic.JPG")

	if !strings.HasPrefix(key, "uploads/campaigns/xyz/images/my-pic_") {
		t.Errorf("key = %q, wrong prefix", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key = %q, extension should be lowercased", key)
	}

	// Two keys for the same filename never collide.
	if other := s.buildObjectKey("campaigns/xyz/images", "My Pic.JPG"); other == key {
		t.Error("object keys must be unique per call")
	}
}

func TestExtractKeyFromPublicURL(t *testing.T) {
	key, err := ExtractKeyFromPublicURL("https://bucket.oss-region.aliyuncs.com/uploads/a/b.jpg")
	if err != nil {
		t.Fatalf("ExtractKeyFromPublicURL: %v", err)
	}
	if key != "uploads/a/b.jpg" {
		t.Errorf("key = %q", key)
	}

	if _, err := ExtractKeyFromPublicURL(""); err == nil {
		t.Error("empty url should error")
	}
	if _, err := ExtractKeyFromPublicURL("https://no-path-host"); err == nil {
		t.Error("url without a path should error")
	}
}
