package constants

import (
	"path/filepath"
	"strings"
)

// Campaign/video source types stored in campaign_videos.campaign_video_type.
const (
	VideoTypeUpload  = "upload"
	VideoTypeYouTube = "youtube"
	VideoTypeVimeo   = "vimeo"
)

// DefaultCategory is used whenever a form omits the category field.
const DefaultCategory = "General"

var BlogCategories = []string{"General", "Education", "Healthcare", "Community", "Events", "News"}

var CampaignCategories = []string{"Education", "Healthcare", "Community", "Environment"}

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".webm": {},
	".mov":  {},
	".m4v":  {},
}

func IsAllowedImage(filename string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

func IsAllowedVideo(filename string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// IsValidVideoType reports whether t is one of the known source types.
// Callers default unknown values to VideoTypeYouTube.
func IsValidVideoType(t string) bool {
	switch t {
	case VideoTypeUpload, VideoTypeYouTube, VideoTypeVimeo:
		return true
	}
	return false
}

// NormalizeCampaignCategory maps a form value onto the campaign category
// list (case-insensitive), falling back to DefaultCategory.
func NormalizeCampaignCategory(c string) string {
	return normalizeCategory(c, CampaignCategories)
}

// NormalizeBlogCategory is the same for blog posts.
func NormalizeBlogCategory(c string) string {
	return normalizeCategory(c, BlogCategories)
}

func normalizeCategory(c string, allowed []string) string {
	c = strings.TrimSpace(c)
	for _, v := range allowed {
		if strings.EqualFold(v, c) {
			return v
		}
	}
	return DefaultCategory
}
