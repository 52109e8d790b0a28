package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type MediaCampaign struct {
	CampaignID uuid.UUID `gorm:"column:campaign_id;type:uuid;default:gen_random_uuid();primaryKey" json:"campaign_id"`

	CampaignTitle       string `gorm:"column:campaign_title;type:varchar(200);not null" json:"campaign_title"`
	CampaignDescription string `gorm:"column:campaign_description;type:text;not null" json:"campaign_description"`
	CampaignCategory    string `gorm:"column:campaign_category;type:varchar(50);not null;default:'General'" json:"campaign_category"`

	// Free-text label ("March 2024", "Ongoing", ...), not a date column.
	CampaignCompletionDate string `gorm:"column:campaign_completion_date;type:varchar(50)" json:"campaign_completion_date"`

	CampaignMetric1Value string `gorm:"column:campaign_metric1_value;type:varchar(50)" json:"campaign_metric1_value"`
	CampaignMetric1Label string `gorm:"column:campaign_metric1_label;type:varchar(100)" json:"campaign_metric1_label"`
	CampaignMetric2Value string `gorm:"column:campaign_metric2_value;type:varchar(50)" json:"campaign_metric2_value"`
	CampaignMetric2Label string `gorm:"column:campaign_metric2_label;type:varchar(100)" json:"campaign_metric2_label"`
	CampaignMetric3Value string `gorm:"column:campaign_metric3_value;type:varchar(50)" json:"campaign_metric3_value"`
	CampaignMetric3Label string `gorm:"column:campaign_metric3_label;type:varchar(100)" json:"campaign_metric3_label"`

	CampaignOverview         string `gorm:"column:campaign_overview;type:text" json:"campaign_overview"`
	CampaignServicesProvided string `gorm:"column:campaign_services_provided;type:text" json:"campaign_services_provided"`

	CampaignPublished    bool `gorm:"column:campaign_published;not null;default:true" json:"campaign_published"`
	CampaignFeatured     bool `gorm:"column:campaign_featured;not null;default:false" json:"campaign_featured"`
	CampaignDisplayOrder int  `gorm:"column:campaign_display_order;not null;default:0" json:"campaign_display_order"`

	CampaignCreatedAt time.Time `gorm:"column:campaign_created_at;autoCreateTime" json:"campaign_created_at"`
	CampaignUpdatedAt time.Time `gorm:"column:campaign_updated_at;autoUpdateTime" json:"campaign_updated_at"`

	CampaignImages []CampaignImage `gorm:"foreignKey:CampaignImageCampaignID;references:CampaignID;constraint:OnDelete:CASCADE" json:"campaign_images,omitempty"`
	CampaignVideos []CampaignVideo `gorm:"foreignKey:CampaignVideoCampaignID;references:CampaignID;constraint:OnDelete:CASCADE" json:"campaign_videos,omitempty"`
}

func (MediaCampaign) TableName() string {
	return "media_campaigns"
}

// ServicesList splits campaign_services_provided into trimmed, non-empty lines.
func (m *MediaCampaign) ServicesList() []string {
	if strings.TrimSpace(m.CampaignServicesProvided) == "" {
		return []string{}
	}
	parts := strings.Split(m.CampaignServicesProvided, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// PrimaryImage picks the flagged primary from the loaded images, falling back
// to the lowest display order when no row carries the flag. Returns nil when
// the campaign has no images loaded.
func (m *MediaCampaign) PrimaryImage() *CampaignImage {
	if len(m.CampaignImages) == 0 {
		return nil
	}
	var fallback *CampaignImage
	for i := range m.CampaignImages {
		img := &m.CampaignImages[i]
		if img.CampaignImageIsPrimary {
			return img
		}
		if fallback == nil || img.CampaignImageDisplayOrder < fallback.CampaignImageDisplayOrder {
			fallback = img
		}
	}
	return fallback
}
