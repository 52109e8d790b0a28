package model

import (
	"time"

	"github.com/google/uuid"
)

/*
campaign_videos
- campaign_video_type selects how campaign_video_url is interpreted:
  "upload"  → object-storage reference, deleted together with the row
  "youtube" / "vimeo" → externally-owned URL, storage is never touched
*/
type CampaignVideo struct {
	CampaignVideoID         uuid.UUID `gorm:"column:campaign_video_id;type:uuid;default:gen_random_uuid();primaryKey" json:"campaign_video_id"`
	CampaignVideoCampaignID uuid.UUID `gorm:"column:campaign_video_campaign_id;type:uuid;not null;index" json:"campaign_video_campaign_id"`

	CampaignVideoURL  string `gorm:"column:campaign_video_url;type:text;not null" json:"campaign_video_url"`
	CampaignVideoType string `gorm:"column:campaign_video_type;type:varchar(16);not null;default:'youtube'" json:"campaign_video_type"`

	CampaignVideoTitle   string `gorm:"column:campaign_video_title;type:varchar(200)" json:"campaign_video_title"`
	CampaignVideoCaption string `gorm:"column:campaign_video_caption;type:varchar(200)" json:"campaign_video_caption"`

	CampaignVideoDisplayOrder int `gorm:"column:campaign_video_display_order;not null;default:0" json:"campaign_video_display_order"`

	CampaignVideoCreatedAt time.Time `gorm:"column:campaign_video_created_at;autoCreateTime" json:"campaign_video_created_at"`
}

func (CampaignVideo) TableName() string {
	return "campaign_videos"
}
