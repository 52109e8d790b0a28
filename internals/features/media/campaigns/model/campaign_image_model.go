package model

import (
	"time"

	"github.com/google/uuid"
)

/*
campaign_images
- campaign_image_url is the opaque reference returned by object storage
- at most one row per campaign may have campaign_image_is_primary = true;
  promotion clears siblings and sets the target in one statement pass
*/
type CampaignImage struct {
	CampaignImageID         uuid.UUID `gorm:"column:campaign_image_id;type:uuid;default:gen_random_uuid();primaryKey" json:"campaign_image_id"`
	CampaignImageCampaignID uuid.UUID `gorm:"column:campaign_image_campaign_id;type:uuid;not null;index" json:"campaign_image_campaign_id"`

	CampaignImageURL     string `gorm:"column:campaign_image_url;type:text;not null" json:"campaign_image_url"`
	CampaignImageCaption string `gorm:"column:campaign_image_caption;type:varchar(200)" json:"campaign_image_caption"`

	CampaignImageDisplayOrder int  `gorm:"column:campaign_image_display_order;not null;default:0" json:"campaign_image_display_order"`
	CampaignImageIsPrimary    bool `gorm:"column:campaign_image_is_primary;not null;default:false" json:"campaign_image_is_primary"`

	CampaignImageCreatedAt time.Time `gorm:"column:campaign_image_created_at;autoCreateTime" json:"campaign_image_created_at"`
}

func (CampaignImage) TableName() string {
	return "campaign_images"
}
