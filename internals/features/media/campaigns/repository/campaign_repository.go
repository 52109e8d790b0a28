package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modaly_backend/internals/features/media/campaigns/model"
	"modaly_backend/internals/features/media/campaigns/service"
)

// CampaignRepository is the Postgres-backed CampaignStore.
type CampaignRepository struct {
	DB *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

var _ service.CampaignStore = (*CampaignRepository)(nil)

/* =========================
   Campaigns
========================= */

func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *model.MediaCampaign) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*model.MediaCampaign, error) {
	var c model.MediaCampaign
	err := r.DB.WithContext(ctx).
		Preload("CampaignImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("campaign_image_display_order ASC")
		}).
		Preload("CampaignVideos", func(db *gorm.DB) *gorm.DB {
			return db.Order("campaign_video_display_order ASC")
		}).
		First(&c, "campaign_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrCampaignNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *model.MediaCampaign) error {
	return r.DB.WithContext(ctx).
		Omit("CampaignImages", "CampaignVideos").
		Save(c).Error
}

func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	// Asset rows go with the campaign via ON DELETE CASCADE.
	return r.DB.WithContext(ctx).
		Delete(&model.MediaCampaign{}, "campaign_id = ?", id).Error
}

func (r *CampaignRepository) ListCampaigns(ctx context.Context, publishedOnly bool) ([]model.MediaCampaign, error) {
	q := r.DB.WithContext(ctx).
		Preload("CampaignImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("campaign_image_display_order ASC")
		}).
		Order("campaign_display_order DESC, campaign_created_at DESC")
	if publishedOnly {
		q = q.Where("campaign_published = ?", true)
	}

	var campaigns []model.MediaCampaign
	if err := q.Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

/* =========================
   Images
========================= */

func (r *CampaignRepository) CreateImage(ctx context.Context, img *model.CampaignImage) error {
	return r.DB.WithContext(ctx).Create(img).Error
}

func (r *CampaignRepository) GetImage(ctx context.Context, id uuid.UUID) (*model.CampaignImage, error) {
	var img model.CampaignImage
	if err := r.DB.WithContext(ctx).First(&img, "campaign_image_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrImageNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (r *CampaignRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Delete(&model.CampaignImage{}, "campaign_image_id = ?", id).Error
}

func (r *CampaignRepository) ListImages(ctx context.Context, campaignID uuid.UUID) ([]model.CampaignImage, error) {
	var images []model.CampaignImage
	err := r.DB.WithContext(ctx).
		Where("campaign_image_campaign_id = ?", campaignID).
		Order("campaign_image_display_order ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *CampaignRepository) CountImages(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&model.CampaignImage{}).
		Where("campaign_image_campaign_id = ?", campaignID).
		Count(&n).Error
	return n, err
}

func (r *CampaignRepository) MaxImageOrder(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var max int
	err := r.DB.WithContext(ctx).
		Model(&model.CampaignImage{}).
		Where("campaign_image_campaign_id = ?", campaignID).
		Select("COALESCE(MAX(campaign_image_display_order), -1)").
		Scan(&max).Error
	return max, err
}

// PromoteImage flips the primary flag for a whole campaign in one UPDATE, so
// no concurrent reader can see two primaries or none mid-switch.
func (r *CampaignRepository) PromoteImage(ctx context.Context, campaignID, imageID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Model(&model.CampaignImage{}).
		Where("campaign_image_campaign_id = ?", campaignID).
		Update("campaign_image_is_primary", gorm.Expr("campaign_image_id = ?", imageID)).Error
}

/* =========================
   Videos
========================= */

func (r *CampaignRepository) CreateVideo(ctx context.Context, v *model.CampaignVideo) error {
	return r.DB.WithContext(ctx).Create(v).Error
}

func (r *CampaignRepository) GetVideo(ctx context.Context, id uuid.UUID) (*model.CampaignVideo, error) {
	var v model.CampaignVideo
	if err := r.DB.WithContext(ctx).First(&v, "campaign_video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrVideoNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *CampaignRepository) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Delete(&model.CampaignVideo{}, "campaign_video_id = ?", id).Error
}

func (r *CampaignRepository) ListVideos(ctx context.Context, campaignID uuid.UUID) ([]model.CampaignVideo, error) {
	var videos []model.CampaignVideo
	err := r.DB.WithContext(ctx).
		Where("campaign_video_campaign_id = ?", campaignID).
		Order("campaign_video_display_order ASC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *CampaignRepository) MaxVideoOrder(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var max int
	err := r.DB.WithContext(ctx).
		Model(&model.CampaignVideo{}).
		Where("campaign_video_campaign_id = ?", campaignID).
		Select("COALESCE(MAX(campaign_video_display_order), -1)").
		Scan(&max).Error
	return max, err
}

/* =========================
   Transactions
========================= */

func (r *CampaignRepository) WithinTx(ctx context.Context, fn func(service.CampaignStore) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CampaignRepository{DB: tx})
	})
}
