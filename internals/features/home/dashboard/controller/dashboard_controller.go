package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationModel "modaly_backend/internals/features/donations/donations/model"
	messageModel "modaly_backend/internals/features/home/messages/model"
	postModel "modaly_backend/internals/features/home/posts/model"
	campaignModel "modaly_backend/internals/features/media/campaigns/model"
	helper "modaly_backend/internals/helpers"
)

// DashboardController aggregates the counters shown on the admin landing page.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	var (
		campaignCount  int64
		publishedCount int64
		postCount      int64
		unreadMessages int64
		donationTotal  float64
		donationCount  int64
	)

	type step struct {
		name string
		run  func() error
	}
	steps := []step{
		{"campaigns", func() error {
			return db.Model(&campaignModel.MediaCampaign{}).Count(&campaignCount).Error
		}},
		{"published campaigns", func() error {
			return db.Model(&campaignModel.MediaCampaign{}).
				Where("campaign_published = ?", true).Count(&publishedCount).Error
		}},
		{"posts", func() error {
			return db.Model(&postModel.BlogPost{}).Count(&postCount).Error
		}},
		{"unread messages", func() error {
			return db.Model(&messageModel.ContactMessage{}).
				Where("message_is_read = ?", false).Count(&unreadMessages).Error
		}},
		{"donations", func() error {
			var out struct {
				Total float64
				Count int64
			}
			err := db.Model(&donationModel.Donation{}).
				Select("COALESCE(SUM(donation_amount), 0) AS total, COUNT(*) AS count").
				Scan(&out).Error
			donationTotal, donationCount = out.Total, out.Count
			return err
		}},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			log.Printf("[DASHBOARD] %s count err: %v", s.name, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"campaign_count":           campaignCount,
		"published_campaign_count": publishedCount,
		"post_count":               postCount,
		"unread_message_count":     unreadMessages,
		"donation_total":           donationTotal,
		"donation_count":           donationCount,
	})
}
