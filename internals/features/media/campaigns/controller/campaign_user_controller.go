package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"modaly_backend/internals/features/media/campaigns/dto"
	"modaly_backend/internals/features/media/campaigns/repository"
	"modaly_backend/internals/features/media/campaigns/service"
	helper "modaly_backend/internals/helpers"
)

// CampaignUserController serves the public, read-only campaign views.
// Unpublished campaigns are invisible here, including by direct id.
type CampaignUserController struct {
	Service *service.CampaignService
}

func NewCampaignUserController(db *gorm.DB, files service.FileStorage) *CampaignUserController {
	store := repository.NewCampaignRepository(db)
	return &CampaignUserController{
		Service: service.NewCampaignService(store, files),
	}
}

// =============================
// Get Published Campaigns
// =============================
func (ctrl *CampaignUserController) GetPublishedCampaigns(c *fiber.Ctx) error {
	campaigns, err := ctrl.Service.List(c.UserContext(), true)
	if err != nil {
		return campaignError(c, err, "Failed to retrieve campaigns")
	}

	featuredOnly := c.Query("featured") == "true"

	result := make([]dto.CampaignSummaryDTO, 0, len(campaigns))
	for i := range campaigns {
		if featuredOnly && !campaigns[i].CampaignFeatured {
			continue
		}
		result = append(result, dto.ToCampaignSummaryDTO(&campaigns[i]))
	}
	return helper.JsonList(c, "ok", result, nil)
}

// =============================
// Get Published Campaign By ID
// =============================
func (ctrl *CampaignUserController) GetPublishedCampaignByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign id")
	}

	campaign, err := ctrl.Service.Get(c.UserContext(), id)
	if err != nil {
		return campaignError(c, err, "Failed to retrieve campaign")
	}
	if !campaign.CampaignPublished {
		// same response as a missing row, drafts stay invisible
		return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
	}
	return helper.JsonOK(c, "ok", dto.ToCampaignDTO(campaign))
}
