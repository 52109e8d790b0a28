package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"modaly_backend/internals/features/media/campaigns/dto"
	"modaly_backend/internals/features/media/campaigns/repository"
	"modaly_backend/internals/features/media/campaigns/service"
	helper "modaly_backend/internals/helpers"
)

// CampaignAdminController owns the write side of campaigns: CRUD plus the
// per-asset operations (delete image/video, set primary image).
type CampaignAdminController struct {
	Service *service.CampaignService
}

func NewCampaignAdminController(db *gorm.DB, files service.FileStorage) *CampaignAdminController {
	store := repository.NewCampaignRepository(db)
	return &CampaignAdminController{
		Service: service.NewCampaignService(store, files),
	}
}

func campaignError(c *fiber.Ctx, err error, fallback string) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return helper.JsonValidationError(c, verr.Fields)
	case errors.Is(err, service.ErrCampaignNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
	case errors.Is(err, service.ErrImageNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Image not found")
	case errors.Is(err, service.ErrVideoNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
	default:
		log.Printf("[CAMPAIGNS] %s: %v", fallback, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}

func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// =============================
// Create Campaign
// =============================
func (ctrl *CampaignAdminController) CreateCampaign(c *fiber.Ctx) error {
	in, assets, err := dto.ParseCampaignForm(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid form data")
	}

	campaign, err := ctrl.Service.Create(c.UserContext(), in, assets)
	if err != nil {
		return campaignError(c, err, "Failed to create campaign")
	}
	return helper.JsonCreated(c, "campaign created", dto.ToCampaignDTO(campaign))
}

// =============================
// Update Campaign
// =============================
func (ctrl *CampaignAdminController) UpdateCampaign(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign id")
	}

	in, assets, err := dto.ParseCampaignForm(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid form data")
	}

	campaign, err := ctrl.Service.Update(c.UserContext(), id, in, assets)
	if err != nil {
		return campaignError(c, err, "Failed to update campaign")
	}
	return helper.JsonUpdated(c, "campaign updated", dto.ToCampaignDTO(campaign))
}

// =============================
// Delete Campaign
// =============================
func (ctrl *CampaignAdminController) DeleteCampaign(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign id")
	}

	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		return campaignError(c, err, "Failed to delete campaign")
	}
	return helper.JsonDeleted(c, "campaign deleted", fiber.Map{"campaign_id": id})
}

// =============================
// Get All Campaigns
// =============================
func (ctrl *CampaignAdminController) GetAllCampaigns(c *fiber.Ctx) error {
	campaigns, err := ctrl.Service.List(c.UserContext(), false)
	if err != nil {
		return campaignError(c, err, "Failed to retrieve campaigns")
	}

	result := make([]dto.CampaignSummaryDTO, 0, len(campaigns))
	for i := range campaigns {
		result = append(result, dto.ToCampaignSummaryDTO(&campaigns[i]))
	}
	return helper.JsonList(c, "ok", result, nil)
}

// =============================
// Get Campaign By ID
// =============================
func (ctrl *CampaignAdminController) GetCampaignByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign id")
	}

	campaign, err := ctrl.Service.Get(c.UserContext(), id)
	if err != nil {
		return campaignError(c, err, "Failed to retrieve campaign")
	}
	return helper.JsonOK(c, "ok", dto.ToCampaignDTO(campaign))
}

// =============================
// Delete Image
// =============================
func (ctrl *CampaignAdminController) DeleteImage(c *fiber.Ctx) error {
	imageID, err := paramUUID(c, "imageId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid image id")
	}

	campaignID, err := ctrl.Service.Assets.RemoveImage(c.UserContext(), imageID)
	if err != nil {
		return campaignError(c, err, "Failed to delete image")
	}
	return helper.JsonDeleted(c, "image deleted", fiber.Map{
		"image_id":    imageID,
		"campaign_id": campaignID,
	})
}

// =============================
// Set Primary Image
// =============================
func (ctrl *CampaignAdminController) SetPrimaryImage(c *fiber.Ctx) error {
	imageID, err := paramUUID(c, "imageId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid image id")
	}

	if err := ctrl.Service.Assets.SetPrimaryImage(c.UserContext(), imageID); err != nil {
		return campaignError(c, err, "Failed to set primary image")
	}
	return helper.JsonUpdated(c, "primary image set", fiber.Map{"image_id": imageID})
}

// =============================
// Delete Video
// =============================
func (ctrl *CampaignAdminController) DeleteVideo(c *fiber.Ctx) error {
	videoID, err := paramUUID(c, "videoId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video id")
	}

	campaignID, err := ctrl.Service.Assets.RemoveVideo(c.UserContext(), videoID)
	if err != nil {
		return campaignError(c, err, "Failed to delete video")
	}
	return helper.JsonDeleted(c, "video deleted", fiber.Map{
		"video_id":    videoID,
		"campaign_id": campaignID,
	})
}
