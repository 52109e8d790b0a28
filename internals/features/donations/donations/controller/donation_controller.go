package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"modaly_backend/internals/features/donations/donations/dto"
	"modaly_backend/internals/features/donations/donations/model"
	helper "modaly_backend/internals/helpers"
)

var validateDonation = validator.New()

type DonationController struct {
	DB *gorm.DB
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db}
}

// =============================
// Public: Record Donation
// =============================
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDonation.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name is required")
	}

	amount := body.EffectiveAmount()
	if amount <= 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"amount": {"must be greater than zero"},
		})
	}

	donation := model.Donation{
		DonationName:    strings.TrimSpace(body.Name),
		DonationEmail:   strings.ToLower(strings.TrimSpace(body.Email)),
		DonationAmount:  amount,
		DonationMessage: strings.TrimSpace(body.Message),
		DonationExtras:  body.Extras,
	}
	if raw := strings.TrimSpace(body.CampaignID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign_id")
		}
		donation.DonationCampaignID = &id
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&donation).Error; err != nil {
		log.Printf("[DONATIONS] create err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record donation")
	}
	return helper.JsonCreated(c, "donation recorded", dto.ToDonationDTO(donation))
}

// =============================
// Admin: List Donations
// =============================
func (ctrl *DonationController) GetAllDonations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.Donation{})
	if raw := strings.TrimSpace(c.Query("campaign_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign_id")
		}
		q = q.Where("donation_campaign_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve donations")
	}

	var donations []model.Donation
	if err := q.Order("donation_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&donations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve donations")
	}

	result := make([]dto.DonationDTO, 0, len(donations))
	for _, d := range donations {
		result = append(result, dto.ToDonationDTO(d))
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", result, &pagination)
}

// =============================
// Admin: Donation Summary
// =============================
func (ctrl *DonationController) GetDonationSummary(c *fiber.Ctx) error {
	var out struct {
		Total float64 `json:"total"`
		Count int64   `json:"count"`
	}
	err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.Donation{}).
		Select("COALESCE(SUM(donation_amount), 0) AS total, COUNT(*) AS count").
		Scan(&out).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute summary")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"total_amount":   out.Total,
		"donation_count": out.Count,
	})
}
