package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"modaly_backend/internals/features/home/messages/dto"
	"modaly_backend/internals/features/home/messages/model"
	helper "modaly_backend/internals/helpers"
)

var validateMessage = validator.New()

type ContactMessageController struct {
	DB *gorm.DB
}

func NewContactMessageController(db *gorm.DB) *ContactMessageController {
	return &ContactMessageController{DB: db}
}

// =============================
// Public: Submit Message
// =============================
func (ctrl *ContactMessageController) CreateMessage(c *fiber.Ctx) error {
	var body dto.CreateContactMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMessage.Struct(&body); err != nil {
		fields := map[string][]string{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				key := strings.ToLower(fe.Field())
				fields[key] = append(fields[key], fe.Tag())
			}
		}
		return helper.JsonValidationError(c, fields)
	}

	msg := model.ContactMessage{
		MessageName:    strings.TrimSpace(body.Name),
		MessageEmail:   strings.ToLower(strings.TrimSpace(body.Email)),
		MessageSubject: strings.TrimSpace(body.Subject),
		MessageBody:    strings.TrimSpace(body.Message),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&msg).Error; err != nil {
		log.Printf("[MESSAGES] create err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send message")
	}
	return helper.JsonCreated(c, "message sent", fiber.Map{"message_id": msg.MessageID})
}

// =============================
// Admin: List Messages
// =============================
func (ctrl *ContactMessageController) GetAllMessages(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ContactMessage{})
	if c.Query("unread") == "true" {
		q = q.Where("message_is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve messages")
	}

	var messages []model.ContactMessage
	if err := q.Order("message_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve messages")
	}

	result := make([]dto.ContactMessageDTO, 0, len(messages))
	for _, m := range messages {
		result = append(result, dto.ToContactMessageDTO(m))
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", result, &pagination)
}

// =============================
// Admin: Mark As Read
// =============================
func (ctrl *ContactMessageController) MarkAsRead(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ContactMessage{}).
		Where("message_id = ?", id).
		Update("message_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update message")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}
	return helper.JsonUpdated(c, "message marked as read", fiber.Map{"message_id": id})
}

// =============================
// Admin: Delete Message
// =============================
func (ctrl *ContactMessageController) DeleteMessage(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.ContactMessage{}, "message_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}
	return helper.JsonDeleted(c, "message deleted", fiber.Map{"message_id": id})
}
