package dto

import (
	"time"

	"modaly_backend/internals/features/home/messages/model"
)

type CreateContactMessageRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email,max=120"`
	Subject string `json:"subject" form:"subject" validate:"max=200"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

type ContactMessageDTO struct {
	MessageID string    `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToContactMessageDTO(m model.ContactMessage) ContactMessageDTO {
	return ContactMessageDTO{
		MessageID: m.MessageID.String(),
		Name:      m.MessageName,
		Email:     m.MessageEmail,
		Subject:   m.MessageSubject,
		Message:   m.MessageBody,
		IsRead:    m.MessageIsRead,
		CreatedAt: m.MessageCreatedAt,
	}
}
