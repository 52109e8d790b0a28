package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	MessageID        uuid.UUID `gorm:"column:message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"message_id"`
	MessageName      string    `gorm:"column:message_name;type:varchar(100);not null" json:"message_name"`
	MessageEmail     string    `gorm:"column:message_email;type:varchar(120);not null" json:"message_email"`
	MessageSubject   string    `gorm:"column:message_subject;type:varchar(200)" json:"message_subject"`
	MessageBody      string    `gorm:"column:message_body;type:text;not null" json:"message_body"`
	MessageIsRead    bool      `gorm:"column:message_is_read;default:false" json:"message_is_read"`
	MessageCreatedAt time.Time `gorm:"column:message_created_at;autoCreateTime" json:"message_created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
