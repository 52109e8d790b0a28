package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Donation struct {
	DonationID         uuid.UUID         `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`
	DonationName       string            `gorm:"column:donation_name;type:varchar(100);not null" json:"donation_name"`
	DonationEmail      string            `gorm:"column:donation_email;type:varchar(120)" json:"donation_email"`
	DonationAmount     float64           `gorm:"column:donation_amount;type:numeric(12,2);not null" json:"donation_amount"`
	DonationMessage    string            `gorm:"column:donation_message;type:text" json:"donation_message"`
	DonationCampaignID *uuid.UUID        `gorm:"column:donation_campaign_id;type:uuid;index" json:"donation_campaign_id,omitempty"`
	DonationExtras     datatypes.JSONMap `gorm:"column:donation_extras;type:jsonb" json:"donation_extras,omitempty"`
	DonationCreatedAt  time.Time         `gorm:"column:donation_created_at;autoCreateTime" json:"donation_created_at"`
}

func (Donation) TableName() string {
	return "donations"
}
