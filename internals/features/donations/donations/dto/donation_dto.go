package dto

import (
	"time"

	"modaly_backend/internals/features/donations/donations/model"
)

type CreateDonationRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Email   string `json:"email" form:"email" validate:"omitempty,email,max=120"`
	Message string `json:"message" form:"message" validate:"max=2000"`

	// Amount is one of the preset buttons; CustomAmount wins when set.
	Amount       float64 `json:"amount" form:"amount"`
	CustomAmount float64 `json:"custom_amount" form:"custom_amount"`

	CampaignID string         `json:"campaign_id" form:"campaign_id"`
	Extras     map[string]any `json:"extras" form:"-"`
}

// EffectiveAmount resolves the preset-vs-custom precedence.
func (r CreateDonationRequest) EffectiveAmount() float64 {
	if r.CustomAmount > 0 {
		return r.CustomAmount
	}
	return r.Amount
}

type DonationDTO struct {
	DonationID string         `json:"donation_id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Amount     float64        `json:"amount"`
	Message    string         `json:"message"`
	CampaignID string         `json:"campaign_id,omitempty"`
	Extras     map[string]any `json:"extras,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func ToDonationDTO(d model.Donation) DonationDTO {
	out := DonationDTO{
		DonationID: d.DonationID.String(),
		Name:       d.DonationName,
		Email:      d.DonationEmail,
		Amount:     d.DonationAmount,
		Message:    d.DonationMessage,
		Extras:     map[string]any(d.DonationExtras),
		CreatedAt:  d.DonationCreatedAt,
	}
	if d.DonationCampaignID != nil {
		out.CampaignID = d.DonationCampaignID.String()
	}
	return out
}
