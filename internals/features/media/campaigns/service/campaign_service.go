package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"modaly_backend/internals/constants"
	"modaly_backend/internals/features/media/campaigns/model"
)

// CampaignInput carries every scalar field of the campaign form. Updates
// overwrite all fields unconditionally — the admin form resends everything
// on every edit, so omitted fields land here as their zero values.
type CampaignInput struct {
	Title          string
	Description    string
	Category       string
	CompletionDate string

	Metric1Value string
	Metric1Label string
	Metric2Value string
	Metric2Label string
	Metric3Value string
	Metric3Label string

	Overview         string
	ServicesProvided string

	Published    bool
	Featured     bool
	DisplayOrder int
}

// CampaignAssets bundles the new media arriving with a create/edit request.
type CampaignAssets struct {
	Images     []FileInput
	VideoFiles []FileInput
	VideoLinks []VideoLinkInput
}

// CampaignService validates and persists campaigns and delegates asset
// mutations to the AssetManager.
type CampaignService struct {
	Store  CampaignStore
	Assets *AssetManager
}

func NewCampaignService(store CampaignStore, files FileStorage) *CampaignService {
	return &CampaignService{
		Store:  store,
		Assets: NewAssetManager(store, files),
	}
}

func validateCampaignInput(in *CampaignInput) error {
	fields := map[string][]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["campaign_title"] = []string{"required"}
	}
	if strings.TrimSpace(in.Description) == "" {
		fields["campaign_description"] = []string{"required"}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func applyInput(c *model.MediaCampaign, in *CampaignInput) {
	c.CampaignTitle = strings.TrimSpace(in.Title)
	c.CampaignDescription = strings.TrimSpace(in.Description)

	// Unknown categories collapse to the default, the form is a fixed select.
	c.CampaignCategory = constants.NormalizeCampaignCategory(in.Category)

	c.CampaignCompletionDate = strings.TrimSpace(in.CompletionDate)
	c.CampaignMetric1Value = strings.TrimSpace(in.Metric1Value)
	c.CampaignMetric1Label = strings.TrimSpace(in.Metric1Label)
	c.CampaignMetric2Value = strings.TrimSpace(in.Metric2Value)
	c.CampaignMetric2Label = strings.TrimSpace(in.Metric2Label)
	c.CampaignMetric3Value = strings.TrimSpace(in.Metric3Value)
	c.CampaignMetric3Label = strings.TrimSpace(in.Metric3Label)
	c.CampaignOverview = strings.TrimSpace(in.Overview)
	c.CampaignServicesProvided = strings.TrimSpace(in.ServicesProvided)

	c.CampaignPublished = in.Published
	c.CampaignFeatured = in.Featured
	c.CampaignDisplayOrder = in.DisplayOrder
}

// Create validates the scalar fields, persists the campaign, then attaches
// the initial asset batches. Record writes happen inside one transaction so
// an asset failure leaves no campaign behind; blobs already pushed to storage
// may be orphaned, which is accepted.
func (s *CampaignService) Create(ctx context.Context, in CampaignInput, assets CampaignAssets) (*model.MediaCampaign, error) {
	if err := validateCampaignInput(&in); err != nil {
		return nil, err
	}

	var campaign model.MediaCampaign
	applyInput(&campaign, &in)

	err := s.Store.WithinTx(ctx, func(tx CampaignStore) error {
		if err := tx.CreateCampaign(ctx, &campaign); err != nil {
			return err
		}
		am := NewAssetManager(tx, s.Assets.Files)
		if _, err := am.AttachImages(ctx, campaign.CampaignID, assets.Images, true); err != nil {
			return err
		}
		if _, err := am.AttachVideos(ctx, campaign.CampaignID, assets.VideoFiles, assets.VideoLinks); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, campaign.CampaignID)
}

// Update overwrites every scalar field, attaches any newly supplied assets
// (existing ones are untouched) and refreshes the updated timestamp.
func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, in CampaignInput, assets CampaignAssets) (*model.MediaCampaign, error) {
	if err := validateCampaignInput(&in); err != nil {
		return nil, err
	}

	campaign, err := s.Store.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInput(campaign, &in)
	campaign.CampaignUpdatedAt = time.Now()

	err = s.Store.WithinTx(ctx, func(tx CampaignStore) error {
		if err := tx.UpdateCampaign(ctx, campaign); err != nil {
			return err
		}
		am := NewAssetManager(tx, s.Assets.Files)
		if _, err := am.AttachImages(ctx, id, assets.Images, false); err != nil {
			return err
		}
		if _, err := am.AttachVideos(ctx, id, assets.VideoFiles, assets.VideoLinks); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the backing files (best-effort) and then the campaign row;
// the record store cascades the asset rows.
func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Store.GetCampaign(ctx, id); err != nil {
		return err
	}
	s.Assets.PurgeCampaignFiles(ctx, id)
	return s.Store.DeleteCampaign(ctx, id)
}

// Get returns the campaign with its assets ordered by display order.
func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*model.MediaCampaign, error) {
	return s.Store.GetCampaign(ctx, id)
}

// List returns campaigns ordered by display order DESC, then created DESC.
// Public callers pass publishedOnly=true.
func (s *CampaignService) List(ctx context.Context, publishedOnly bool) ([]model.MediaCampaign, error) {
	return s.Store.ListCampaigns(ctx, publishedOnly)
}
