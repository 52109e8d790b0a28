package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"modaly_backend/internals/features/media/campaigns/model"
)

// FileInput is one uploaded file handed in by the web layer. Open is called
// at most once, right before the bytes are pushed to storage.
type FileInput struct {
	Filename string
	Caption  string
	Open     func() (io.ReadCloser, error)
}

// VideoLinkInput is one externally hosted video reference from the form.
type VideoLinkInput struct {
	URL     string
	Type    string
	Title   string
	Caption string
}

// FileStorage is the object-storage collaborator. Save returns an opaque
// public reference that is stored verbatim and later passed back to Delete.
// Delete errors are treated as best-effort by every caller.
type FileStorage interface {
	Save(ctx context.Context, dir, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// CampaignStore is the record-store collaborator for campaigns and their
// assets. Listings come back ordered: campaigns by display order DESC then
// created DESC, assets by display order ASC.
type CampaignStore interface {
	CreateCampaign(ctx context.Context, c *model.MediaCampaign) error
	GetCampaign(ctx context.Context, id uuid.UUID) (*model.MediaCampaign, error)
	UpdateCampaign(ctx context.Context, c *model.MediaCampaign) error
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	ListCampaigns(ctx context.Context, publishedOnly bool) ([]model.MediaCampaign, error)

	CreateImage(ctx context.Context, img *model.CampaignImage) error
	GetImage(ctx context.Context, id uuid.UUID) (*model.CampaignImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
	ListImages(ctx context.Context, campaignID uuid.UUID) ([]model.CampaignImage, error)
	CountImages(ctx context.Context, campaignID uuid.UUID) (int64, error)
	MaxImageOrder(ctx context.Context, campaignID uuid.UUID) (int, error)

	// PromoteImage clears the primary flag on all sibling images and sets it
	// on imageID in a single atomic pass; no reader may observe two primaries.
	PromoteImage(ctx context.Context, campaignID, imageID uuid.UUID) error

	CreateVideo(ctx context.Context, v *model.CampaignVideo) error
	GetVideo(ctx context.Context, id uuid.UUID) (*model.CampaignVideo, error)
	DeleteVideo(ctx context.Context, id uuid.UUID) error
	ListVideos(ctx context.Context, campaignID uuid.UUID) ([]model.CampaignVideo, error)
	MaxVideoOrder(ctx context.Context, campaignID uuid.UUID) (int, error)

	// WithinTx runs fn against a transactional view of the store; record
	// writes made inside fn are rolled back when fn returns an error.
	WithinTx(ctx context.Context, fn func(CampaignStore) error) error
}
