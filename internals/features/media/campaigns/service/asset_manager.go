package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"modaly_backend/internals/constants"
	"modaly_backend/internals/features/media/campaigns/model"
)

// AssetManager owns attaching, ordering and removing campaign images/videos,
// and the single-primary-image rule. File writes go through Files before any
// record is written; file deletes are always best-effort.
type AssetManager struct {
	Store CampaignStore
	Files FileStorage
}

func NewAssetManager(store CampaignStore, files FileStorage) *AssetManager {
	return &AssetManager{Store: store, Files: files}
}

func imageDir(campaignID uuid.UUID) string {
	return fmt.Sprintf("campaigns/%s/images", campaignID)
}

func videoDir(campaignID uuid.UUID) string {
	return fmt.Sprintf("campaigns/%s/videos", campaignID)
}

// AttachImages filters files against the image allow-list (non-matching files
// are skipped silently), stores each accepted file, then writes its record.
// Display orders continue from the campaign's current maximum, preserving
// input order. When initialBatch is true and the campaign has no images yet,
// the first accepted file becomes the primary image.
func (am *AssetManager) AttachImages(ctx context.Context, campaignID uuid.UUID, files []FileInput, initialBatch bool) ([]uuid.UUID, error) {
	if len(files) == 0 {
		return nil, nil
	}

	maxOrder, err := am.Store.MaxImageOrder(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	existing, err := am.Store.CountImages(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	var created []uuid.UUID
	accepted := 0
	for _, f := range files {
		if !constants.IsAllowedImage(f.Filename) {
			continue
		}

		url, err := am.saveFile(ctx, imageDir(campaignID), f)
		if err != nil {
			// Earlier files of this batch may stay behind as orphaned blobs;
			// the enclosing transaction rolls the records back.
			return created, err
		}

		img := model.CampaignImage{
			CampaignImageCampaignID:   campaignID,
			CampaignImageURL:          url,
			CampaignImageCaption:      strings.TrimSpace(f.Caption),
			CampaignImageDisplayOrder: maxOrder + 1 + accepted,
			CampaignImageIsPrimary:    initialBatch && existing == 0 && accepted == 0,
		}
		if err := am.Store.CreateImage(ctx, &img); err != nil {
			return created, err
		}
		created = append(created, img.CampaignImageID)
		accepted++
	}
	return created, nil
}

// AttachVideos stores accepted upload files first, then external links, with
// one running display order across the whole request so uploads always sort
// before the links that arrived with them. Blank link URLs are skipped;
// unknown link types fall back to youtube.
func (am *AssetManager) AttachVideos(ctx context.Context, campaignID uuid.UUID, uploads []FileInput, links []VideoLinkInput) ([]uuid.UUID, error) {
	if len(uploads) == 0 && len(links) == 0 {
		return nil, nil
	}

	maxOrder, err := am.Store.MaxVideoOrder(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	next := maxOrder + 1

	var created []uuid.UUID
	for _, f := range uploads {
		if !constants.IsAllowedVideo(f.Filename) {
			continue
		}

		url, err := am.saveFile(ctx, videoDir(campaignID), f)
		if err != nil {
			return created, err
		}

		vid := model.CampaignVideo{
			CampaignVideoCampaignID:   campaignID,
			CampaignVideoURL:          url,
			CampaignVideoType:         constants.VideoTypeUpload,
			CampaignVideoCaption:      strings.TrimSpace(f.Caption),
			CampaignVideoDisplayOrder: next,
		}
		if err := am.Store.CreateVideo(ctx, &vid); err != nil {
			return created, err
		}
		created = append(created, vid.CampaignVideoID)
		next++
	}

	for _, link := range links {
		u := strings.TrimSpace(link.URL)
		if u == "" {
			continue
		}
		vtype := strings.ToLower(strings.TrimSpace(link.Type))
		// "upload" is reserved for stored files, a link can never claim it.
		if !constants.IsValidVideoType(vtype) || vtype == constants.VideoTypeUpload {
			vtype = constants.VideoTypeYouTube
		}

		vid := model.CampaignVideo{
			CampaignVideoCampaignID:   campaignID,
			CampaignVideoURL:          u,
			CampaignVideoType:         vtype,
			CampaignVideoTitle:        strings.TrimSpace(link.Title),
			CampaignVideoCaption:      strings.TrimSpace(link.Caption),
			CampaignVideoDisplayOrder: next,
		}
		if err := am.Store.CreateVideo(ctx, &vid); err != nil {
			return created, err
		}
		created = append(created, vid.CampaignVideoID)
		next++
	}
	return created, nil
}

// SetPrimaryImage promotes imageID to primary within its campaign. The store
// applies the clear-then-set as one atomic pass.
func (am *AssetManager) SetPrimaryImage(ctx context.Context, imageID uuid.UUID) error {
	img, err := am.Store.GetImage(ctx, imageID)
	if err != nil {
		return err
	}
	return am.Store.PromoteImage(ctx, img.CampaignImageCampaignID, imageID)
}

// RemoveImage deletes the backing file (best-effort) and then the record.
// Sibling display orders are not renumbered and no other image is promoted
// when the removed one was primary; reads fall back to the lowest order.
func (am *AssetManager) RemoveImage(ctx context.Context, imageID uuid.UUID) (uuid.UUID, error) {
	img, err := am.Store.GetImage(ctx, imageID)
	if err != nil {
		return uuid.Nil, err
	}
	am.deleteFile(ctx, img.CampaignImageURL)
	if err := am.Store.DeleteImage(ctx, imageID); err != nil {
		return uuid.Nil, err
	}
	return img.CampaignImageCampaignID, nil
}

// RemoveVideo deletes the backing file for upload-type videos only, then the
// record. External links never touch storage.
func (am *AssetManager) RemoveVideo(ctx context.Context, videoID uuid.UUID) (uuid.UUID, error) {
	vid, err := am.Store.GetVideo(ctx, videoID)
	if err != nil {
		return uuid.Nil, err
	}
	if vid.CampaignVideoType == constants.VideoTypeUpload {
		am.deleteFile(ctx, vid.CampaignVideoURL)
	}
	if err := am.Store.DeleteVideo(ctx, videoID); err != nil {
		return uuid.Nil, err
	}
	return vid.CampaignVideoCampaignID, nil
}

// PurgeCampaignFiles best-effort deletes every image file and upload-type
// video file of a campaign. Record rows are left to the DB cascade.
func (am *AssetManager) PurgeCampaignFiles(ctx context.Context, campaignID uuid.UUID) {
	images, err := am.Store.ListImages(ctx, campaignID)
	if err != nil {
		log.Printf("[CAMPAIGNS] purge: list images %s err: %v", campaignID, err)
	}
	for i := range images {
		am.deleteFile(ctx, images[i].CampaignImageURL)
	}

	videos, err := am.Store.ListVideos(ctx, campaignID)
	if err != nil {
		log.Printf("[CAMPAIGNS] purge: list videos %s err: %v", campaignID, err)
	}
	for i := range videos {
		if videos[i].CampaignVideoType == constants.VideoTypeUpload {
			am.deleteFile(ctx, videos[i].CampaignVideoURL)
		}
	}
}

// PrimaryImage returns the flagged primary, else the lowest display order,
// else nil when the campaign has no images.
func (am *AssetManager) PrimaryImage(ctx context.Context, campaignID uuid.UUID) (*model.CampaignImage, error) {
	images, err := am.Store.ListImages(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}
	for i := range images {
		if images[i].CampaignImageIsPrimary {
			return &images[i], nil
		}
	}
	// ListImages is ordered ascending, so the first row is the fallback.
	return &images[0], nil
}

func (am *AssetManager) saveFile(ctx context.Context, dir string, f FileInput) (string, error) {
	src, err := f.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return am.Files.Save(ctx, dir, f.Filename, src)
}

// deleteFile swallows storage errors: a missing or undeletable blob must
// never fail the enclosing remove/delete operation.
func (am *AssetManager) deleteFile(ctx context.Context, url string) {
	if strings.TrimSpace(url) == "" {
		return
	}
	if err := am.Files.Delete(ctx, url); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[CAMPAIGNS] storage delete %q err (ignored): %v", url, err)
	}
}
