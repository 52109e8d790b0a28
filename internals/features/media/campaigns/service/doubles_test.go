package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"modaly_backend/internals/features/media/campaigns/model"
)

/* =========================
   In-memory CampaignStore
========================= */

type memoryStore struct {
	mu        sync.Mutex
	campaigns map[uuid.UUID]model.MediaCampaign
	images    map[uuid.UUID]model.CampaignImage
	videos    map[uuid.UUID]model.CampaignVideo

	failCreateImageAfter int // fail CreateImage once n creates have happened; 0 = never
	imageCreates         int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		campaigns: map[uuid.UUID]model.MediaCampaign{},
		images:    map[uuid.UUID]model.CampaignImage{},
		videos:    map[uuid.UUID]model.CampaignVideo{},
	}
}

func (s *memoryStore) CreateCampaign(ctx context.Context, c *model.MediaCampaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.CampaignID == uuid.Nil {
		c.CampaignID = uuid.New()
	}
	s.campaigns[c.CampaignID] = *c
	return nil
}

func (s *memoryStore) GetCampaign(ctx context.Context, id uuid.UUID) (*model.MediaCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, ErrCampaignNotFound
	}
	c.CampaignImages = s.imagesOfLocked(id)
	c.CampaignVideos = s.videosOfLocked(id)
	return &c, nil
}

func (s *memoryStore) UpdateCampaign(ctx context.Context, c *model.MediaCampaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[c.CampaignID]; !ok {
		return ErrCampaignNotFound
	}
	cp := *c
	cp.CampaignImages = nil
	cp.CampaignVideos = nil
	s.campaigns[c.CampaignID] = cp
	return nil
}

func (s *memoryStore) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.campaigns, id)
	for imgID, img := range s.images {
		if img.CampaignImageCampaignID == id {
			delete(s.images, imgID)
		}
	}
	for vidID, vid := range s.videos {
		if vid.CampaignVideoCampaignID == id {
			delete(s.videos, vidID)
		}
	}
	return nil
}

func (s *memoryStore) ListCampaigns(ctx context.Context, publishedOnly bool) ([]model.MediaCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.MediaCampaign
	for id, c := range s.campaigns {
		if publishedOnly && !c.CampaignPublished {
			continue
		}
		c.CampaignImages = s.imagesOfLocked(id)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CampaignDisplayOrder != out[j].CampaignDisplayOrder {
			return out[i].CampaignDisplayOrder > out[j].CampaignDisplayOrder
		}
		return out[i].CampaignCreatedAt.After(out[j].CampaignCreatedAt)
	})
	return out, nil
}

func (s *memoryStore) CreateImage(ctx context.Context, img *model.CampaignImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageCreates++
	if s.failCreateImageAfter > 0 && s.imageCreates > s.failCreateImageAfter {
		return fmt.Errorf("store: image insert failed")
	}
	if img.CampaignImageID == uuid.Nil {
		img.CampaignImageID = uuid.New()
	}
	s.images[img.CampaignImageID] = *img
	return nil
}

func (s *memoryStore) GetImage(ctx context.Context, id uuid.UUID) (*model.CampaignImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, ok := s.images[id]
	if !ok {
		return nil, ErrImageNotFound
	}
	return &img, nil
}

func (s *memoryStore) DeleteImage(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.images, id)
	return nil
}

func (s *memoryStore) ListImages(ctx context.Context, campaignID uuid.UUID) ([]model.CampaignImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imagesOfLocked(campaignID), nil
}

func (s *memoryStore) imagesOfLocked(campaignID uuid.UUID) []model.CampaignImage {
	var out []model.CampaignImage
	for _, img := range s.images {
		if img.CampaignImageCampaignID == campaignID {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CampaignImageDisplayOrder < out[j].CampaignImageDisplayOrder
	})
	return out
}

func (s *memoryStore) CountImages(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.imagesOfLocked(campaignID))), nil
}

func (s *memoryStore) MaxImageOrder(ctx context.Context, campaignID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	max := -1
	for _, img := range s.images {
		if img.CampaignImageCampaignID == campaignID && img.CampaignImageDisplayOrder > max {
			max = img.CampaignImageDisplayOrder
		}
	}
	return max, nil
}

func (s *memoryStore) PromoteImage(ctx context.Context, campaignID, imageID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, img := range s.images {
		if img.CampaignImageCampaignID != campaignID {
			continue
		}
		img.CampaignImageIsPrimary = id == imageID
		s.images[id] = img
	}
	return nil
}

func (s *memoryStore) CreateVideo(ctx context.Context, v *model.CampaignVideo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.CampaignVideoID == uuid.Nil {
		v.CampaignVideoID = uuid.New()
	}
	s.videos[v.CampaignVideoID] = *v
	return nil
}

func (s *memoryStore) GetVideo(ctx context.Context, id uuid.UUID) (*model.CampaignVideo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return nil, ErrVideoNotFound
	}
	return &v, nil
}

func (s *memoryStore) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.videos, id)
	return nil
}

func (s *memoryStore) ListVideos(ctx context.Context, campaignID uuid.UUID) ([]model.CampaignVideo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videosOfLocked(campaignID), nil
}

func (s *memoryStore) videosOfLocked(campaignID uuid.UUID) []model.CampaignVideo {
	var out []model.CampaignVideo
	for _, v := range s.videos {
		if v.CampaignVideoCampaignID == campaignID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CampaignVideoDisplayOrder < out[j].CampaignVideoDisplayOrder
	})
	return out
}

func (s *memoryStore) MaxVideoOrder(ctx context.Context, campaignID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	max := -1
	for _, v := range s.videos {
		if v.CampaignVideoCampaignID == campaignID && v.CampaignVideoDisplayOrder > max {
			max = v.CampaignVideoDisplayOrder
		}
	}
	return max, nil
}

// WithinTx snapshots the maps and restores them when fn fails, mirroring a
// rolled-back DB transaction.
func (s *memoryStore) WithinTx(ctx context.Context, fn func(CampaignStore) error) error {
	s.mu.Lock()
	snapCampaigns := make(map[uuid.UUID]model.MediaCampaign, len(s.campaigns))
	for k, v := range s.campaigns {
		snapCampaigns[k] = v
	}
	snapImages := make(map[uuid.UUID]model.CampaignImage, len(s.images))
	for k, v := range s.images {
		snapImages[k] = v
	}
	snapVideos := make(map[uuid.UUID]model.CampaignVideo, len(s.videos))
	for k, v := range s.videos {
		snapVideos[k] = v
	}
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.campaigns = snapCampaigns
		s.images = snapImages
		s.videos = snapVideos
		s.mu.Unlock()
		return err
	}
	return nil
}

var _ CampaignStore = (*memoryStore)(nil)

/* =========================
   Fake FileStorage
========================= */

type fakeStorage struct {
	mu      sync.Mutex
	saved   map[string][]byte // url -> content
	deleted []string
	saveN   int

	failSaveAfter int   // fail the (n+1)th save; 0 = never
	deleteErr     error // returned by every Delete
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string][]byte{}}
}

func (f *fakeStorage) Save(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveN++
	if f.failSaveAfter > 0 && f.saveN > f.failSaveAfter {
		return "", fmt.Errorf("storage: save failed")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("https://cdn.test/%s/%d_%s", dir, f.saveN, filename)
	f.saved[url] = data
	return url, nil
}

func (f *fakeStorage) Delete(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.saved, url)
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeStorage) savedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

var _ FileStorage = (*fakeStorage)(nil)

/* =========================
   Input helpers
========================= */

func fileOf(name, content string) FileInput {
	return FileInput{
		Filename: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}
