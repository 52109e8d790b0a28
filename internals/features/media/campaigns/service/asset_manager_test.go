package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"modaly_backend/internals/constants"
	"modaly_backend/internals/features/media/campaigns/model"
)

func seedCampaign(t *testing.T, store *memoryStore) uuid.UUID {
	t.Helper()
	c := model.MediaCampaign{CampaignTitle: "Clean Water", CampaignDescription: "Wells for villages"}
	if err := store.CreateCampaign(context.Background(), &c); err != nil {
		t.Fatalf("seed campaign: %v", err)
	}
	return c.CampaignID
}

func TestAttachImagesSkipsDisallowedExtensions(t *testing.T) {
	store := newMemoryStore()
	files := newFakeStorage()
	am := NewAssetManager(store, files)
	id := seedCampaign(t, store)

	created, err := am.AttachImages(context.Background(), id, []FileInput{
		fileOf("a.jpg", "aaa"),
		fileOf("notes.txt", "nope"),
		fileOf("b.PNG", "bbb"),
		fileOf("script.exe", "nope"),
	}, true)
	if err != nil {
		t.Fatalf("AttachImages: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created = %d, want 2", len(created))
	}
	if files.savedCount() != 2 {
		t.Fatalf("stored files = %d, want 2", files.savedCount())
	}

	images, _ := store.ListImages(context.Background(), id)
	for i, img := range images {
		if img.CampaignImageDisplayOrder != i {
			t.Errorf("image %d order = %d, want %d", i, img.CampaignImageDisplayOrder, i)
		}
	}
}

func TestAttachImagesOrderContinuesFromExisting(t *testing.T) {
	store := newMemoryStore()
	am := NewAssetManager(store, newFakeStorage())
	id := seedCampaign(t, store)

	if _, err := am.AttachImages(context.Background(), id, []FileInput{
		fileOf("a.jpg", "a"), fileOf("b.jpg", "b"),
	}, true); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if _, err := am.AttachImages(context.Background(), id, []FileInput{
		fileOf("c.jpg", "c"), fileOf("d.jpg", "d"),
	}, false); err != nil {
		t.Fatalf("second batch: %v", err)
	}

	images, _ := store.ListImages(context.Background(), id)
	if len(images) != 4 {
		t.Fatalf("images = %d, want 4", len(images))
	}
	for i, img := range images {
		if img.CampaignImageDisplayOrder != i {
			t.Errorf("order[%d] = %d, want %d", i, img.CampaignImageDisplayOrder, i)
		}
	}
}

func TestAttachImagesPrimaryOnlyOnInitialBatch(t *testing.T) {
	store := newMemoryStore()
	am := NewAssetManager(store, newFakeStorage())
	id := seedCampaign(t, store)

	if _, err := am.AttachImages(context.Background(), id, []FileInput{
		fileOf("skip.txt", "x"), // rejected, primary must land on the first *accepted* file
		fileOf("first.jpg", "1"),
		fileOf("second.jpg", "2"),
	}, true); err != nil {
		t.Fatalf("initial batch: %v", err)
	}

	images, _ := store.ListImages(context.Background(), id)
	if !images[0].CampaignImageIsPrimary {
		t.Error("first accepted image should be primary")
	}
	if images[1].CampaignImageIsPrimary {
		t.Error("second image must not be primary")
	}

	// Later batches never steal the flag.
	if _, err := am.AttachImages(context.Background(), id, []FileInput{fileOf("third.jpg", "3")}, false); err != nil {
		t.Fatalf("second batch: %v", err)
	}
	images, _ = store.ListImages(context.Background(), id)
	primaries := 0
	for _, img := range images {
		if img.CampaignImageIsPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		t.Fatalf("primaries = %d, want 1", primaries)
	}
}

func TestAttachImagesNoPrimaryWhenNotInitialBatch(t *testing.T) {
	store := newMemoryStore()
	am := NewAssetManager(store, newFakeStorage())
	id := seedCampaign(t, store)

	if _, err := am.AttachImages(context.Background(), id, []FileInput{fileOf("a.jpg", "a")}, false); err != nil {
		t.Fatalf("AttachImages: %v", err)
	}
	images, _ := store.ListImages(context.Background(), id)
	if images[0].CampaignImageIsPrimary {
		t.Error("non-initial batch must not set the primary flag")
	}
}

func TestAttachImagesStorageFailureStopsBatch(t *testing.T) {
	store := newMemoryStore()
	files := newFakeStorage()
	files.failSaveAfter = 1
	am := NewAssetManager(store, files)
	id := seedCampaign(t, store)

	created, err := am.AttachImages(context.Background(), id, []FileInput{
		fileOf("a.jpg", "a"), fileOf("b.jpg", "b"),
	}, true)
	if err == nil {
		t.Fatal("want error from failed save")
	}
	if len(created) != 1 {
		t.Fatalf("created = %d, want 1 (the file saved before the failure)", len(created))
	}
}

func TestAttachVideosUploadsBeforeLinks(t *testing.T) {
	store := newMemoryStore()
	am := NewAssetManager(store, newFakeStorage())
	id := seedCampaign(t, store)

	_, err := am.AttachVideos(context.Background(), id,
		[]FileInput{fileOf("clip.mp4", "vid"), fileOf("readme.md", "no")},
		[]VideoLinkInput{
			{URL: "https://youtu.be/abc123", Type: "youtube", Title: "Launch"},
			{URL: "   ", Type: "youtube"}, // blank, skipped
			{URL: "https://vimeo.com/987", Type: "somethingelse"},
		},
	)
	if err != nil {
		t.Fatalf("AttachVideos: %v", err)
	}

	videos, _ := store.ListVideos(context.Background(), id)
	if len(videos) != 3 {
		t.Fatalf("videos = %d, want 3", len(videos))
	}
	if videos[0].CampaignVideoType != constants.VideoTypeUpload {
		t.Errorf("first video type = %q, want upload", videos[0].CampaignVideoType)
	}
	if videos[1].CampaignVideoType != constants.VideoTypeYouTube || videos[1].CampaignVideoTitle != "Launch" {
		t.Errorf("second video = %q/%q, want youtube/Launch", videos[1].CampaignVideoType, videos[1].CampaignVideoTitle)
	}
	// Unknown types fall back to youtube.
	if videos[2].CampaignVideoType != constants.VideoTypeYouTube {
		t.Errorf("third video type = %q, want youtube fallback", videos[2].CampaignVideoType)
	}
	for i, v := range videos {
		if v.CampaignVideoDisplayOrder != i {
			t.Errorf("order[%d] = %d, want %d", i, v.CampaignVideoDisplayOrder, i)
		}
	}
}

func TestAttachAssetsRecordCaptions(t *testing.T) {
	store := newMemoryStore()
	am := NewAssetManager(store, newFakeStorage())
	id := seedCampaign(t, store)

	img := fileOf("well.jpg", "w")
	img.Caption = "  The finished well  "
	if _, err := am.AttachImages(context.Background(), id, []FileInput{img}, true); err != nil {
		t.Fatalf("AttachImages: %v", err)
	}

	clip := fileOf("drill.mp4", "d")
	clip.Caption = "Drilling day"
	if _, err := am.AttachVideos(context.Background(), id,
		[]FileInput{clip},
		[]VideoLinkInput{{URL: "https://youtu.be/a1", Type: "youtube", Caption: "Village tour"}},
	); err != nil {
		t.Fatalf("AttachVideos: %v", err)
	}

	images, _ := store.ListImages(context.Background(), id)
	if images[0].CampaignImageCaption != "The finished well" {
		t.Errorf("image caption = %q", images[0].CampaignImageCaption)
	}
	videos, _ := store.ListVideos(context.Background(), id)
	if videos[0].CampaignVideoCaption != "Drilling day" {
		t.Errorf("upload caption = %q", videos[0].CampaignVideoCaption)
	}
	if videos[1].CampaignVideoCaption != "Village tour" {
		t.Errorf("link caption = %q", videos[1].CampaignVideoCaption)
	}
}

func TestAttachVideosLinkCannotClaimUploadType(t *testing.T) {
	store := newMemoryStore()
	am := NewAssetManager(store, newFakeStorage())
	id := seedCampaign(t, store)

	if _, err := am.AttachVideos(context.Background(), id, nil,
		[]VideoLinkInput{{URL: "https://evil.example/clip", Type: "upload"}},
	); err != nil {
		t.Fatalf("AttachVideos: %v", err)
	}

	videos, _ := store.ListVideos(context.Background(), id)
	if videos[0].CampaignVideoType != constants.VideoTypeYouTube {
		t.Errorf("type = %q, want youtube (upload is reserved for stored files)", videos[0].CampaignVideoType)
	}
}

func TestSetPrimaryImageKeepsExactlyOnePrimary(t *testing.T) {
	store := newMemoryStore()
	am := NewAssetManager(store, newFakeStorage())
	id := seedCampaign(t, store)

	created, err := am.AttachImages(context.Background(), id, []FileInput{
		fileOf("a.jpg", "a"), fileOf("b.jpg", "b"), fileOf("c.jpg", "c"),
	}, true)
	if err != nil {
		t.Fatalf("AttachImages: %v", err)
	}

	if err := am.SetPrimaryImage(context.Background(), created[2]); err != nil {
		t.Fatalf("SetPrimaryImage: %v", err)
	}

	images, _ := store.ListImages(context.Background(), id)
	for _, img := range images {
		want := img.CampaignImageID == created[2]
		if img.CampaignImageIsPrimary != want {
			t.Errorf("image %s primary = %v, want %v", img.CampaignImageID, img.CampaignImageIsPrimary, want)
		}
	}
}

func TestSetPrimaryImageConcurrentCallsLeaveOnePrimary(t *testing.T) {
	store := newMemoryStore()
	am := NewAssetManager(store, newFakeStorage())
	id := seedCampaign(t, store)

	created, err := am.AttachImages(context.Background(), id, []FileInput{
		fileOf("a.jpg", "a"), fileOf("b.jpg", "b"),
		fileOf("c.jpg", "c"), fileOf("d.jpg", "d"),
	}, true)
	if err != nil {
		t.Fatalf("AttachImages: %v", err)
	}

	// Two admins hammering set-primary at once: whatever interleaving wins,
	// exactly one image may hold the flag afterwards.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		target := created[i%len(created)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := am.SetPrimaryImage(context.Background(), target); err != nil {
				t.Errorf("SetPrimaryImage: %v", err)
			}
		}()
	}
	wg.Wait()

	images, _ := store.ListImages(context.Background(), id)
	primaries := 0
	for _, img := range images {
		if img.CampaignImageIsPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		t.Fatalf("primaries = %d, want exactly 1", primaries)
	}
}

func TestSetPrimaryImageUnknownID(t *testing.T) {
	am := NewAssetManager(newMemoryStore(), newFakeStorage())
	if err := am.SetPrimaryImage(context.Background(), uuid.New()); err != ErrImageNotFound {
		t.Fatalf("err = %v, want ErrImageNotFound", err)
	}
}

func TestRemoveImageDeletesFileAndKeepsSiblingOrders(t *testing.T) {
	store := newMemoryStore()
	files := newFakeStorage()
	am := NewAssetManager(store, files)
	id := seedCampaign(t, store)

	created, err := am.AttachImages(context.Background(), id, []FileInput{
		fileOf("a.jpg", "a"), fileOf("b.jpg", "b"), fileOf("c.jpg", "c"),
	}, true)
	if err != nil {
		t.Fatalf("AttachImages: %v", err)
	}

	// Remove the primary: no sibling is promoted, orders keep their gap.
	campaignID, err := am.RemoveImage(context.Background(), created[0])
	if err != nil {
		t.Fatalf("RemoveImage: %v", err)
	}
	if campaignID != id {
		t.Errorf("campaignID = %s, want %s", campaignID, id)
	}
	if len(files.deleted) != 1 {
		t.Errorf("deleted files = %d, want 1", len(files.deleted))
	}

	images, _ := store.ListImages(context.Background(), id)
	if len(images) != 2 {
		t.Fatalf("images = %d, want 2", len(images))
	}
	for _, img := range images {
		if img.CampaignImageIsPrimary {
			t.Error("no image should be flagged primary after the primary is removed")
		}
	}
	if images[0].CampaignImageDisplayOrder != 1 || images[1].CampaignImageDisplayOrder != 2 {
		t.Errorf("orders = %d,%d; want 1,2 (no renumbering)",
			images[0].CampaignImageDisplayOrder, images[1].CampaignImageDisplayOrder)
	}

	// The read side falls back to the lowest remaining order.
	primary, err := am.PrimaryImage(context.Background(), id)
	if err != nil {
		t.Fatalf("PrimaryImage: %v", err)
	}
	if primary == nil || primary.CampaignImageID != created[1] {
		t.Error("primary fallback should be the lowest-order remaining image")
	}
}

func TestRemoveImageStorageFailureStillDeletesRecord(t *testing.T) {
	store := newMemoryStore()
	files := newFakeStorage()
	am := NewAssetManager(store, files)
	id := seedCampaign(t, store)

	created, err := am.AttachImages(context.Background(), id, []FileInput{fileOf("a.jpg", "a")}, true)
	if err != nil {
		t.Fatalf("AttachImages: %v", err)
	}

	files.deleteErr = context.DeadlineExceeded
	if _, err := am.RemoveImage(context.Background(), created[0]); err != nil {
		t.Fatalf("RemoveImage should swallow storage errors, got %v", err)
	}
	if n, _ := store.CountImages(context.Background(), id); n != 0 {
		t.Fatalf("image record should be gone, count = %d", n)
	}
}

func TestRemoveVideoOnlyTouchesStorageForUploads(t *testing.T) {
	store := newMemoryStore()
	files := newFakeStorage()
	am := NewAssetManager(store, files)
	id := seedCampaign(t, store)

	created, err := am.AttachVideos(context.Background(), id,
		[]FileInput{fileOf("clip.mp4", "vid")},
		[]VideoLinkInput{{URL: "https://youtu.be/xyz", Type: "youtube"}},
	)
	if err != nil {
		t.Fatalf("AttachVideos: %v", err)
	}

	if _, err := am.RemoveVideo(context.Background(), created[1]); err != nil {
		t.Fatalf("remove link video: %v", err)
	}
	if len(files.deleted) != 0 {
		t.Fatalf("link removal touched storage: %v", files.deleted)
	}

	if _, err := am.RemoveVideo(context.Background(), created[0]); err != nil {
		t.Fatalf("remove upload video: %v", err)
	}
	if len(files.deleted) != 1 {
		t.Fatalf("upload removal should delete its file, deleted = %d", len(files.deleted))
	}
}

func TestPurgeCampaignFiles(t *testing.T) {
	store := newMemoryStore()
	files := newFakeStorage()
	am := NewAssetManager(store, files)
	id := seedCampaign(t, store)

	if _, err := am.AttachImages(context.Background(), id, []FileInput{
		fileOf("a.jpg", "a"), fileOf("b.jpg", "b"),
	}, true); err != nil {
		t.Fatalf("AttachImages: %v", err)
	}
	if _, err := am.AttachVideos(context.Background(), id,
		[]FileInput{fileOf("clip.mp4", "v")},
		[]VideoLinkInput{{URL: "https://vimeo.com/1", Type: "vimeo"}},
	); err != nil {
		t.Fatalf("AttachVideos: %v", err)
	}

	am.PurgeCampaignFiles(context.Background(), id)

	// 2 images + 1 upload video; the external link never had a file.
	if len(files.deleted) != 3 {
		t.Fatalf("deleted = %d, want 3", len(files.deleted))
	}
}
