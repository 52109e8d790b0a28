package model

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestServicesList(t *testing.T) {
	c := MediaCampaign{CampaignServicesProvided: "Wells drilled\n  Filters installed  \n\nTraining sessions\n"}
	got := c.ServicesList()
	want := []string{"Wells drilled", "Filters installed", "Training sessions"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ServicesList() = %v, want %v", got, want)
	}

	empty := MediaCampaign{CampaignServicesProvided: "   \n \n"}
	if got := empty.ServicesList(); len(got) != 0 {
		t.Errorf("ServicesList() on blank input = %v, want empty", got)
	}
}

func TestPrimaryImagePrefersFlag(t *testing.T) {
	flagged := uuid.New()
	c := MediaCampaign{CampaignImages: []CampaignImage{
		{CampaignImageID: uuid.New(), CampaignImageDisplayOrder: 0},
		{CampaignImageID: flagged, CampaignImageDisplayOrder: 2, CampaignImageIsPrimary: true},
	}}
	if got := c.PrimaryImage(); got == nil || got.CampaignImageID != flagged {
		t.Error("flagged image should win regardless of order")
	}
}

func TestPrimaryImageFallsBackToLowestOrder(t *testing.T) {
	lowest := uuid.New()
	c := MediaCampaign{CampaignImages: []CampaignImage{
		{CampaignImageID: uuid.New(), CampaignImageDisplayOrder: 3},
		{CampaignImageID: lowest, CampaignImageDisplayOrder: 1},
		{CampaignImageID: uuid.New(), CampaignImageDisplayOrder: 2},
	}}
	if got := c.PrimaryImage(); got == nil || got.CampaignImageID != lowest {
		t.Error("fallback should pick the lowest display order")
	}
}

func TestPrimaryImageEmpty(t *testing.T) {
	c := MediaCampaign{}
	if c.PrimaryImage() != nil {
		t.Error("no images loaded should yield nil")
	}
}
