package dto

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"modaly_backend/internals/features/media/campaigns/model"
	"modaly_backend/internals/features/media/campaigns/service"
)

/* =========================
   Response DTOs
========================= */

type CampaignImageDTO struct {
	ImageID      string `json:"image_id"`
	URL          string `json:"url"`
	Caption      string `json:"caption"`
	DisplayOrder int    `json:"display_order"`
	IsPrimary    bool   `json:"is_primary"`
}

type CampaignVideoDTO struct {
	VideoID      string `json:"video_id"`
	URL          string `json:"url"`
	EmbedURL     string `json:"embed_url,omitempty"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Caption      string `json:"caption"`
	DisplayOrder int    `json:"display_order"`
}

type CampaignMetricDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type CampaignDTO struct {
	CampaignID     string `json:"campaign_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	CompletionDate string `json:"completion_date"`

	Metrics []CampaignMetricDTO `json:"metrics"`

	Overview string   `json:"overview"`
	Services []string `json:"services"`

	Published    bool `json:"published"`
	Featured     bool `json:"featured"`
	DisplayOrder int  `json:"display_order"`

	PrimaryImage *CampaignImageDTO  `json:"primary_image,omitempty"`
	Images       []CampaignImageDTO `json:"images"`
	Videos       []CampaignVideoDTO `json:"videos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CampaignSummaryDTO is the list-view shape: scalar fields plus the resolved
// primary image, without the full asset arrays.
type CampaignSummaryDTO struct {
	CampaignID     string            `json:"campaign_id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	CompletionDate string            `json:"completion_date"`
	Published      bool              `json:"published"`
	Featured       bool              `json:"featured"`
	DisplayOrder   int               `json:"display_order"`
	PrimaryImage   *CampaignImageDTO `json:"primary_image,omitempty"`
	ImageCount     int               `json:"image_count"`
	CreatedAt      time.Time         `json:"created_at"`
}

func ToCampaignImageDTO(img model.CampaignImage) CampaignImageDTO {
	return CampaignImageDTO{
		ImageID:      img.CampaignImageID.String(),
		URL:          img.CampaignImageURL,
		Caption:      img.CampaignImageCaption,
		DisplayOrder: img.CampaignImageDisplayOrder,
		IsPrimary:    img.CampaignImageIsPrimary,
	}
}

func ToCampaignVideoDTO(v model.CampaignVideo) CampaignVideoDTO {
	d := CampaignVideoDTO{
		VideoID:      v.CampaignVideoID.String(),
		URL:          v.CampaignVideoURL,
		Type:         v.CampaignVideoType,
		Title:        v.CampaignVideoTitle,
		Caption:      v.CampaignVideoCaption,
		DisplayOrder: v.CampaignVideoDisplayOrder,
	}
	if embed, ok := service.EmbedURL(v.CampaignVideoType, v.CampaignVideoURL); ok {
		d.EmbedURL = embed
	}
	return d
}

func ToCampaignDTO(c *model.MediaCampaign) CampaignDTO {
	d := CampaignDTO{
		CampaignID:     c.CampaignID.String(),
		Title:          c.CampaignTitle,
		Description:    c.CampaignDescription,
		Category:       c.CampaignCategory,
		CompletionDate: c.CampaignCompletionDate,
		Metrics: []CampaignMetricDTO{
			{Value: c.CampaignMetric1Value, Label: c.CampaignMetric1Label},
			{Value: c.CampaignMetric2Value, Label: c.CampaignMetric2Label},
			{Value: c.CampaignMetric3Value, Label: c.CampaignMetric3Label},
		},
		Overview:     c.CampaignOverview,
		Services:     c.ServicesList(),
		Published:    c.CampaignPublished,
		Featured:     c.CampaignFeatured,
		DisplayOrder: c.CampaignDisplayOrder,
		Images:       make([]CampaignImageDTO, 0, len(c.CampaignImages)),
		Videos:       make([]CampaignVideoDTO, 0, len(c.CampaignVideos)),
		CreatedAt:    c.CampaignCreatedAt,
		UpdatedAt:    c.CampaignUpdatedAt,
	}
	for _, img := range c.CampaignImages {
		d.Images = append(d.Images, ToCampaignImageDTO(img))
	}
	for _, v := range c.CampaignVideos {
		d.Videos = append(d.Videos, ToCampaignVideoDTO(v))
	}
	if primary := c.PrimaryImage(); primary != nil {
		p := ToCampaignImageDTO(*primary)
		d.PrimaryImage = &p
	}
	return d
}

func ToCampaignSummaryDTO(c *model.MediaCampaign) CampaignSummaryDTO {
	d := CampaignSummaryDTO{
		CampaignID:     c.CampaignID.String(),
		Title:          c.CampaignTitle,
		Description:    c.CampaignDescription,
		Category:       c.CampaignCategory,
		CompletionDate: c.CampaignCompletionDate,
		Published:      c.CampaignPublished,
		Featured:       c.CampaignFeatured,
		DisplayOrder:   c.CampaignDisplayOrder,
		ImageCount:     len(c.CampaignImages),
		CreatedAt:      c.CampaignCreatedAt,
	}
	if primary := c.PrimaryImage(); primary != nil {
		p := ToCampaignImageDTO(*primary)
		d.PrimaryImage = &p
	}
	return d
}

/* =========================
   Multipart form parsing
========================= */

func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// fileInputs pairs each uploaded file with its caption from the parallel
// captions array; missing entries mean no caption.
func fileInputs(headers []*multipart.FileHeader, captions []string) []service.FileInput {
	out := make([]service.FileInput, 0, len(headers))
	for i, fh := range headers {
		fh := fh
		in := service.FileInput{
			Filename: fh.Filename,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		}
		if i < len(captions) {
			in.Caption = captions[i]
		}
		out = append(out, in)
	}
	return out
}

// ParseCampaignForm reads the campaign multipart form: scalar fields, new image
// files ("images" + "image_captions"), new video files ("videos" +
// "video_captions") and the parallel video link arrays ("video_links" /
// "video_types" / "video_titles" / "video_link_captions").
func ParseCampaignForm(c *fiber.Ctx) (service.CampaignInput, service.CampaignAssets, error) {
	in := service.CampaignInput{
		Title:          c.FormValue("campaign_title"),
		Description:    c.FormValue("campaign_description"),
		Category:       c.FormValue("campaign_category"),
		CompletionDate: c.FormValue("campaign_completion_date"),

		Metric1Value: c.FormValue("campaign_metric1_value"),
		Metric1Label: c.FormValue("campaign_metric1_label"),
		Metric2Value: c.FormValue("campaign_metric2_value"),
		Metric2Label: c.FormValue("campaign_metric2_label"),
		Metric3Value: c.FormValue("campaign_metric3_value"),
		Metric3Label: c.FormValue("campaign_metric3_label"),

		Overview:         c.FormValue("campaign_overview"),
		ServicesProvided: c.FormValue("campaign_services_provided"),

		Published: formBool(c.FormValue("campaign_published", "true")),
		Featured:  formBool(c.FormValue("campaign_featured")),
	}
	if raw := strings.TrimSpace(c.FormValue("campaign_display_order")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			in.DisplayOrder = n
		}
	}

	var assets service.CampaignAssets
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body: a JSON/urlencoded request with no new assets.
		return in, assets, nil
	}

	assets.Images = fileInputs(form.File["images"], form.Value["image_captions"])
	assets.VideoFiles = fileInputs(form.File["videos"], form.Value["video_captions"])

	links := form.Value["video_links"]
	types := form.Value["video_types"]
	titles := form.Value["video_titles"]
	captions := form.Value["video_link_captions"]
	for i, link := range links {
		l := service.VideoLinkInput{URL: link}
		if i < len(types) {
			l.Type = types[i]
		}
		if i < len(titles) {
			l.Title = titles[i]
		}
		if i < len(captions) {
			l.Caption = captions[i]
		}
		assets.VideoLinks = append(assets.VideoLinks, l)
	}
	return in, assets, nil
}
