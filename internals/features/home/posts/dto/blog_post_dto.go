package dto

import (
	"strings"
	"time"

	"modaly_backend/internals/features/home/posts/model"
)

type CreateBlogPostRequest struct {
	PostTitle     string   `json:"post_title" form:"post_title" validate:"required,max=200"`
	PostContent   string   `json:"post_content" form:"post_content" validate:"required"`
	PostExcerpt   string   `json:"post_excerpt" form:"post_excerpt" validate:"max=300"`
	PostCategory  string   `json:"post_category" form:"post_category" validate:"max=50"`
	PostTags      []string `json:"post_tags" form:"post_tags"`
	PostPublished *bool    `json:"post_published" form:"post_published"`
}

type UpdateBlogPostRequest struct {
	PostTitle     string   `json:"post_title" form:"post_title" validate:"required,max=200"`
	PostContent   string   `json:"post_content" form:"post_content" validate:"required"`
	PostExcerpt   string   `json:"post_excerpt" form:"post_excerpt" validate:"max=300"`
	PostCategory  string   `json:"post_category" form:"post_category" validate:"max=50"`
	PostTags      []string `json:"post_tags" form:"post_tags"`
	PostPublished *bool    `json:"post_published" form:"post_published"`
}

type BlogPostDTO struct {
	PostID        string    `json:"post_id"`
	PostTitle     string    `json:"post_title"`
	PostContent   string    `json:"post_content,omitempty"`
	PostExcerpt   string    `json:"post_excerpt"`
	PostCategory  string    `json:"post_category"`
	PostTags      []string  `json:"post_tags"`
	PostCoverURL  string    `json:"post_cover_url"`
	PostPublished bool      `json:"post_published"`
	PostCreatedAt time.Time `json:"post_created_at"`
	PostUpdatedAt time.Time `json:"post_updated_at"`
}

const excerptLimit = 150

// ExcerptOrDefault falls back to the first 150 characters of the content.
func ExcerptOrDefault(excerpt, content string) string {
	if e := strings.TrimSpace(excerpt); e != "" {
		return e
	}
	content = strings.TrimSpace(content)
	if len(content) <= excerptLimit {
		return content
	}
	return content[:excerptLimit] + "..."
}

func ToBlogPostDTO(p model.BlogPost, withContent bool) BlogPostDTO {
	d := BlogPostDTO{
		PostID:        p.PostID.String(),
		PostTitle:     p.PostTitle,
		PostExcerpt:   p.PostExcerpt,
		PostCategory:  p.PostCategory,
		PostTags:      []string(p.PostTags),
		PostCoverURL:  p.PostCoverURL,
		PostPublished: p.PostPublished,
		PostCreatedAt: p.PostCreatedAt,
		PostUpdatedAt: p.PostUpdatedAt,
	}
	if d.PostTags == nil {
		d.PostTags = []string{}
	}
	if withContent {
		d.PostContent = p.PostContent
	}
	return d
}
