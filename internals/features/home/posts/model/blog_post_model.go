package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BlogPost struct {
	PostID        uuid.UUID      `gorm:"column:post_id;type:uuid;default:gen_random_uuid();primaryKey" json:"post_id"`
	PostTitle     string         `gorm:"column:post_title;type:varchar(200);not null" json:"post_title"`
	PostContent   string         `gorm:"column:post_content;type:text;not null" json:"post_content"`
	PostExcerpt   string         `gorm:"column:post_excerpt;type:varchar(300)" json:"post_excerpt"`
	PostCategory  string         `gorm:"column:post_category;type:varchar(50);default:'General'" json:"post_category"`
	PostTags      pq.StringArray `gorm:"column:post_tags;type:text[]" json:"post_tags"`
	PostCoverURL  string         `gorm:"column:post_cover_url;type:text" json:"post_cover_url"`
	PostPublished bool           `gorm:"column:post_published;default:true" json:"post_published"`
	PostCreatedAt time.Time      `gorm:"column:post_created_at;autoCreateTime" json:"post_created_at"`
	PostUpdatedAt time.Time      `gorm:"column:post_updated_at;autoUpdateTime" json:"post_updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
