package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"modaly_backend/internals/constants"
	"modaly_backend/internals/features/home/posts/dto"
	"modaly_backend/internals/features/home/posts/model"
	helper "modaly_backend/internals/helpers"
	"modaly_backend/internals/helpers/oss"
)

var validatePost = validator.New()

type BlogPostController struct {
	DB      *gorm.DB
	Storage *oss.OSSService // nil when object storage is not configured
}

func NewBlogPostController(db *gorm.DB, storage *oss.OSSService) *BlogPostController {
	return &BlogPostController{DB: db, Storage: storage}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (ctrl *BlogPostController) uploadCover(c *fiber.Ctx) (string, bool) {
	fh, err := c.FormFile("cover_image")
	if err != nil || fh == nil {
		return "", false
	}
	if ctrl.Storage == nil {
		log.Println("[POSTS] cover upload skipped: storage not configured")
		return "", false
	}
	url, err := ctrl.Storage.UploadAsWebP(c.UserContext(), fh, "posts/covers")
	if err != nil {
		log.Printf("[POSTS] cover upload err: %v", err)
		return "", false
	}
	return url, true
}

// =============================
// Admin: Create Post
// =============================
func (ctrl *BlogPostController) CreatePost(c *fiber.Ctx) error {
	var body dto.CreateBlogPostRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePost.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title and content are required")
	}

	published := true
	if body.PostPublished != nil {
		published = *body.PostPublished
	}

	post := model.BlogPost{
		PostTitle:     strings.TrimSpace(body.PostTitle),
		PostContent:   strings.TrimSpace(body.PostContent),
		PostExcerpt:   dto.ExcerptOrDefault(body.PostExcerpt, body.PostContent),
		PostCategory:  constants.NormalizeBlogCategory(body.PostCategory),
		PostTags:      normalizeTags(body.PostTags),
		PostPublished: published,
	}
	if url, ok := ctrl.uploadCover(c); ok {
		post.PostCoverURL = url
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&post).Error; err != nil {
		log.Printf("[POSTS] create err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create post")
	}
	return helper.JsonCreated(c, "post created", dto.ToBlogPostDTO(post, true))
}

// =============================
// Admin: Update Post
// =============================
func (ctrl *BlogPostController) UpdatePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateBlogPostRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePost.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title and content are required")
	}

	var post model.BlogPost
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&post, "post_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}

	post.PostTitle = strings.TrimSpace(body.PostTitle)
	post.PostContent = strings.TrimSpace(body.PostContent)
	post.PostExcerpt = dto.ExcerptOrDefault(body.PostExcerpt, body.PostContent)
	post.PostCategory = constants.NormalizeBlogCategory(body.PostCategory)
	post.PostTags = normalizeTags(body.PostTags)
	if body.PostPublished != nil {
		post.PostPublished = *body.PostPublished
	}
	post.PostUpdatedAt = time.Now()

	if url, ok := ctrl.uploadCover(c); ok {
		if old := post.PostCoverURL; old != "" && ctrl.Storage != nil {
			if err := ctrl.Storage.Delete(c.UserContext(), old); err != nil {
				log.Printf("[POSTS] old cover delete err (ignored): %v", err)
			}
		}
		post.PostCoverURL = url
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&post).Error; err != nil {
		log.Printf("[POSTS] update err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update post")
	}
	return helper.JsonUpdated(c, "post updated", dto.ToBlogPostDTO(post, true))
}

// =============================
// Admin: Delete Post
// =============================
func (ctrl *BlogPostController) DeletePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&post, "post_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}

	if post.PostCoverURL != "" && ctrl.Storage != nil {
		if err := ctrl.Storage.Delete(c.UserContext(), post.PostCoverURL); err != nil {
			log.Printf("[POSTS] cover delete err (ignored): %v", err)
		}
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.BlogPost{}, "post_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete post")
	}
	return helper.JsonDeleted(c, "post deleted", fiber.Map{"post_id": id})
}

// =============================
// Admin: Get All Posts
// =============================
func (ctrl *BlogPostController) GetAllPosts(c *fiber.Ctx) error {
	return ctrl.listPosts(c, false)
}

// =============================
// Public: Get Published Posts
// =============================
func (ctrl *BlogPostController) GetPublishedPosts(c *fiber.Ctx) error {
	return ctrl.listPosts(c, true)
}

func (ctrl *BlogPostController) listPosts(c *fiber.Ctx, publishedOnly bool) error {
	paging := helper.ResolvePaging(c, 10, 50)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.BlogPost{})
	if publishedOnly {
		q = q.Where("post_published = ?", true)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("post_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve posts")
	}

	var posts []model.BlogPost
	if err := q.Order("post_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve posts")
	}

	result := make([]dto.BlogPostDTO, 0, len(posts))
	for _, p := range posts {
		result = append(result, dto.ToBlogPostDTO(p, false))
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", result, &pagination)
}

// =============================
// Public: Get Post By ID
// =============================
func (ctrl *BlogPostController) GetPublishedPostByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&post, "post_id = ? AND post_published = ?", id, true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}
	return helper.JsonOK(c, "ok", dto.ToBlogPostDTO(post, true))
}

// =============================
// Admin: Get Post By ID
// =============================
func (ctrl *BlogPostController) GetPostByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&post, "post_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}
	return helper.JsonOK(c, "ok", dto.ToBlogPostDTO(post, true))
}
