package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"social-analytics-backend/internal/domains/post/model"
	"social-analytics-backend/internal/domains/post/repository"
	"social-analytics-backend/internal/shared/response"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// POST HANDLER
// =====================================================
// Posts are produced by the collection worker; the HTTP surface is
// read-only, so the handler talks to the repository directly.

type PostHandler struct {
	posts repository.PostRepository
}

func NewPostHandler(posts repository.PostRepository) *PostHandler {
	return &PostHandler{posts: posts}
}

// ListPosts handles GET /posts?limit=20&offset=0
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := h.posts.List(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("❌ [POST] Failed to list posts", err)
		response.InternalServerError(c, "SYS_001", "Failed to list posts")
		return
	}

	total, err := h.posts.CountAll(c.Request.Context())
	if err != nil {
		logger.Error("❌ [POST] Failed to count posts", err)
		response.InternalServerError(c, "SYS_001", "Failed to list posts")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"posts": posts}, &response.Meta{
		Limit: limit,
		Total: total,
	})
}

// GetAccountPosts handles GET /posts/:username?sort=post_timestamp&limit=20
func (h *PostHandler) GetAccountPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	sortBy := c.DefaultQuery("sort", repository.SortByTimestamp)

	posts, err := h.posts.GetByUsername(c.Request.Context(), c.Param("username"), sortBy, limit)
	if err != nil {
		if errors.Is(err, model.ErrInvalidSort) {
			response.BadRequest(c, model.ErrCodeInvalidSort,
				"sort must be post_timestamp or like_count")
			return
		}
		logger.Error("❌ [POST] Failed to get account posts", err)
		response.InternalServerError(c, "SYS_001", "Failed to get posts")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"username": c.Param("username"),
		"posts":    posts,
		"count":    len(posts),
	})
}

// GetRecentPosts handles GET /posts/recent?limit=20
func (h *PostHandler) GetRecentPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	posts, err := h.posts.RecentCollected(c.Request.Context(), limit)
	if err != nil {
		logger.Error("❌ [POST] Failed to get recent posts", err)
		response.InternalServerError(c, "SYS_001", "Failed to get recent posts")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// GetTrendingHashtags handles GET /posts/hashtags/trending?limit=20
func (h *PostHandler) GetTrendingHashtags(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	hashtags, err := h.posts.TrendingHashtags(c.Request.Context(), limit)
	if err != nil {
		logger.Error("❌ [POST] Failed to aggregate hashtags", err)
		response.InternalServerError(c, "SYS_001", "Failed to aggregate hashtags")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hashtags": hashtags, "count": len(hashtags)})
}
