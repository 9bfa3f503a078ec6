package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social-analytics-backend/internal/domains/collection/model"
	"social-analytics-backend/internal/domains/collection/service"
	"social-analytics-backend/internal/shared/response"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// COLLECTION HANDLER
// =====================================================

// CollectEnqueuer schedules sweeps for the background worker.
// Satisfied by the queue task client.
type CollectEnqueuer interface {
	EnqueueCollectAll(ctx context.Context, trigger string) error
}

type CollectionHandler struct {
	service  service.CollectionService
	enqueuer CollectEnqueuer
}

func NewCollectionHandler(service service.CollectionService, enqueuer CollectEnqueuer) *CollectionHandler {
	return &CollectionHandler{service: service, enqueuer: enqueuer}
}

// CollectAccount handles POST /collect/:username - synchronous single
// account collection, useful for demos and first-time registration.
func (h *CollectionHandler) CollectAccount(c *gin.Context) {
	result, err := h.service.ScrapeAccount(c.Request.Context(), c.Param("username"))
	if err != nil {
		var collectionErr *model.CollectionError
		if errors.As(err, &collectionErr) {
			response.InternalServerError(c, collectionErr.Code, collectionErr.Message)
			return
		}
		logger.Error("❌ [COLLECT] Collection failed", err)
		response.InternalServerError(c, "SYS_001", "Collection failed")
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Collection completed", result)
}

// CollectAll handles POST /collect - enqueues a background sweep over
// every tracked account instead of blocking the request.
func (h *CollectionHandler) CollectAll(c *gin.Context) {
	if err := h.enqueuer.EnqueueCollectAll(c.Request.Context(), "api"); err != nil {
		logger.Error("❌ [COLLECT] Failed to enqueue sweep", err)
		response.InternalServerError(c, "SYS_001", "Failed to schedule collection")
		return
	}

	response.SuccessWithMessage(c, http.StatusAccepted,
		"Collection sweep scheduled", gin.H{"status": "queued"})
}

// Status handles GET /collect/status
func (h *CollectionHandler) Status(c *gin.Context) {
	status, err := h.service.Status(c.Request.Context())
	if err != nil {
		logger.Error("❌ [COLLECT] Status check failed", err)
		response.InternalServerError(c, "SYS_001", "Failed to read collection status")
		return
	}

	response.Success(c, http.StatusOK, status)
}
