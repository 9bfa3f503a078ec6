package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"social-analytics-backend/internal/domains/analytics/model"
	"social-analytics-backend/internal/domains/analytics/service"
	"social-analytics-backend/internal/shared/response"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// ANALYTICS HANDLER
// =====================================================

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// respondError maps analytics errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var analyticsErr *model.AnalyticsError
	if errors.As(err, &analyticsErr) {
		switch analyticsErr.Code {
		case model.ErrCodeAccountNotFound:
			response.NotFound(c, analyticsErr.Code, analyticsErr.Message)
		case model.ErrCodeInvalidMetric, model.ErrCodeInvalidPeriod,
			model.ErrCodeTooManyAccounts, model.ErrCodeInvalidInput:
			response.BadRequest(c, analyticsErr.Code, analyticsErr.Message)
		default:
			response.InternalServerError(c, analyticsErr.Code, analyticsErr.Message)
		}
		return
	}

	logger.Error("❌ [ANALYTICS] Request failed", err)
	response.InternalServerError(c, "SYS_001", "Failed to compute analytics")
}

// GetEngagementRate handles GET /analytics/:username/engagement
func (h *AnalyticsHandler) GetEngagementRate(c *gin.Context) {
	result, err := h.service.GetEngagementRate(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetAccountSummary handles GET /analytics/:username/summary
func (h *AnalyticsHandler) GetAccountSummary(c *gin.Context) {
	result, err := h.service.GetAccountSummary(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetContentPerformance handles GET /analytics/:username/content
func (h *AnalyticsHandler) GetContentPerformance(c *gin.Context) {
	result, err := h.service.GetContentPerformance(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetHashtagPerformance handles GET /analytics/:username/hashtags
func (h *AnalyticsHandler) GetHashtagPerformance(c *gin.Context) {
	result, err := h.service.GetHashtagPerformance(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetTimingAnalysis handles GET /analytics/:username/timing
func (h *AnalyticsHandler) GetTimingAnalysis(c *gin.Context) {
	result, err := h.service.GetTimingAnalysis(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetGrowthTrend handles GET /analytics/:username/growth?days=30
func (h *AnalyticsHandler) GetGrowthTrend(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			response.BadRequest(c, model.ErrCodeInvalidPeriod, "days must be an integer between 1 and 365")
			return
		}
		days = parsed
	}

	result, err := h.service.GetGrowthTrend(c.Request.Context(), c.Param("username"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetContentStrategy handles GET /analytics/:username/strategy
func (h *AnalyticsHandler) GetContentStrategy(c *gin.Context) {
	result, err := h.service.GetContentStrategy(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetDashboard handles GET /analytics/:username/dashboard
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	result, err := h.service.GetDashboard(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

type compareRequest struct {
	Usernames []string `json:"usernames" binding:"required"`
}

// CompareAccounts handles POST /analytics/compare
func (h *AnalyticsHandler) CompareAccounts(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VAL_001", "Request body must contain a usernames array")
		return
	}

	result, err := h.service.CompareAccounts(c.Request.Context(), req.Usernames)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

type batchRequest struct {
	Usernames []string `json:"usernames" binding:"required"`
	Metrics   []string `json:"metrics"`
}

// BatchAnalytics handles POST /analytics/batch
func (h *AnalyticsHandler) BatchAnalytics(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VAL_001", "Request body must contain a usernames array")
		return
	}

	result, err := h.service.BatchAnalytics(c.Request.Context(), req.Usernames, req.Metrics)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetAvailableAccounts handles GET /analytics/accounts
func (h *AnalyticsHandler) GetAvailableAccounts(c *gin.Context) {
	accounts, err := h.service.GetAvailableAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"accounts": accounts,
		"count":    len(accounts),
	})
}

// HealthCheck handles GET /analytics/health
func (h *AnalyticsHandler) HealthCheck(c *gin.Context) {
	report, err := h.service.HealthCheck(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}
