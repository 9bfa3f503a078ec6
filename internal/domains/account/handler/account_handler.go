package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"social-analytics-backend/internal/domains/account/model"
	"social-analytics-backend/internal/domains/account/service"
	"social-analytics-backend/internal/shared/response"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// ACCOUNT HANDLER
// =====================================================

type AccountHandler struct {
	service service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func respondAccountError(c *gin.Context, err error) {
	var accountErr *model.AccountError
	if errors.As(err, &accountErr) {
		switch accountErr.Code {
		case model.ErrCodeAccountNotFound:
			response.NotFound(c, accountErr.Code, accountErr.Message)
		case model.ErrCodeInvalidUsername, model.ErrCodeInvalidType:
			response.BadRequest(c, accountErr.Code, accountErr.Message)
		default:
			response.InternalServerError(c, accountErr.Code, accountErr.Message)
		}
		return
	}

	logger.Error("❌ [ACCOUNT] Request failed", err)
	response.InternalServerError(c, "SYS_001", "Failed to process account request")
}

// RegisterAccount handles POST /accounts
func (h *AccountHandler) RegisterAccount(c *gin.Context) {
	var req model.RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VAL_001", "Request body must contain a username")
		return
	}

	account, err := h.service.RegisterAccount(c.Request.Context(), &req)
	if err != nil {
		respondAccountError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated,
		"Account registered, first collection scheduled", account)
}

// GetAccount handles GET /accounts/:username
func (h *AccountHandler) GetAccount(c *gin.Context) {
	details, err := h.service.GetAccountDetails(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.Success(c, http.StatusOK, details)
}

// ListAccounts handles GET /accounts?limit=20&offset=0
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	accounts, total, err := h.service.ListAccounts(c.Request.Context(), limit, offset)
	if err != nil {
		respondAccountError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"accounts": accounts}, &response.Meta{
		Limit: limit,
		Total: total,
	})
}
