package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social-analytics-backend/internal/domains/user/model"
	"social-analytics-backend/internal/domains/user/service"
	"social-analytics-backend/internal/shared/response"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// USER HANDLER
// =====================================================

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func respondUserError(c *gin.Context, err error) {
	var userErr *model.UserError
	if errors.As(err, &userErr) {
		switch userErr.Code {
		case model.ErrCodeEmailTaken:
			response.Conflict(c, userErr.Code, userErr.Message)
		case model.ErrCodeInvalidCredentials:
			response.Unauthorized(c, userErr.Code, userErr.Message)
		case model.ErrCodeValidation:
			response.BadRequest(c, userErr.Code, userErr.Message)
		default:
			response.InternalServerError(c, userErr.Code, userErr.Message)
		}
		return
	}

	logger.Error("❌ [USER] Request failed", err)
	response.InternalServerError(c, "SYS_001", "Failed to process request")
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrCodeValidation, "Request body must contain email and password")
		return
	}

	auth, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, auth)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrCodeValidation, "Request body must contain email and password")
		return
	}

	auth, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}
