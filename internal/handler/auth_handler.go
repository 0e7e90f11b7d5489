package handler

import (
	"net/http"

	"ai-clinic-backend/internal/service"
	"ai-clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type RegisterRequest struct {
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email" binding:"required,email"`
	Password    string              `json:"password" binding:"required,min=6"`
	Role        string              `json:"role" binding:"required,oneof=Admin Doctor Receptionist Patient"`
	ProfileData service.ProfileData `json:"profile_data"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles public registration for all four roles
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Please add all fields")
		return
	}

	response, err := h.authService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Profile:  req.ProfileData,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.CreatedResponse(c, response)
}

// Login handles authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.SuccessResponse(c, response)
}
