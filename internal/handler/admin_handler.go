package handler

import (
	"net/http"
	"strconv"

	"ai-clinic-backend/internal/service"
	"ai-clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService    *service.AdminService
	activityService *service.ActivityService
}

func NewAdminHandler(adminService *service.AdminService, activityService *service.ActivityService) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		activityService: activityService,
	}
}

// GetUsers lists users, optionally filtered by ?role=
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Query("role"))
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, users)
}

type CreateUserRequest struct {
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email" binding:"required,email"`
	Password    string              `json:"password" binding:"required,min=6"`
	Role        string              `json:"role" binding:"required"`
	ProfileData service.ProfileData `json:"profile_data"`
}

// CreateUser provisions a Doctor or Receptionist account
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Please add all fields")
		return
	}

	adminID, _ := identity(c)

	user, err := h.adminService.CreateUser(adminID, service.RegisterInput{
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

	utils.CreatedResponse(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// UpdateUser applies an admin edit to a user
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req service.UpdateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	adminID, _ := identity(c)

	user, err := h.adminService.UpdateUser(adminID, uint(id), req)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":                user.ID,
		"name":              user.Name,
		"email":             user.Email,
		"role":              user.Role,
		"subscription_plan": user.SubscriptionPlan,
	})
}

// DeleteUser removes a non-admin account and its role profile
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	adminID, _ := identity(c)

	if err := h.adminService.DeleteUser(adminID, uint(id)); err != nil {
		serviceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":      uint(id),
		"message": "User deleted",
	})
}

// GetAnalytics returns the clinic-wide dashboard counters
func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.adminService.GetAnalytics()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, analytics)
}

// GetActivityLogs returns the recent system activity feed
func (h *AdminHandler) GetActivityLogs(c *gin.Context) {
	logs, err := h.activityService.RecentLogs()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, logs)
}
