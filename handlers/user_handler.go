package handlers

import (
	"strconv"

	"geopost-api/helper"
	"geopost-api/middleware"
	"geopost-api/models"
	"geopost-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", users)
}

// UpdateUser applies a partial profile update. Self or admin only.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	caller, ok := middleware.CurrentUser(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}
	if caller.ID != id && !caller.IsAdmin {
		h.Helper.SendForbiddenError(c, "Not enough permissions", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	user, err := h.userService.UpdateUser(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User updated", user)
}

// DeleteUser removes the account and, through the store-level cascade,
// every post it owns. Self or admin only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	caller, ok := middleware.CurrentUser(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}
	if caller.ID != id && !caller.IsAdmin {
		h.Helper.SendForbiddenError(c, "Not enough permissions", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User successfully deleted", h.Helper.EmptyJsonMap())
}

// SetVIP toggles the VIP entitlement. Admin only (route-gated).
func (h *UserHandler) SetVIP(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	vipParam := c.Query("vip_status")
	if vipParam == "" {
		h.Helper.SendBadRequest(c, "vip_status query parameter required", h.Helper.EmptyJsonMap())
		return
	}
	vip, err := strconv.ParseBool(vipParam)
	if err != nil {
		h.Helper.SendBadRequest(c, "vip_status must be a boolean", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.SetVIP(id, vip)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "VIP status updated", models.SetVIPResponse{
		Username: user.Username,
		IsVIP:    user.IsVIP,
	})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
