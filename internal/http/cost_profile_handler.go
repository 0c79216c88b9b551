package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/domain/dto"
	"github.com/guttosm/inventory-optimizer/internal/i18n"
	"github.com/guttosm/inventory-optimizer/internal/middleware"
	"github.com/guttosm/inventory-optimizer/internal/service"
)

// CostProfileHandler provides HTTP handlers for the operator's cost profile.
type CostProfileHandler struct {
	profiles service.CostProfilesService
}

// NewCostProfileHandler creates a new CostProfileHandler instance.
func NewCostProfileHandler(profiles service.CostProfilesService) *CostProfileHandler {
	return &CostProfileHandler{profiles: profiles}
}

// GetActive handles GET /api/cost-profile requests.
//
// @Summary      Get active cost profile
// @Description  Returns the cost coefficients and grid policy applied when a request omits them
// @Tags         Cost Profile
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=repository.CostProfile} "Active profile"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "No profile stored"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Profile store unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/cost-profile [get]
func (h *CostProfileHandler) GetActive(c *gin.Context) {
	builder := NewResponseBuilder(c)

	profile, err := h.profiles.GetActive(c.Request.Context())
	if err != nil {
		writeError(builder, err)
		return
	}
	if profile == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNoCostProfile, nil)
		return
	}

	builder.SuccessOK(profile)
}

// Update handles PUT /api/cost-profile requests.
//
// @Summary      Replace the active cost profile
// @Description  Stores a new versioned profile, makes it active and drops cached plans
// @Tags         Cost Profile
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateCostProfileRequest true "Cost profile"
// @Success      200 {object} dto.SuccessResponse{data=repository.CostProfile} "Stored profile"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Profile store unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/cost-profile [put]
func (h *CostProfileHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateCostProfileRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			writeError(builder, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = middleware.GetClient(c)
	}

	profile, err := h.profiles.Update(c.Request.Context(), *req)
	if err != nil {
		writeError(builder, err)
		return
	}

	middleware.AuditLog(middleware.LoggingServiceFrom(c), c, "update_cost_profile", "Cost profile updated", map[string]interface{}{
		"version":       profile.Version,
		"order_fee":     profile.OrderFee,
		"storage_cost":  profile.StorageCost,
		"shortage_cost": profile.ShortageCost,
	})

	builder.SuccessOK(profile)
}

// History handles GET /api/cost-profile/history requests.
//
// @Summary      List cost profile history
// @Description  Returns stored profiles, newest first
// @Tags         Cost Profile
// @Produce      json
// @Param        limit query int false "Maximum number of profiles (1-100)"
// @Success      200 {object} dto.SuccessResponse{data=[]repository.CostProfile} "Profile history"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Profile store unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/cost-profile/history [get]
func (h *CostProfileHandler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	profiles, err := h.profiles.History(c.Request.Context(), limit)
	if err != nil {
		writeError(builder, err)
		return
	}

	builder.SuccessOK(profiles)
}
