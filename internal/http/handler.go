package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/domain/dto"
	"github.com/guttosm/inventory-optimizer/internal/i18n"
	"github.com/guttosm/inventory-optimizer/internal/middleware"
	"github.com/guttosm/inventory-optimizer/internal/service"
)

// Handler serves the optimization endpoint.
type Handler struct {
	optimizer service.Optimizer
}

// NewHandler creates a new Handler instance.
func NewHandler(optimizer service.Optimizer) *Handler {
	return &Handler{optimizer: optimizer}
}

// Optimize handles POST /api/optimize requests.
//
// @Summary      Compute the minimum-cost reorder plan
// @Description  Finds the order quantities that minimise ordering, storage and shortage cost over the given daily consumption. Omitted cost fields fall back to the active cost profile, then to server defaults. With algorithm "both" the top-down and bottom-up solvers are cross-checked. Supports idempotency via Idempotency-Key header.
// @Tags         Optimizer
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        Accept-Language header string false "Response language (en, pt, nl)"
// @Param        request body dto.OptimizeRequest true "Consumption and cost parameters"
// @Success      200 {object} dto.SuccessResponse{data=model.Plan} "Optimal plan"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Horizon too long, capacity above the server limit, or initial stock above capacity"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Solver divergence or internal error"
// @Failure      504 {object} dto.ErrorResponse "Solve timed out"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/optimize [post]
func (h *Handler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.OptimizeRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			writeError(builder, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	loggingService := middleware.LoggingServiceFrom(c)

	plan, err := h.optimizer.Optimize(c.Request.Context(), req.ToModel())
	if err != nil {
		middleware.AuditLogError(loggingService, c, "optimize", "Optimization failed", err, map[string]interface{}{
			"days":      len(req.Consumption),
			"algorithm": req.Algorithm,
		})
		writeError(builder, err)
		return
	}

	middleware.AuditLog(loggingService, c, "optimize", "Reorder plan computed", map[string]interface{}{
		"days":      len(plan.Orders),
		"algorithm": plan.Algorithm,
		"min_cost":  plan.MinCost,
	})

	builder.SuccessOK(plan)
}
