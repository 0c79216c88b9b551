package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/guttosm/inventory-optimizer/internal/circuitbreaker"
	"github.com/guttosm/inventory-optimizer/internal/domain/dto"
	"github.com/guttosm/inventory-optimizer/internal/generator"
	"github.com/guttosm/inventory-optimizer/internal/i18n"
	"github.com/guttosm/inventory-optimizer/internal/optimizer"
	"github.com/guttosm/inventory-optimizer/internal/service"
)

// apiError is the status and message key an error is reported with.
type apiError struct {
	status  int
	key     string
	details map[string]string
}

// validationKeys maps request field names to their translated message.
var validationKeys = map[string]string{
	"consumption":     i18n.ErrKeyValidationConsumption,
	"order_fee":       i18n.ErrKeyValidationCostParams,
	"storage_cost":    i18n.ErrKeyValidationCostParams,
	"shortage_cost":   i18n.ErrKeyValidationCostParams,
	"initial_stock":   i18n.ErrKeyValidationInitialStock,
	"step":            i18n.ErrKeyValidationStep,
	"capacity_factor": i18n.ErrKeyValidationCapacityFactor,
	"algorithm":       i18n.ErrKeyValidationAlgorithm,
	"days":            i18n.ErrKeyValidationDays,
	"min_quantity":    i18n.ErrKeyValidationGenerator,
	"max_quantity":    i18n.ErrKeyValidationGenerator,
	"sort_by":         i18n.ErrKeyValidationGenerator,
	"sort_algorithm":  i18n.ErrKeyValidationGenerator,
}

// classify maps domain and service errors onto HTTP statuses.
func classify(err error) apiError {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		field := validationErr.Field
		if i := strings.IndexByte(field, '['); i > 0 {
			field = field[:i]
		}
		key, ok := validationKeys[field]
		if !ok {
			key = i18n.ErrKeyInvalidRequest
		}
		return apiError{
			status:  http.StatusBadRequest,
			key:     key,
			details: map[string]string{"field": validationErr.Field, "reason": validationErr.Message},
		}
	}

	switch {
	case errors.Is(err, optimizer.ErrEmptyHorizon), errors.Is(err, optimizer.ErrNegativeConsumption):
		return apiError{status: http.StatusBadRequest, key: i18n.ErrKeyValidationConsumption}
	case errors.Is(err, optimizer.ErrInvalidCostParams):
		return apiError{status: http.StatusBadRequest, key: i18n.ErrKeyValidationCostParams}
	case errors.Is(err, optimizer.ErrInvalidStep):
		return apiError{status: http.StatusBadRequest, key: i18n.ErrKeyValidationStep}
	case errors.Is(err, optimizer.ErrInvalidCapacityFactor):
		return apiError{status: http.StatusBadRequest, key: i18n.ErrKeyValidationCapacityFactor}
	case errors.Is(err, optimizer.ErrUnknownAlgorithm):
		return apiError{status: http.StatusBadRequest, key: i18n.ErrKeyValidationAlgorithm}
	case errors.Is(err, optimizer.ErrInitialStockOutOfRange):
		return apiError{status: http.StatusUnprocessableEntity, key: i18n.ErrKeyValidationInitialStock}
	case errors.Is(err, service.ErrHorizonTooLong):
		return apiError{status: http.StatusUnprocessableEntity, key: i18n.ErrKeyHorizonTooLong}
	case errors.Is(err, optimizer.ErrCapacityTooLarge):
		return apiError{status: http.StatusUnprocessableEntity, key: i18n.ErrKeyCapacityTooLarge}
	case errors.Is(err, generator.ErrInvalidCount):
		return apiError{status: http.StatusBadRequest, key: i18n.ErrKeyValidationDays}
	case errors.Is(err, generator.ErrInvalidRange):
		return apiError{status: http.StatusBadRequest, key: i18n.ErrKeyValidationGenerator}
	case errors.Is(err, optimizer.ErrSolverDivergence):
		return apiError{status: http.StatusInternalServerError, key: i18n.ErrKeySolverDivergence}
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return apiError{status: http.StatusServiceUnavailable, key: i18n.ErrKeyServiceUnavailable}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apiError{status: http.StatusGatewayTimeout, key: i18n.ErrKeyTimeout}
	default:
		return apiError{status: http.StatusInternalServerError, key: i18n.ErrKeyInternalError}
	}
}

// writeError reports err through the response builder.
func writeError(b *ResponseBuilder, err error) {
	e := classify(err)
	b.ErrorWithDetails(e.status, e.key, err, e.details)
}
