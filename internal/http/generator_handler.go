package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/domain/dto"
	"github.com/guttosm/inventory-optimizer/internal/generator"
	"github.com/guttosm/inventory-optimizer/internal/i18n"
	"github.com/guttosm/inventory-optimizer/internal/records"
)

// GeneratorHandler serves synthetic consumption for demos and load tests.
type GeneratorHandler struct {
	maxDays int
}

// NewGeneratorHandler creates a handler that generates at most maxDays days.
// A non-positive maxDays disables the limit.
func NewGeneratorHandler(maxDays int) *GeneratorHandler {
	return &GeneratorHandler{maxDays: maxDays}
}

// Generate handles POST /api/consumption/generate requests.
//
// @Summary      Generate synthetic supply records
// @Description  Draws one supply record per day from a seeded source and returns the records together with the daily consumption they imply, ready to post to /api/optimize. Records can be sorted and filtered by name.
// @Tags         Consumption
// @Accept       json
// @Produce      json
// @Param        request body dto.GenerateRequest true "Generator options"
// @Success      200 {object} dto.SuccessResponse{data=dto.GenerateResponse} "Generated records"
// @Failure      400 {object} dto.ErrorResponse "Invalid options"
// @Failure      422 {object} dto.ErrorResponse "Too many days"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/consumption/generate [post]
func (h *GeneratorHandler) Generate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.GenerateRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			writeError(builder, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if h.maxDays > 0 && req.Days > h.maxDays {
		builder.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyHorizonTooLong, nil,
			map[string]string{"field": "days"})
		return
	}

	resp, err := generate(req)
	if err != nil {
		writeError(builder, err)
		return
	}
	builder.SuccessOK(resp)
}

func generate(req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	var opts []generator.Option
	if req.Seed != nil {
		opts = append(opts, generator.WithSeed(*req.Seed))
	}
	if req.MinQuantity != nil || req.MaxQuantity != nil {
		minQty, maxQty := 5, 200
		if req.MinQuantity != nil {
			minQty = *req.MinQuantity
		}
		if req.MaxQuantity != nil {
			maxQty = *req.MaxQuantity
		}
		opts = append(opts, generator.WithQuantityRange(minQty, maxQty))
	}

	gen, err := generator.New(opts...)
	if err != nil {
		return nil, err
	}
	supplies, err := gen.Records(req.Days)
	if err != nil {
		return nil, err
	}

	// consumption always covers the whole generated horizon
	consumption := records.DailyConsumption(supplies)

	listed := supplies
	if req.SortBy != "" {
		listed, err = records.Sort(supplies, records.SortAlgorithm(req.SortAlgorithm), records.Criterion(req.SortBy))
		if err != nil {
			return nil, err
		}
	}
	if req.Search != "" {
		if records.Criterion(req.SortBy) == records.ByName {
			listed = records.BinarySearch(listed, req.Search)
		} else {
			listed = records.LinearSearch(listed, req.Search)
		}
		if listed == nil {
			listed = []records.Supply{}
		}
	}

	return &dto.GenerateResponse{
		Seed:        gen.Seed(),
		Records:     listed,
		Consumption: consumption,
	}, nil
}
