package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/guttosm/inventory-optimizer/internal/i18n"
	"github.com/guttosm/inventory-optimizer/internal/service"
)

const (
	defaultLogsLimit = 50
	maxLogsLimit     = 200
)

// LogsPage is one page of stored request and audit logs.
type LogsPage struct {
	Total   int64            `json:"total"`
	Entries []model.LogEntry `json:"entries"`
}

// LogsHandler serves the persisted request and audit trail.
type LogsHandler struct {
	logs service.LoggingService
}

// NewLogsHandler creates a new LogsHandler instance.
func NewLogsHandler(logs service.LoggingService) *LogsHandler {
	return &LogsHandler{logs: logs}
}

// List handles GET /api/logs requests.
//
// @Summary      Query request and audit logs
// @Description  Looks up persisted logs, newest first. Pass the request_id of a response to trace it.
// @Tags         Logs
// @Produce      json
// @Param        request_id query string false "Request ID"
// @Param        level      query string false "Log level"
// @Param        action     query string false "Audit action, e.g. optimize"
// @Param        since      query string false "RFC3339 lower bound on timestamp"
// @Param        limit      query int    false "Page size (1-200)"
// @Param        skip       query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=LogsPage} "Logs"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Log store unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/logs [get]
func (h *LogsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts, err := logQueryFromRequest(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	ctx := c.Request.Context()
	total, err := h.logs.CountLogs(ctx, opts)
	if err != nil {
		writeError(builder, err)
		return
	}
	entries, err := h.logs.QueryLogs(ctx, opts)
	if err != nil {
		writeError(builder, err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}

	builder.SuccessOK(LogsPage{Total: total, Entries: entries})
}

func logQueryFromRequest(c *gin.Context) (model.LogQueryOptions, error) {
	opts := model.LogQueryOptions{
		RequestID:  c.Query("request_id"),
		Level:      c.Query("level"),
		ActionType: c.Query("action"),
		Limit:      defaultLogsLimit,
	}

	if s := c.Query("since"); s != "" {
		since, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return opts, err
		}
		opts.StartTime = &since
	}
	if s := c.Query("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return opts, err
		}
		opts.Limit = min(max(limit, 1), maxLogsLimit)
	}
	if s := c.Query("skip"); s != "" {
		skip, err := strconv.Atoi(s)
		if err != nil {
			return opts, err
		}
		opts.Skip = max(skip, 0)
	}
	return opts, nil
}
