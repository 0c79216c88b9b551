package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/guttosm/inventory-optimizer/internal/service"
)

// AuditLog records a client action such as an optimization run or a cost
// profile change. It never blocks the request.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	dispatch(loggingService, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed client action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	dispatch(loggingService, entry)
}

// LoggingServiceFrom returns the logging service stored on the context by the router.
func LoggingServiceFrom(c *gin.Context) service.LoggingService {
	if v, exists := c.Get(LoggingServiceKey); exists {
		if ls, ok := v.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}

// LoggingServiceKey is the gin context key for the request's LoggingService.
const LoggingServiceKey = "logging_service"

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Client:     GetClient(c),
		ActionType: actionType,
		Fields:     fields,
	}
}

// dispatch hands the entry to the async worker pool, or writes it from a
// short-lived goroutine when no pool is running.
func dispatch(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
