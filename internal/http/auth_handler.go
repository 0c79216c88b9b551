package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/i18n"
	"github.com/guttosm/inventory-optimizer/internal/middleware"
	"github.com/guttosm/inventory-optimizer/internal/service"
)

// AuthHandler exchanges API keys for bearer tokens.
type AuthHandler struct {
	tokens  service.TokenService
	apiKeys map[string]string
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(tokens service.TokenService, apiKeys map[string]string) *AuthHandler {
	return &AuthHandler{tokens: tokens, apiKeys: apiKeys}
}

// IssueToken handles POST /api/auth/token requests.
//
// @Summary      Exchange an API key for a JWT
// @Description  Returns a short-lived bearer token identifying the client that owns the API key
// @Tags         Auth
// @Produce      json
// @Param        X-API-Key header string true "API key"
// @Success      200 {object} dto.SuccessResponse{data=dto.TokenResponse} "Issued token"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	key := middleware.ExtractAPIKey(c)
	if key == "" {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired, nil)
		return
	}
	client, ok := middleware.LookupAPIKey(h.apiKeys, key)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey, nil)
		return
	}
	c.Set(middleware.ClientKey, client)

	token, err := h.tokens.IssueToken(client)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(middleware.LoggingServiceFrom(c), c, "issue_token", "Token issued", nil)
	builder.SuccessOK(token)
}
