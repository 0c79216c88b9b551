package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/domain/dto"
	"github.com/guttosm/inventory-optimizer/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
	// ClientKey is the gin context key holding the authenticated client name.
	ClientKey = "client"
)

// APIKeyAuth returns a middleware that validates API keys against a
// key → client map and stores the client name under ClientKey.
// It checks the X-API-Key header first, then the api_key query parameter.
// An empty map disables authentication.
func APIKeyAuth(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}

		key := ExtractAPIKey(c)
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		client, ok := LookupAPIKey(keys, key)
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(ClientKey, client)
		c.Next()
	}
}

// ExtractAPIKey returns the API key from the header or query string.
func ExtractAPIKey(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		return key
	}
	return c.Query(APIKeyQuery)
}

// LookupAPIKey finds the client owning key, comparing in constant time.
func LookupAPIKey(keys map[string]string, key string) (string, bool) {
	var client string
	found := false
	for candidate, owner := range keys {
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(key)) == 1 {
			client, found = owner, true
		}
	}
	return client, found
}

// GetClient returns the authenticated client name, or "" for anonymous requests.
func GetClient(c *gin.Context) string {
	return c.GetString(ClientKey)
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
