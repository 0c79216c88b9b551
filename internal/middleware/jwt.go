package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/i18n"
	"github.com/guttosm/inventory-optimizer/internal/service"
)

// ClaimsKey is the gin context key holding validated token claims.
const ClaimsKey = "token_claims"

// JWTAuth returns a middleware that requires a valid bearer token and
// stores the token's client under ClientKey.
func JWTAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}
		if tokenString = strings.TrimSpace(tokenString); tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(ClientKey, claims.Client)
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// APIKeyOrJWT accepts either a valid API key or a valid bearer token. The
// API key wins when both are present.
func APIKeyOrJWT(keys map[string]string, tokens service.TokenService) gin.HandlerFunc {
	jwtAuth := JWTAuth(tokens)
	return func(c *gin.Context) {
		if key := ExtractAPIKey(c); key != "" {
			client, ok := LookupAPIKey(keys, key)
			if !ok {
				abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
				return
			}
			c.Set(ClientKey, client)
			c.Next()
			return
		}
		jwtAuth(c)
	}
}
