package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/domain/dto"
)

var (
	// ErrInvalidToken is returned when a token is malformed, expired or signed with another key.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrEmptyClient is returned when a token is requested for an anonymous client.
	ErrEmptyClient = errors.New("client name is required")
)

// TokenService issues and validates bearer tokens for API clients.
type TokenService interface {
	// IssueToken signs a token for the named client.
	IssueToken(client string) (*dto.TokenResponse, error)
	// ValidateToken verifies a token and returns its claims.
	ValidateToken(tokenString string) (*dto.Claims, error)
}

// ClaimsWithJWT embeds the client claims in the registered JWT claim set.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey: authConfig.JWTSecretKey,
		Issuer:    authConfig.JWTIssuer,
		TTL:       authConfig.TokenTTL,
	}
}

// TokenServiceImpl implements TokenService with HS256-signed JWTs.
type TokenServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) *TokenServiceImpl {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &TokenServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       ttl,
		now:       time.Now,
	}
}

// IssueToken signs a token for the named client.
func (s *TokenServiceImpl) IssueToken(client string) (*dto.TokenResponse, error) {
	if client == "" {
		return nil, ErrEmptyClient
	}

	issuedAt := s.now()
	claims := &ClaimsWithJWT{
		Claims: dto.Claims{Client: client},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   client,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.ttl.Seconds()),
	}, nil
}

// ValidateToken verifies signature, expiry and issuer.
func (s *TokenServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(*jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok || !token.Valid || claims.Client == "" {
		return nil, ErrInvalidToken
	}

	return &claims.Claims, nil
}
