//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/inventory-optimizer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAuth(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantNil bool
	}{
		{name: "disabled", cfg: config.AuthConfig{Enabled: false, APIKeys: map[string]string{"k": "c"}}, wantNil: true},
		{name: "enabled without keys", cfg: config.AuthConfig{Enabled: true}, wantNil: true},
		{name: "enabled with placeholder secret", cfg: config.AuthConfig{Enabled: true, APIKeys: map[string]string{"k": "c"}, JWTSecretKey: insecureJWTSecret}},
		{name: "enabled", cfg: config.AuthConfig{Enabled: true, APIKeys: map[string]string{"k": "c"}, JWTSecretKey: "s3cret", JWTIssuer: "test", TokenTTL: time.Minute}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := InitializeAuth(tt.cfg)
			if tt.wantNil {
				assert.Nil(t, tokens)
				return
			}
			require.NotNil(t, tokens)

			issued, err := tokens.IssueToken("c")
			require.NoError(t, err)
			claims, err := tokens.ValidateToken(issued.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "c", claims.Client)
		})
	}
}
