package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"publicBaseURL": "",
			"url":           "mem://",
		},
		"document": map[string]any{
			"verification": map[string]any{
				"baseUrl": "",
			},
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseURL"},
		{envKey: "STORAGE_URL", want: "storage.url"},
		{envKey: "DOCUMENT_VERIFICATION_BASEURL", want: "document.verification.baseUrl"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 12*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, time.Hour, cfg.Storage.SignedURLExpiry)
	assert.Equal(t, "FCFA", cfg.Document.Currency)
	assert.InDelta(t, 18.0, cfg.Document.TitleFontSize, 0)
	assert.Equal(t, defaultQRCodeSize, cfg.Document.Verification.Size)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: DriverSQLite},
		Auth:     &AuthConfig{SessionTTL: time.Minute, DeferConfirmation: true},
		Document: DocumentConfig{Currency: "XOF", LineHeight: 8},
	}

	applyDefaults(cfg)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, time.Minute, cfg.Auth.SessionTTL)
	assert.True(t, cfg.Auth.DeferConfirmation)
	assert.Equal(t, "XOF", cfg.Document.Currency)
	assert.InDelta(t, 8.0, cfg.Document.LineHeight, 0)
}
