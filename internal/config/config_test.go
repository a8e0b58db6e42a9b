package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveymail/surveymail/internal/config"
)

func TestLoadReadsDeliveryEnv(t *testing.T) {
	t.Setenv("BREVO_API_KEY", "key-from-env")
	t.Setenv("TO_EMAIL", "owner@example.com")
	t.Setenv("FROM_EMAIL", "noreply@example.com")
	t.Setenv("SITE_NAME", "某某工作室")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "key-from-env", cfg.Brevo.APIKey)
	assert.Equal(t, "owner@example.com", cfg.Brevo.ToEmail)
	assert.Equal(t, "noreply@example.com", cfg.Brevo.FromEmail)
	assert.Equal(t, "某某工作室", cfg.Brevo.SiteName)
	require.NoError(t, cfg.Brevo.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestBrevoConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.BrevoConfig
		wantErr bool
	}{
		{"complete", config.BrevoConfig{APIKey: "k", ToEmail: "a@b.c", FromEmail: "d@e.f"}, false},
		{"empty", config.BrevoConfig{}, true},
		{"missing api key", config.BrevoConfig{ToEmail: "a@b.c", FromEmail: "d@e.f"}, true},
		{"missing recipient", config.BrevoConfig{APIKey: "k", FromEmail: "d@e.f"}, true},
		{"missing sender", config.BrevoConfig{APIKey: "k", ToEmail: "a@b.c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrMissingEnv)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBrevoConfigSenderName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, config.DefaultSiteName, config.BrevoConfig{}.SenderName())
	assert.Equal(t, "某某工作室", config.BrevoConfig{SiteName: "某某工作室"}.SenderName())
}
