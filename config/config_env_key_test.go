package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"firebase": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"storage": map[string]any{
			"redis": map[string]any{
				"addr": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "STORAGE_REDIS_ADDR", want: "storage.redis.addr"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, defaultStorageDir, cfg.Storage.File.Dir)
	assert.Equal(t, "ل.س", cfg.Currency.Symbol)
	assert.Equal(t, ",", cfg.Currency.Thousand)
	assert.Equal(t, "sf_session", cfg.Session.CookieName)
	assert.Equal(t, "Ali", cfg.Admin.Username)
	assert.Equal(t, defaultAdminTokenTTL, cfg.Admin.TokenTTL)
	assert.False(t, cfg.RemoteEnabled())

	cfg.Firebase = &FirebaseConfig{Enabled: true}
	assert.True(t, cfg.RemoteEnabled())
}
