package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 100, cfg.API.MaxBatchSize)
	assert.Equal(t, int64(1<<20), cfg.API.MaxBodyBytes)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "leafguard-static", cfg.S3.Bucket)
	assert.Equal(t, "config/upload-policy.json", cfg.S3.PolicyKey)
	assert.False(t, cfg.S3.UseSSL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_WRITE_TIMEOUT", "1m")
	t.Setenv("API_MAX_BATCH_SIZE", "10")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, 10, cfg.API.MaxBatchSize)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port not a number", "SERVER_PORT", "abc"},
		{"port out of range", "SERVER_PORT", "70000"},
		{"zero batch", "API_MAX_BATCH_SIZE", "0"},
		{"negative body", "API_MAX_BODY_BYTES", "-1"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"bad duration", "SERVER_READ_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestValidate_EmptyPolicyKey(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	cfg.S3.PolicyKey = ""
	assert.ErrorContains(t, cfg.Validate(), "S3_POLICY_KEY")
}
