package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"geocode": map[string]any{
			"baseUrl": "",
			"policy": map[string]any{
				"organizationCreate": "strict",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "GEOCODE_BASEURL", want: "geocode.baseUrl"},
		{envKey: "GEOCODE_POLICY_ORGANIZATIONCREATE", want: "geocode.policy.organizationCreate"},
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

func TestApplyDefaults_GeocodePolicy(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, GeocodePolicySoft, cfg.Geocode.Policy.IndividualCreate)
	assert.Equal(t, GeocodePolicyStrict, cfg.Geocode.Policy.OrganizationCreate)
	assert.Equal(t, GeocodePolicySoft, cfg.Geocode.Policy.Update)
	assert.Equal(t, defaultGeocodeTimeout, cfg.Geocode.Timeout)
	assert.Equal(t, defaultGeocodeMaxRetries, cfg.Geocode.MaxRetries)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	require.NoError(t, cfg.validate())
}

func TestApplyDefaults_KeepsExplicitPolicy(t *testing.T) {
	cfg := &Config{Geocode: &GeocodeConfig{Policy: GeocodePolicyConfig{OrganizationCreate: GeocodePolicySoft}}}
	applyDefaults(cfg)

	assert.Equal(t, GeocodePolicySoft, cfg.Geocode.Policy.OrganizationCreate)
}

func TestValidate_RejectsUnknownPolicy(t *testing.T) {
	cfg := &Config{Geocode: &GeocodeConfig{Policy: GeocodePolicyConfig{Update: "lenient"}}}
	applyDefaults(cfg)

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geocode.policy.update")
}

func TestValidate_AuthRequiresSecret(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{Enabled: true}}
	applyDefaults(cfg)

	require.Error(t, cfg.validate())
}
