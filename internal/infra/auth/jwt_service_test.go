package auth

import (
	"testing"
	"time"

	"agenda/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enabledConfig(secret, issuer string) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{Enabled: true, Secret: secret, Issuer: issuer}}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(enabledConfig("test_secret_key_long_enough", "agenda"))
	require.NoError(t, err)

	token, err := svc.IssueToken("operator-1", time.Hour)
	require.NoError(t, err)

	subject, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator-1", subject)
}

func TestJWTService_Rejects(t *testing.T) {
	svc, err := NewJWTService(enabledConfig("right-secret", "agenda"))
	require.NoError(t, err)

	other, err := NewJWTService(enabledConfig("wrong-secret", "agenda"))
	require.NoError(t, err)
	foreign, err := other.IssueToken("operator-1", time.Hour)
	require.NoError(t, err)

	otherIssuer, err := NewJWTService(enabledConfig("right-secret", "someone-else"))
	require.NoError(t, err)
	misissued, err := otherIssuer.IssueToken("operator-1", time.Hour)
	require.NoError(t, err)

	expired, err := svc.IssueToken("operator-1", -time.Minute)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "operator-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret": foreign,
		"wrong issuer": misissued,
		"expired":      expired,
		"alg none":     none,
		"garbage":      "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewJWTService_RequiresSecretWhenEnabled(t *testing.T) {
	_, err := NewJWTService(enabledConfig("", ""))
	require.Error(t, err)

	svc, err := NewJWTService(&config.Config{})
	require.NoError(t, err)

	_, err = svc.ValidateToken("anything")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
