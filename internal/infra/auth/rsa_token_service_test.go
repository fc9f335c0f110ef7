package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"corral/config"
	"corral/internal/domain/entity"
	"corral/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestKeyPair generates an RSA keypair and writes it as PEM files, the
// same layout the service loads at startup.
func writeTestKeyPair(t *testing.T) (privatePath, publicPath string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()

	privatePath = filepath.Join(dir, "private.pem")
	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	require.NoError(t, os.WriteFile(privatePath, privatePEM, 0o600))

	publicPath = filepath.Join(dir, "public.pem")
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicDER,
	})
	require.NoError(t, os.WriteFile(publicPath, publicPEM, 0o600))

	return privatePath, publicPath
}

func newTestTokenService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	privatePath, publicPath := writeTestKeyPair(t)

	svc, err := NewRSATokenService(&config.Config{
		Auth: &config.AuthConfig{
			PrivateKeyPath: privatePath,
			PublicKeyPath:  publicPath,
			TokenTTL:       ttl,
		},
	})
	require.NoError(t, err)

	return svc
}

func TestRSATokenService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, 30*time.Minute)

	userID := uuid.New()
	deviceID := uuid.New()
	groupID := uuid.New()

	token, expiresAt, err := svc.Issue(&service.TokenClaims{
		UserID:   userID,
		DeviceID: &deviceID,
		Groups:   []entity.GroupRef{{ID: groupID, Name: "home"}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	require.NotNil(t, claims.DeviceID)
	assert.Equal(t, deviceID, *claims.DeviceID)
	require.Len(t, claims.Groups, 1)
	assert.Equal(t, groupID, claims.Groups[0].ID)
	assert.Equal(t, "home", claims.Groups[0].Name)
}

func TestRSATokenService_IssueWithoutDevice(t *testing.T) {
	svc := newTestTokenService(t, 30*time.Minute)

	userID := uuid.New()
	token, _, err := svc.Issue(&service.TokenClaims{UserID: userID})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Nil(t, claims.DeviceID)
	assert.Empty(t, claims.Groups)
}

func TestRSATokenService_VerifyRejectsExpired(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, _, err := svc.Issue(&service.TokenClaims{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestRSATokenService_DecodeAcceptsExpired(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	userID := uuid.New()
	token, _, err := svc.Issue(&service.TokenClaims{UserID: userID})
	require.NoError(t, err)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestRSATokenService_VerifyRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, 30*time.Minute)

	_, err := svc.Verify("not-a-token")
	require.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestRSATokenService_VerifyRejectsForeignSignature(t *testing.T) {
	issuer := newTestTokenService(t, 30*time.Minute)
	verifier := newTestTokenService(t, 30*time.Minute)

	token, _, err := issuer.Issue(&service.TokenClaims{UserID: uuid.New()})
	require.NoError(t, err)

	// Signed with a different keypair than the verifier trusts.
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestRSATokenService_DecodeRejectsTampered(t *testing.T) {
	svc := newTestTokenService(t, 30*time.Minute)

	token, _, err := svc.Issue(&service.TokenClaims{UserID: uuid.New()})
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "aaaa"
	_, err = svc.Decode(tampered)
	require.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestNewRSATokenService_MissingConfig(t *testing.T) {
	_, err := NewRSATokenService(&config.Config{})
	require.Error(t, err)
}
