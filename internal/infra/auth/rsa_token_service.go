// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rsa"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"corral/config"
	"corral/internal/domain/entity"
	"corral/internal/domain/service"
)

// rsaTokenService implements service.TokenService with RS256: the private
// key signs issued tokens, the public key verifies presented ones. Both are
// loaded once at startup and are immutable for the process lifetime.
type rsaTokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
}

// wireClaims is the token payload as it appears on the wire.
type wireClaims struct {
	UUID     string            `json:"uuid"`
	DeviceID *string           `json:"device_id,omitempty"`
	Groups   []entity.GroupRef `json:"groups,omitempty"`
	jwt.RegisteredClaims
}

// NewRSATokenService loads the signing keypair from the PEM files named in
// the configuration and returns a ready token service.
func NewRSATokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.PrivateKeyPath == "" || cfg.Auth.PublicKeyPath == "" {
		return nil, errors.New("auth key paths must be provided")
	}

	privPEM, err := os.ReadFile(cfg.Auth.PrivateKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "read private key")
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
	if err != nil {
		return nil, errors.Wrap(err, "parse private key")
	}

	pubPEM, err := os.ReadFile(cfg.Auth.PublicKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "read public key")
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		return nil, errors.Wrap(err, "parse public key")
	}

	return &rsaTokenService{
		privateKey: privateKey,
		publicKey:  publicKey,
		ttl:        cfg.Auth.TokenTTL,
	}, nil
}

// Issue signs a token carrying the given claims, expiring ttl from now.
func (s *rsaTokenService) Issue(claims *service.TokenClaims) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.ttl)

	wire := &wireClaims{
		UUID:   claims.UserID.String(),
		Groups: claims.Groups,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if claims.DeviceID != nil {
		deviceID := claims.DeviceID.String()
		wire.DeviceID = &deviceID
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, wire).SignedString(s.privateKey)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return token, expiresAt, nil
}

// Verify checks signature and expiry and returns the embedded claims.
func (s *rsaTokenService) Verify(token string) (*service.TokenClaims, error) {
	return s.parse(token, jwt.NewParser())
}

// Decode checks the signature but skips claim validation, so an expired
// token can still be decoded for renewal. The registry row, not the embedded
// expiry, decides whether renewal is allowed.
func (s *rsaTokenService) Decode(token string) (*service.TokenClaims, error) {
	return s.parse(token, jwt.NewParser(jwt.WithoutClaimsValidation()))
}

func (s *rsaTokenService) parse(token string, parser *jwt.Parser) (*service.TokenClaims, error) {
	wire := &wireClaims{}
	parsed, err := parser.ParseWithClaims(token, wire, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}
		return nil, service.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, service.ErrTokenInvalid
	}

	return toDomainClaims(wire)
}

func toDomainClaims(wire *wireClaims) (*service.TokenClaims, error) {
	userID, err := uuid.Parse(wire.UUID)
	if err != nil {
		return nil, service.ErrTokenInvalid
	}

	claims := &service.TokenClaims{
		UserID: userID,
		Groups: wire.Groups,
	}
	if wire.DeviceID != nil {
		deviceID, err := uuid.Parse(*wire.DeviceID)
		if err != nil {
			return nil, service.ErrTokenInvalid
		}
		claims.DeviceID = &deviceID
	}

	return claims, nil
}
