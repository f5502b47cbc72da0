package authz

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/louisbranch/chronicles.mud/internal/platform/config"
	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
)

// Environment variable names, without the shared prefix.
const (
	EnvStaffTokenIssuer     = "STAFF_TOKEN_ISSUER"
	EnvStaffTokenAudience   = "STAFF_TOKEN_AUDIENCE"
	EnvStaffTokenPublicKey  = "STAFF_TOKEN_PUBLIC_KEY"
	EnvStaffTokenPrivateKey = "STAFF_TOKEN_PRIVATE_KEY"
)

const staffRole = "staff"

// staffTokenEnv holds raw env values before post-parse validation.
type staffTokenEnv struct {
	Issuer     string `env:"STAFF_TOKEN_ISSUER"`
	Audience   string `env:"STAFF_TOKEN_AUDIENCE"`
	PublicKey  string `env:"STAFF_TOKEN_PUBLIC_KEY"`
	PrivateKey string `env:"STAFF_TOKEN_PRIVATE_KEY"`
}

// StaffTokenConfig defines how staff tokens are verified.
type StaffTokenConfig struct {
	Issuer   string
	Audience string
	Key      ed25519.PublicKey
	Now      func() time.Time
}

type staffClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// LoadStaffTokenConfigFromEnv reads staff token verification settings. ok is
// false when no public key is configured, which disables staff access.
func LoadStaffTokenConfigFromEnv(now func() time.Time) (cfg StaffTokenConfig, ok bool, err error) {
	var raw staffTokenEnv
	if err := config.ParseEnv(&raw); err != nil {
		return StaffTokenConfig{}, false, fmt.Errorf("parse staff token env: %w", err)
	}
	publicKey := strings.TrimSpace(raw.PublicKey)
	if publicKey == "" {
		return StaffTokenConfig{}, false, nil
	}
	issuer := strings.TrimSpace(raw.Issuer)
	audience := strings.TrimSpace(raw.Audience)
	if issuer == "" {
		return StaffTokenConfig{}, false, fmt.Errorf("%s%s is required", config.EnvPrefix, EnvStaffTokenIssuer)
	}
	if audience == "" {
		return StaffTokenConfig{}, false, fmt.Errorf("%s%s is required", config.EnvPrefix, EnvStaffTokenAudience)
	}
	keyBytes, err := decodeBase64(publicKey)
	if err != nil {
		return StaffTokenConfig{}, false, fmt.Errorf("decode staff token public key: %w", err)
	}
	if len(keyBytes) != ed25519.PublicKeySize {
		return StaffTokenConfig{}, false, fmt.Errorf("staff token public key must be %d bytes", ed25519.PublicKeySize)
	}
	if now == nil {
		now = time.Now
	}
	return StaffTokenConfig{
		Issuer:   issuer,
		Audience: audience,
		Key:      ed25519.PublicKey(keyBytes),
		Now:      now,
	}, true, nil
}

// StaffVerifier validates staff bearer tokens.
type StaffVerifier struct {
	cfg StaffTokenConfig
}

// NewStaffVerifier returns a verifier for cfg.
func NewStaffVerifier(cfg StaffTokenConfig) (*StaffVerifier, error) {
	if cfg.Issuer == "" || cfg.Audience == "" || len(cfg.Key) != ed25519.PublicKeySize {
		return nil, errors.New("staff token verifier is not configured")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &StaffVerifier{cfg: cfg}, nil
}

// Verify validates token and returns the staff caller it names.
func (v *StaffVerifier) Verify(token string) (Caller, error) {
	if v == nil {
		return Caller{}, apperrors.New(apperrors.CodeStaffTokenInvalid, "staff tokens are not accepted")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return Caller{}, apperrors.New(apperrors.CodeStaffTokenInvalid, "staff token is required")
	}

	var parsed staffClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return v.cfg.Key, nil
	},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Caller{}, mapJWTError(err)
	}

	if parsed.Issuer == "" || parsed.Issuer != v.cfg.Issuer {
		return Caller{}, apperrors.WithMetadata(apperrors.CodeStaffTokenInvalid, "staff token issuer mismatch",
			map[string]string{"Field": "issuer"})
	}
	if !audienceContains(parsed.Audience, v.cfg.Audience) {
		return Caller{}, apperrors.WithMetadata(apperrors.CodeStaffTokenInvalid, "staff token audience mismatch",
			map[string]string{"Field": "audience"})
	}
	if parsed.Role != staffRole {
		return Caller{}, apperrors.WithMetadata(apperrors.CodeStaffTokenInvalid, "staff token role mismatch",
			map[string]string{"Field": "role"})
	}
	if strings.TrimSpace(parsed.Subject) == "" {
		return Caller{}, apperrors.New(apperrors.CodeStaffTokenInvalid, "staff token sub is required")
	}
	if parsed.ExpiresAt == nil {
		return Caller{}, apperrors.New(apperrors.CodeStaffTokenInvalid, "staff token exp is required")
	}

	now := v.cfg.Now().UTC()
	if !parsed.ExpiresAt.Time.After(now) {
		return Caller{}, apperrors.New(apperrors.CodeStaffTokenExpired, "staff token is expired")
	}
	if parsed.NotBefore != nil && now.Before(parsed.NotBefore.Time) {
		return Caller{}, apperrors.New(apperrors.CodeStaffTokenInvalid, "staff token not active yet")
	}
	return Caller{ID: strings.TrimSpace(parsed.Subject), Staff: true}, nil
}

// StaffTokenRequest describes a staff token to mint.
type StaffTokenRequest struct {
	Issuer   string
	Audience string
	Subject  string
	TTL      time.Duration
	Now      time.Time
}

// SignStaffToken mints an EdDSA staff token.
func SignStaffToken(key ed25519.PrivateKey, req StaffTokenRequest) (string, error) {
	if len(key) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("staff token private key must be %d bytes", ed25519.PrivateKeySize)
	}
	if strings.TrimSpace(req.Subject) == "" {
		return "", errors.New("staff token subject is required")
	}
	if req.TTL <= 0 {
		req.TTL = time.Hour
	}
	if req.Now.IsZero() {
		req.Now = time.Now()
	}
	claims := staffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    req.Issuer,
			Subject:   req.Subject,
			Audience:  jwt.ClaimStrings{req.Audience},
			IssuedAt:  jwt.NewNumericDate(req.Now),
			ExpiresAt: jwt.NewNumericDate(req.Now.Add(req.TTL)),
		},
		Role: staffRole,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign staff token: %w", err)
	}
	return signed, nil
}

// LoadStaffSigningKeyFromEnv reads the optional private key used to mint
// staff tokens locally.
func LoadStaffSigningKeyFromEnv() (ed25519.PrivateKey, bool, error) {
	var raw staffTokenEnv
	if err := config.ParseEnv(&raw); err != nil {
		return nil, false, fmt.Errorf("parse staff token env: %w", err)
	}
	value := strings.TrimSpace(raw.PrivateKey)
	if value == "" {
		return nil, false, nil
	}
	keyBytes, err := decodeBase64(value)
	if err != nil {
		return nil, false, fmt.Errorf("decode staff token private key: %w", err)
	}
	switch len(keyBytes) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(keyBytes), true, nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(keyBytes), true, nil
	default:
		return nil, false, fmt.Errorf("staff token private key must be %d or %d bytes", ed25519.SeedSize, ed25519.PrivateKeySize)
	}
}

func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrEd25519Verification) {
		return apperrors.New(apperrors.CodeStaffTokenInvalid, "staff token signature is invalid")
	}
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		return apperrors.New(apperrors.CodeStaffTokenInvalid, "staff token alg is invalid")
	}
	return apperrors.New(apperrors.CodeStaffTokenInvalid, "staff token is invalid")
}

func audienceContains(aud jwt.ClaimStrings, value string) bool {
	for _, item := range aud {
		if item == value {
			return true
		}
	}
	return false
}

func decodeBase64(value string) ([]byte, error) {
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}
