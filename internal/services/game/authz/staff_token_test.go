package authz

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/louisbranch/chronicles.mud/internal/platform/config"
	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
)

func generateKey(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return pub, priv
}

func TestLoadStaffTokenConfigFromEnv(t *testing.T) {
	t.Setenv(config.EnvPrefix+EnvStaffTokenIssuer, "")
	t.Setenv(config.EnvPrefix+EnvStaffTokenAudience, "")
	t.Setenv(config.EnvPrefix+EnvStaffTokenPublicKey, "")

	if _, ok, err := LoadStaffTokenConfigFromEnv(nil); err != nil || ok {
		t.Fatalf("unset key: ok = %v, err = %v", ok, err)
	}

	pub, _ := generateKey(t)
	t.Setenv(config.EnvPrefix+EnvStaffTokenPublicKey, base64.RawStdEncoding.EncodeToString(pub))
	if _, _, err := LoadStaffTokenConfigFromEnv(nil); err == nil {
		t.Fatal("expected error when issuer is missing")
	}

	t.Setenv(config.EnvPrefix+EnvStaffTokenIssuer, "chronicles")
	t.Setenv(config.EnvPrefix+EnvStaffTokenAudience, "game")
	cfg, ok, err := LoadStaffTokenConfigFromEnv(nil)
	if err != nil || !ok {
		t.Fatalf("load config: ok = %v, err = %v", ok, err)
	}
	if cfg.Issuer != "chronicles" || cfg.Audience != "game" || len(cfg.Key) != ed25519.PublicKeySize {
		t.Fatalf("config = %+v", cfg)
	}

	t.Setenv(config.EnvPrefix+EnvStaffTokenPublicKey, base64.StdEncoding.EncodeToString([]byte("short")))
	if _, _, err := LoadStaffTokenConfigFromEnv(nil); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestStaffVerifierRoundTrip(t *testing.T) {
	pub, priv := generateKey(t)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	token, err := SignStaffToken(priv, StaffTokenRequest{
		Issuer:   "chronicles",
		Audience: "game",
		Subject:  "storyteller",
		TTL:      time.Hour,
		Now:      now,
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	verifier, err := NewStaffVerifier(StaffTokenConfig{
		Issuer:   "chronicles",
		Audience: "game",
		Key:      pub,
		Now:      func() time.Time { return now.Add(time.Minute) },
	})
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	caller, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if caller.ID != "storyteller" || !caller.Staff {
		t.Fatalf("caller = %+v", caller)
	}
}

func TestStaffVerifierRejects(t *testing.T) {
	pub, priv := generateKey(t)
	_, otherPriv := generateKey(t)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	sign := func(key ed25519.PrivateKey, claims jwt.MapClaims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return token
	}
	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"iss":  "chronicles",
			"aud":  []string{"game"},
			"sub":  "storyteller",
			"role": "staff",
			"exp":  now.Add(time.Hour).Unix(),
		}
	}
	with := func(key string, value any) jwt.MapClaims {
		claims := valid()
		if value == nil {
			delete(claims, key)
		} else {
			claims[key] = value
		}
		return claims
	}

	tests := []struct {
		name  string
		token string
		code  apperrors.Code
	}{
		{name: "empty", token: " ", code: apperrors.CodeStaffTokenInvalid},
		{name: "garbage", token: "not-a-jwt", code: apperrors.CodeStaffTokenInvalid},
		{name: "wrong key", token: sign(otherPriv, valid()), code: apperrors.CodeStaffTokenInvalid},
		{name: "wrong issuer", token: sign(priv, with("iss", "elsewhere")), code: apperrors.CodeStaffTokenInvalid},
		{name: "wrong audience", token: sign(priv, with("aud", []string{"web"})), code: apperrors.CodeStaffTokenInvalid},
		{name: "player role", token: sign(priv, with("role", "player")), code: apperrors.CodeStaffTokenInvalid},
		{name: "missing subject", token: sign(priv, with("sub", nil)), code: apperrors.CodeStaffTokenInvalid},
		{name: "missing exp", token: sign(priv, with("exp", nil)), code: apperrors.CodeStaffTokenInvalid},
		{name: "expired", token: sign(priv, with("exp", now.Add(-time.Minute).Unix())), code: apperrors.CodeStaffTokenExpired},
		{name: "not yet active", token: sign(priv, with("nbf", now.Add(time.Minute).Unix())), code: apperrors.CodeStaffTokenInvalid},
	}

	verifier, err := NewStaffVerifier(StaffTokenConfig{
		Issuer:   "chronicles",
		Audience: "game",
		Key:      pub,
		Now:      func() time.Time { return now },
	})
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			if got := apperrors.CodeOf(err); got != tt.code {
				t.Fatalf("code = %s, want %s (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestNilVerifierRejects(t *testing.T) {
	var verifier *StaffVerifier
	if _, err := verifier.Verify("token"); apperrors.CodeOf(err) != apperrors.CodeStaffTokenInvalid {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestNewStaffVerifierRequiresConfig(t *testing.T) {
	if _, err := NewStaffVerifier(StaffTokenConfig{}); err == nil {
		t.Fatal("expected error for empty config")
	}
}

func TestLoadStaffSigningKeyFromEnv(t *testing.T) {
	t.Setenv(config.EnvPrefix+EnvStaffTokenPrivateKey, "")
	if _, ok, err := LoadStaffSigningKeyFromEnv(); err != nil || ok {
		t.Fatalf("unset key: ok = %v, err = %v", ok, err)
	}

	_, priv := generateKey(t)
	t.Setenv(config.EnvPrefix+EnvStaffTokenPrivateKey, base64.RawStdEncoding.EncodeToString(priv.Seed()))
	key, ok, err := LoadStaffSigningKeyFromEnv()
	if err != nil || !ok {
		t.Fatalf("seed key: ok = %v, err = %v", ok, err)
	}
	if !key.Equal(priv) {
		t.Fatal("expected key derived from seed to match")
	}
}
