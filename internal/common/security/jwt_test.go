package security

import (
	"errors"
	"testing"
	"time"

	"portfolio_api/internal/common"
	"portfolio_api/internal/platform/config"

	"github.com/golang-jwt/jwt/v5"
)

func initTestJWT(t *testing.T, secret string) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte(secret),
		JWTExp: 7 * 24 * time.Hour,
	}
	InitJWT()
}

func TestGenerateAndVerify_RoundTrip(t *testing.T) {
	initTestJWT(t, "super-secret")
	userID := "user-123"

	tok, err := GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	gotUserID, err := VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	initTestJWT(t, "secret")

	tok, err := GenerateTokenExpiringIn("u1", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateTokenExpiringIn error: %v", err)
	}

	_, err = VerifyToken(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

// A token whose expiry equals the issue instant is already expired:
// verification only accepts a token while the current time is before exp.
func TestVerifyToken_ExpiryBoundary(t *testing.T) {
	initTestJWT(t, "secret")

	tok, err := GenerateTokenExpiringIn("u1", 0)
	if err != nil {
		t.Fatalf("GenerateTokenExpiringIn error: %v", err)
	}

	_, err = VerifyToken(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at exp == now, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	initTestJWT(t, "right-secret")
	tok, err := GenerateToken("u2")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	initTestJWT(t, "wrong-secret")
	_, err = VerifyToken(tok)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestVerifyToken_WrongAlgorithm(t *testing.T) {
	initTestJWT(t, "secret")

	// Signed with the right key but HS512 instead of the expected HS256.
	claims := jwt.MapClaims{
		"user_id": "u3",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := VerifyToken(tok); !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong algorithm, got %v", err)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	initTestJWT(t, "k")

	if _, err := VerifyToken("not.a.jwt"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for malformed token, got %v", err)
	}
}

func TestVerifyToken_MissingSubject(t *testing.T) {
	initTestJWT(t, "secret")

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	_, tok, err := TokenAuth.Encode(claims)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	if _, err := VerifyToken(tok); !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for missing user_id claim, got %v", err)
	}
}
