package security

import (
	"errors"
	"time"

	"portfolio_api/internal/common"
	"portfolio_api/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateToken issues a session token for the given user, expiring after the
// configured lifetime (7 days by default).
func GenerateToken(userID string) (string, error) {
	return GenerateTokenExpiringIn(userID, config.AppConfig.JWTExp)
}

func GenerateTokenExpiringIn(userID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// VerifyToken checks signature and expiry and returns the subject user ID.
// Sessions are stateless: validity is decided entirely here, nothing is
// looked up server-side. A token whose expiry equals the current instant is
// already expired (jwx accepts a token only while now is before exp).
func VerifyToken(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}

	raw, ok := token.Get("user_id")
	if !ok {
		return "", common.ErrTokenInvalid
	}
	userID, ok := raw.(string)
	if !ok || userID == "" {
		return "", common.ErrTokenInvalid
	}
	return userID, nil
}
