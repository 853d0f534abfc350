package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"carexpert/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "carexpert-dev"
	}
	return []byte(secret)
}

// SessionClaims is the identity payload carried by a session token.
type SessionClaims struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// GenerateToken creates a signed JWT session token for the given user.
// The token expires after the specified duration.
func GenerateToken(claims SessionClaims, duration time.Duration) (string, error) {
	mapClaims := jwt.MapClaims{
		"sub":   claims.UserID,
		"name":  claims.Name,
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the session
// claims if valid. Used by the mock server's auth middleware.
func ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claimsFromMap(mapClaims)
}

// DecodeTokenClaims extracts the session claims without verifying the
// signature. The client uses this to seed its session store for display and
// role gating only; the backend remains the authority on every request.
func DecodeTokenClaims(tokenString string) (*SessionClaims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, errors.New("malformed token")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, errors.New("malformed token payload")
	}
	var mapClaims jwt.MapClaims
	if err := json.Unmarshal(payload, &mapClaims); err != nil {
		return nil, errors.New("malformed token payload")
	}
	return claimsFromMap(mapClaims)
}

func claimsFromMap(mapClaims jwt.MapClaims) (*SessionClaims, error) {
	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	claims := &SessionClaims{UserID: sub}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	return claims, nil
}
