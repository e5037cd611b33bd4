package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey         string
	expirationMinutes int64
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, expirationMinutes int64) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, expirationMinutes: expirationMinutes}
}

// GenerateToken issues a signed token carrying the username as subject.
// The token is self-contained: validity depends only on the signature and
// the embedded expiry, there is no server-side revocation.
func (ju *JWTUtil) GenerateToken(username string) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * time.Duration(ju.expirationMinutes))),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken checks the signature and expiry and returns the subject.
// Parse errors wrap the jwt/v5 sentinels (jwt.ErrTokenMalformed,
// jwt.ErrTokenSignatureInvalid, jwt.ErrTokenExpired) so callers can
// distinguish them with errors.Is.
func (ju *JWTUtil) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}
