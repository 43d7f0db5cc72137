package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"slotify/config"

	"github.com/golang-jwt/jwt/v4"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "slotify-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT with the given subject (userID), role and
// business scope. The token expires after the specified duration.
func GenerateToken(subject, role, businessID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      subject,
		"role":     role,
		"business": businessID,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// TokenClaims holds the fields this service embeds into its JWTs.
type TokenClaims struct {
	Subject    string
	Role       string
	BusinessID string
}

// ExtractClaims validates a token string and returns the subject, role and
// business scope claims.
func ExtractClaims(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := claims["role"].(string)
	business, _ := claims["business"].(string)

	return &TokenClaims{Subject: sub, Role: role, BusinessID: business}, nil
}
