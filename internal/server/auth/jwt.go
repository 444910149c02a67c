// Package auth issues and parses the access tokens that bind gRPC calls to
// a ledger identity.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity (wallet address) a token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	Identity string `json:"identity"`
}

func GenerateToken(identity string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Identity: identity,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetIdentityFromToken validates tokenString and returns its identity.
// Expired tokens yield common.ErrTokenExpired, anything else that fails
// validation yields common.ErrInvalidToken.
func GetIdentityFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Identity == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Identity, nil
}
