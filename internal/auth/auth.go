// Package auth issues and verifies the ECDSA-signed session tokens the
// routing layer hands out after a successful login. The account core itself
// is session-agnostic; sessions live entirely at this boundary.
package auth

import (
	"crypto/ecdsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ISSUER  = "github.com/mealmajor/accountd"
	SUBJECT = "SESSION"

	// SessionTTL bounds how long a profile session stays valid without a
	// fresh login.
	SessionTTL = 30 * time.Minute
)

// SessionClaims carries the username a session is keyed by.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// CreateToken signs a session token for the given username.
func CreateToken(username string, privateKey *ecdsa.PrivateKey) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    ISSUER,
			Subject:   SUBJECT,
			Audience:  []string{ISSUER},
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)

	signedToken, err := token.SignedString(privateKey)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// VerifyToken parses and validates a session token, returning its claims.
func VerifyToken(tokenString string, publicKey *ecdsa.PublicKey) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing error: %v", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token or claims")
}
