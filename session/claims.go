package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var errNoIdentity = errors.New("token carries neither user id nor username")

// tokenClaims is the identity the backend bakes into its JWTs.
type tokenClaims struct {
	UserID   int64
	Username string
	Role     string
}

// decodeClaims extracts identity claims without verifying the signature.
// Issuing and verifying tokens is the backend's job; the storefront only
// needs to know who the token says it belongs to.
func decodeClaims(token string) (tokenClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return tokenClaims{}, fmt.Errorf("decode token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return tokenClaims{}, errors.New("decode token: unexpected claims type")
	}

	claims := tokenClaims{}
	if id, ok := mapClaims["userId"].(float64); ok {
		claims.UserID = int64(id)
	}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Username = sub
	} else if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}

	if claims.UserID == 0 && claims.Username == "" {
		return tokenClaims{}, errNoIdentity
	}
	return claims, nil
}
