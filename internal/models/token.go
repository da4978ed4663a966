package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPair is the access/refresh pair issued by POST /auth/login.
// The refresh token is persisted with the pair but never exchanged by this
// client; an expired access token is recovered by forced re-login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Empty reports whether the pair carries no access token.
func (p TokenPair) Empty() bool { return p.AccessToken == "" }

// AccessExpiresAt returns the access token's exp claim, read without
// signature verification (the client has no signing key; the value is for
// display and logging only, never for authorization decisions).
func (p TokenPair) AccessExpiresAt() (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(p.AccessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
