package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// Role is the authorization role carried in a token's "role" claim.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AuthClaims is the decoded payload of a bearer token.
type AuthClaims struct {
	Subject string
	Role    Role
}

// Session is the auth flag set derived from a token.
type Session struct {
	IsAuthenticated bool
	IsAdmin         bool
	Subject         string
	Role            Role
}

// Anonymous is the session for an absent or undecodable token.
func Anonymous() Session {
	return Session{}
}

// DecodeClaimsUnverified reads the claims of a JWT without checking its
// signature, expiry or issuer. Only the payload segment is decoded: the
// header may be anything and the signature segment may be missing. The
// result must not be treated as proof of identity; it only mirrors what the
// token says.
func DecodeClaimsUnverified(token string) (*AuthClaims, error) {
	segments := strings.Split(token, ".")
	if len(segments) < 2 {
		return nil, fmt.Errorf("%w: missing payload segment", ErrTokenDecode)
	}

	payload, err := jwt.DecodeSegment(strings.TrimRight(segments[1], "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenDecode, err)
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenDecode, err)
	}

	decoded := &AuthClaims{}
	if sub, ok := claims["sub"].(string); ok {
		decoded.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		decoded.Role = Role(role)
	}
	return decoded, nil
}

// DeriveSession maps a stored token to auth flags. An empty token means no
// token. A malformed token yields Anonymous together with an error wrapping
// ErrTokenDecode; the caller is expected to discard that token.
//
// No signature verification is performed.
func DeriveSession(token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Anonymous(), nil
	}

	claims, err := DecodeClaimsUnverified(token)
	if err != nil {
		return Anonymous(), err
	}

	return Session{
		IsAuthenticated: true,
		IsAdmin:         claims.Role == RoleAdmin,
		Subject:         claims.Subject,
		Role:            claims.Role,
	}, nil
}
