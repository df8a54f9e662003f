package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// ErrTokenInvalid is returned for expired, malformed or foreign tokens.
var ErrTokenInvalid = errors.New("rejoin token is invalid")

// RejoinTokenService issues signed grants that let a disconnected player
// reclaim their seat in a paused game.
type RejoinTokenService struct {
	secret string
	issuer string
	ttl    time.Duration
}

// NewRejoinTokenService builds a token service with the given HMAC secret
// and issuer. A non-positive ttl defaults to one hour.
func NewRejoinTokenService(secret, issuer string, ttl time.Duration) *RejoinTokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RejoinTokenService{secret: secret, issuer: issuer, ttl: ttl}
}

// IssueToken signs a grant binding the user to the match.
func (s *RejoinTokenService) IssueToken(userID, matchID string) (string, error) {
	if s == nil || s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("rejoin token service is not configured")
	}
	if userID == "" || matchID == "" {
		return "", fmt.Errorf("user and match are required")
	}

	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": userID,
		"mid": matchID,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ValidateToken verifies the signature and issuer and returns the bound user
// and match IDs.
func (s *RejoinTokenService) ValidateToken(tokenString string) (userID, matchID string, err error) {
	if s == nil || s.secret == "" {
		return "", "", fmt.Errorf("rejoin token service is not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrTokenInvalid
	}
	if iss, _ := claims["iss"].(string); iss != s.issuer {
		return "", "", ErrTokenInvalid
	}
	userID, _ = claims["sub"].(string)
	matchID, _ = claims["mid"].(string)
	if userID == "" || matchID == "" {
		return "", "", ErrTokenInvalid
	}
	return userID, matchID, nil
}
