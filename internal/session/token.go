package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hanifr/storefront/internal/common"
	inErrors "github.com/hanifr/storefront/internal/errors"
)

const tokenLifetime = 30 * 24 * time.Hour

// SignToken wraps a session id into the signed cookie value. The client only
// ever holds this token; all session state stays server side.
func SignToken(sessionID uuid.UUID, secretKey string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{common.AudienceStorefront},
			Issuer:    common.AppStorefront,
			Subject:   sessionID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	)
	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed signing session token with error=%w", err)
	}
	return signed, nil
}

func VerifyToken(token string, secretKey string) (uuid.UUID, error) {
	jwtToken, err := jwt.ParseWithClaims(token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
		jwt.WithAudience(common.AudienceStorefront),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(common.AppStorefront),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed parsing session token with error=%w", err)
	}
	if !jwtToken.Valid {
		return uuid.Nil, inErrors.ErrTokenInvalid
	}
	subject, err := jwtToken.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed getting subject from session token with error=%w", err)
	}
	sessionID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed parsing subject=%s with error=%w", subject, err)
	}
	return sessionID, nil
}
