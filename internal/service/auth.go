package service

import (
	"context"
	"fmt"
	"time"

	"storefront-backend/internal/client"
	"storefront-backend/internal/config"
	"storefront-backend/internal/dto"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService wraps the platform's member login in a storefront session.
// The platform issues the member token; we only carry it inside a signed
// JWT so later requests can present it back.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	MemberToken(sessionToken string) (string, error)
}

type sessionClaims struct {
	MemberToken string `json:"mtk"`
	Email       string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type authServiceImpl struct {
	commerceClient client.CommerceClient
	jwtSecret      []byte
	ttl            time.Duration
}

func NewAuthService(commerceClient client.CommerceClient, cfg *config.Session) AuthService {
	return &authServiceImpl{
		commerceClient: commerceClient,
		jwtSecret:      []byte(cfg.JWTSecret),
		ttl:            time.Duration(cfg.TTLHours) * time.Hour,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	session, err := s.commerceClient.MemberLogin(ctx, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("platform login: %w", err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		MemberToken: session.Token,
		Email:       session.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &dto.LoginResponse{
		Token: signed,
		Email: session.Email,
		Name:  session.Name,
	}, nil
}

// MemberToken extracts the platform member token from a storefront session
// token, verifying the signature and expiry.
func (s *authServiceImpl) MemberToken(sessionToken string) (string, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(sessionToken, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}
	if claims.MemberToken == "" {
		return "", fmt.Errorf("session has no member token")
	}
	return claims.MemberToken, nil
}
