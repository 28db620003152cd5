package service

import (
	"context"
	"identity-service/internal/config/env"
	"identity-service/internal/model"
	"identity-service/internal/utils/errcode"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Claims is the payload carried by both token kinds. UUID and Name are
// copied from the user at generation time so downstream consumers can
// identify the caller without a database read.
type Claims struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
	Type string `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

type JwtService struct {
	log           *logrus.Logger
	config        *env.Config
	tracer        trace.Tracer
	accessMethod  jwt.SigningMethod
	refreshMethod jwt.SigningMethod
}

func NewJwtService(log *logrus.Logger, config *env.Config) *JwtService {
	return &JwtService{
		log:           log,
		config:        config,
		tracer:        otel.Tracer("JwtService"),
		accessMethod:  jwt.SigningMethodHS256,
		refreshMethod: jwt.SigningMethodHS256,
	}
}

// SetAccessMethod overrides the signing method for access tokens. Tests use
// it to force signing failures.
func (j *JwtService) SetAccessMethod(method jwt.SigningMethod) {
	j.accessMethod = method
}

// SetRefreshMethod overrides the signing method for refresh tokens.
func (j *JwtService) SetRefreshMethod(method jwt.SigningMethod) {
	j.refreshMethod = method
}

// GenerateAccessToken creates a short-lived JWT access token for the user.
func (j *JwtService) GenerateAccessToken(ctx context.Context, user *model.User) (string, error) {
	_, span := j.tracer.Start(ctx, "GenerateAccessToken")
	defer span.End()

	claims := Claims{
		UUID: user.UUID,
		Name: user.FullName,
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.config.GetAccessTokenExpiration())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(j.accessMethod, claims)
	return token.SignedString([]byte(j.config.GetAccessSecret()))
}

// GenerateRefreshToken creates a long-lived JWT refresh token for the user.
func (j *JwtService) GenerateRefreshToken(ctx context.Context, user *model.User) (string, error) {
	_, span := j.tracer.Start(ctx, "GenerateRefreshToken")
	defer span.End()

	claims := Claims{
		UUID: user.UUID,
		Name: user.FullName,
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.config.GetRefreshTokenExpiration())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(j.refreshMethod, claims)
	return token.SignedString([]byte(j.config.GetRefreshSecret()))
}

func (j *JwtService) ValidateAccessToken(ctx context.Context, token string) (*Claims, error) {
	spanCtx, span := j.tracer.Start(ctx, "ValidateAccessToken")
	defer span.End()

	return j.validateToken(spanCtx, token, j.config.GetAccessSecret())
}

func (j *JwtService) ValidateRefreshToken(ctx context.Context, token string) (*Claims, error) {
	spanCtx, span := j.tracer.Start(ctx, "ValidateRefreshToken")
	defer span.End()

	return j.validateToken(spanCtx, token, j.config.GetRefreshSecret())
}

// validateToken verifies a JWT token and returns the claims if valid.
func (j *JwtService) validateToken(ctx context.Context, tokenString string, secretKey string) (*Claims, error) {
	spanCtx, span := j.tracer.Start(ctx, "validateToken")
	defer span.End()

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			j.log.WithContext(spanCtx).Error("Token method not match")
			return nil, errcode.ErrUnexpectedSignMethod
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		j.log.WithContext(spanCtx).WithError(err).Error("Failed to parse with claims")
		return nil, err
	}

	if !token.Valid {
		j.log.WithContext(spanCtx).Error("Token invalid")
		return nil, errcode.ErrInvalidToken
	}

	return claims, nil
}
