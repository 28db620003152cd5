package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"identity-service/internal/constant"
	"identity-service/internal/repository"
	"identity-service/internal/utils/errcode"
	"time"
)

type BlacklistService struct {
	JwtService          *JwtService
	BlacklistRepository repository.TokenBlacklistRepository
}

func NewBlacklistService(jwtService *JwtService, repo repository.TokenBlacklistRepository) *BlacklistService {
	return &BlacklistService{jwtService, repo}
}

func (b *BlacklistService) IsTokenBlacklisted(ctx context.Context, token string, tokenType constant.TokenType) error {
	tokenHash := b.generateTokenHash(token)
	logout, err := b.BlacklistRepository.IsBlacklisted(ctx, tokenHash, tokenType)
	if err != nil {
		return errcode.ErrRedisGet
	}

	if logout {
		return errcode.ErrUnauthorized
	}

	return nil
}

func (b *BlacklistService) Add(ctx context.Context, token string, tokenType constant.TokenType) error {
	// Store the hash, never the raw token
	tokenHash := b.generateTokenHash(token)

	// Parse token to get expiration time
	claims, err := b.parseTokenClaims(ctx, token, tokenType)
	if err != nil {
		// if parse failed, set default TTL
		return b.BlacklistRepository.Add(ctx, tokenHash, tokenType, 24*time.Hour)
	}

	// Set TTL based on expiration time token
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		// Token is expired, no need to blacklist
		return nil
	}

	if err := b.BlacklistRepository.Add(ctx, tokenHash, tokenType, ttl); err != nil {
		return errcode.ErrRedisSet
	}

	return nil
}

// Generate SHA256 hash
func (b *BlacklistService) generateTokenHash(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// Parse token to get claims
func (b *BlacklistService) parseTokenClaims(ctx context.Context, token string, tokenType constant.TokenType) (*Claims, error) {
	if tokenType == constant.TokenTypeAccess {
		return b.JwtService.ValidateAccessToken(ctx, token)
	}
	return b.JwtService.ValidateRefreshToken(ctx, token)
}
