package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nyumbani/internal/caching"
	"nyumbani/internal/models"
)

// AuthService issues and validates the locally-signed tokens used
// when no hosted auth provider is configured.
type AuthService interface {
	GenerateTokens(ctx context.Context, userID string) (*models.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.TokenResponse, error)
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
	RevokeToken(ctx context.Context, token string, tokenType *string) error
}

type authService struct {
	tokens     caching.TokenStore
	logger     *zap.Logger
	jwtSecret  []byte
	tokenTTL   time.Duration
	refreshTTL time.Duration
}

// TokenClaims are the JWT claims of an access token.
type TokenClaims struct {
	UserID  string `json:"user_id"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

func NewAuthService(tokens caching.TokenStore, logger *zap.Logger, jwtSecret string, tokenTTL, refreshTTL time.Duration) AuthService {
	return &authService{
		tokens:     tokens,
		logger:     logger,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *authService) GenerateTokens(ctx context.Context, userID string) (*models.TokenResponse, error) {
	now := time.Now()
	tokenID := uuid.NewString()

	claims := TokenClaims{
		UserID:  userID,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "nyumbani-auth",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        tokenID,
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign JWT: %w", err)
	}

	refreshToken := generateSecureToken()
	refreshTokenHash := hashToken(refreshToken)

	// refresh token record: userID:hash:expiry
	record := fmt.Sprintf("%s:%s:%d", userID, refreshTokenHash, now.Add(s.refreshTTL).Unix())
	if err := s.tokens.SetString(ctx, refreshKey(refreshTokenHash), record, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.tokenTTL.Seconds()),
		RefreshToken: refreshToken,
		UserID:       userID,
		TokenID:      tokenID,
		IssuedAt:     now,
	}, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenResponse, error) {
	refreshTokenHash := hashToken(refreshToken)

	key := refreshKey(refreshTokenHash)
	record, err := s.tokens.GetString(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	parts := strings.Split(record, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid refresh token record")
	}

	userID, storedHash, expiryStr := parts[0], parts[1], parts[2]
	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token expiry")
	}

	if time.Now().Unix() > expiry {
		if err := s.tokens.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete expired refresh token", zap.Error(err))
		}
		return nil, fmt.Errorf("refresh token expired")
	}

	if storedHash != refreshTokenHash {
		return nil, fmt.Errorf("invalid refresh token")
	}

	// Rotate: the old token is spent.
	if err := s.tokens.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to rotate refresh token", zap.Error(err))
	}

	return s.GenerateTokens(ctx, userID)
}

func (s *authService) ValidateToken(ctx context.Context, token string) (*TokenClaims, error) {
	jwtToken, err := jwt.ParseWithClaims(token, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	claims, ok := jwtToken.Claims.(*TokenClaims)
	if !ok || !jwtToken.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	// Revoked access tokens sit on the blacklist until they expire.
	if _, err := s.tokens.GetString(ctx, blacklistKey(claims.TokenID)); err == nil {
		return nil, fmt.Errorf("token revoked")
	}
	return claims, nil
}

func (s *authService) RevokeToken(ctx context.Context, token string, tokenType *string) error {
	if tokenType != nil && *tokenType == "refresh_token" {
		return s.tokens.Delete(ctx, refreshKey(hashToken(token)))
	}

	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		return fmt.Errorf("cannot revoke invalid token: %w", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.tokens.SetString(ctx, blacklistKey(claims.TokenID), "revoked", ttl)
}

func refreshKey(hash string) string {
	return "refresh_token:" + hash
}

func blacklistKey(tokenID string) string {
	return "token_blacklist:" + tokenID
}

func generateSecureToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return base64.URLEncoding.EncodeToString(bytes)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
