package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/openhire/jobboard/internal/apperrors"
	"github.com/openhire/jobboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const viewerContextKey = "viewer_id"

// Resolver turns a bearer token into a viewer id. Session issuance and the
// rest of authentication live outside this service; search and the seeker
// endpoints only need the optional identity a token yields.
type Resolver interface {
	ResolveViewer(ctx context.Context, token string) (uint, error)
}

// TokenStore resolves viewers against the access_tokens table, matching on
// the SHA-256 of the presented token.
type TokenStore struct {
	DB *gorm.DB
}

func NewTokenStore(db *gorm.DB) *TokenStore {
	return &TokenStore{DB: db}
}

func (s *TokenStore) ResolveViewer(ctx context.Context, token string) (uint, error) {
	sum := sha256.Sum256([]byte(token))
	hash := hex.EncodeToString(sum[:])

	var record models.AccessToken
	err := s.DB.WithContext(ctx).Where("token_hash = ?", hash).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.Unauthorized("invalid token", nil)
	}
	if err != nil {
		return 0, apperrors.Internal("resolve token failed", err)
	}

	return record.UserID, nil
}

// Middleware resolves an optional bearer identity into the request context.
// It never aborts: every endpoint here works anonymously, and protected
// handlers decide for themselves via RequireViewer.
func Middleware(resolver Resolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.Next()
			return
		}

		viewerID, err := resolver.ResolveViewer(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			if apperrors.TypeOf(err) == apperrors.ErrTypeInternal {
				logger.Error("viewer resolution failed", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(viewerContextKey, viewerID)
		c.Next()
	}
}

// ViewerID returns the resolved viewer id, or nil for anonymous requests.
func ViewerID(c *gin.Context) *uint {
	if v, ok := c.Get(viewerContextKey); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

// RequireViewer returns the viewer id or false for anonymous requests.
func RequireViewer(c *gin.Context) (uint, bool) {
	if id := ViewerID(c); id != nil {
		return *id, true
	}
	return 0, false
}
