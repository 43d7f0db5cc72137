package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"slotify/models"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by AuthMiddleware.
const (
	CtxUserID     = "userID"
	CtxRole       = "role"
	CtxBusinessID = "businessID"
)

const authCachePrefix = "auth:token:"

// authCacheTTL bounds how long a cached claim set can outlive token
// expiry or revocation.
const authCacheTTL = 10 * time.Minute

// AuthMiddleware validates the bearer token and stores its claims in the
// request context. Validated claims are cached under the token's hash so
// repeat requests skip signature verification; a nil or unreachable cache
// degrades to per-request validation.
func AuthMiddleware(cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		cacheKey := authCachePrefix + utils.HashToken(tokenString)
		if claims := cachedClaims(c, cache, cacheKey); claims != nil {
			setClaims(c, claims)
			c.Next()
			return
		}

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if cache != nil {
			if data, err := json.Marshal(claims); err == nil {
				if err := cache.Set(c.Request.Context(), cacheKey, data, authCacheTTL).Err(); err != nil {
					zap.L().Warn("failed to cache auth claims", zap.Error(err))
				}
			}
		}

		setClaims(c, claims)
		c.Next()
	}
}

func cachedClaims(c *gin.Context, cache *redis.Client, key string) *utils.TokenClaims {
	if cache == nil {
		return nil
	}
	data, err := cache.Get(c.Request.Context(), key).Result()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("auth cache lookup failed", zap.Error(err))
		}
		return nil
	}
	var claims utils.TokenClaims
	if err := json.Unmarshal([]byte(data), &claims); err != nil {
		return nil
	}
	return &claims
}

func setClaims(c *gin.Context, claims *utils.TokenClaims) {
	c.Set(CtxUserID, claims.Subject)
	c.Set(CtxRole, claims.Role)
	c.Set(CtxBusinessID, claims.BusinessID)
}

// RequireRole aborts unless the authenticated role is one of the allowed ones.
// Superadmins pass every role check.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role == models.RoleSuperadmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// RequireBusinessScope restricts admins to their own tenant. The business ID is
// taken from the named route parameter. Superadmins may act on any tenant.
func RequireBusinessScope(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role == models.RoleSuperadmin {
			c.Next()
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		if c.Param(param) != c.GetString(CtxBusinessID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Business scope mismatch"})
			return
		}
		c.Next()
	}
}
