package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajvitaldeveloper/blog-backend/config"
	"github.com/pankajvitaldeveloper/blog-backend/models"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

// SessionCookie is the fixed name of the session cookie.
const SessionCookie = "blogsession"

const ctxUserKey = "user"

// Authenticate resolves the session cookie into a stored user. Any failure
// short-circuits with 401 and no side effects beyond the response.
func Authenticate(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			abortUnauthenticated(c)
			return
		}

		if TokenRevoked(token) {
			abortUnauthenticated(c)
			return
		}

		claims, err := utils.ParseJWT(token, cfg.JWTSecret)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		var user models.User
		if err := utils.GetDB().First(&user, claims.UserID).Error; err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(ctxUserKey, &user)
		c.Next()
	}
}

// RequireRole must run after Authenticate. It is a pure predicate over the
// already-resolved identity.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthenticated(c)
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Access denied. Insufficient permissions",
		})
	}
}

// TokenRevoked reports whether a logout blacklisted the token. Revocations
// live in Redis until the token's natural expiry; with no client configured
// nothing is ever revoked.
func TokenRevoked(token string) bool {
	rdb := utils.GetRedis()
	if rdb == nil {
		return false
	}
	_, err := rdb.Get(utils.RedisCtx(), "blacklist:"+token).Result()
	return err == nil
}

// CurrentUser returns the user resolved by Authenticate, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Authentication required",
	})
}
