package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/server/models"
)

const (
	ctxAccountID = "accountID"
	ctxEmail     = "email"
	ctxRole      = "role"
)

// requireAuth validates the Bearer access token and stores its identity
// claims in the request context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := s.issuer.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxAccountID, claims.Subject)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, models.Role(claims.Role))
		c.Next()
	}
}

// requireRole aborts with 403 unless the authenticated role is one of roles.
// Must run after requireAuth.
func (s *Server) requireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.MustGet(ctxRole).(models.Role)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

func accountID(c *gin.Context) string {
	return c.MustGet(ctxAccountID).(string)
}

func accountRole(c *gin.Context) models.Role {
	return c.MustGet(ctxRole).(models.Role)
}
