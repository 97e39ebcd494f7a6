package utils

import "github.com/gin-gonic/gin"

const (
	ctxUserID = "userId"
	ctxRole   = "role"
)

// SetIdentity stashes the authenticated caller on the request context.
// The auth middleware is the only writer.
func SetIdentity(c *gin.Context, userID uint, role string) {
	c.Set(ctxUserID, userID)
	c.Set(ctxRole, role)
}

// CurrentUserID returns the caller's id, 0 on unauthenticated requests.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(ctxRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
