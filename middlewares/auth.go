package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/utils"
)

// AuthMiddleware validates the bearer token and applies the route guard.
// Failures answer with a redirect target so clients can route the user to
// their own dashboard instead of an error page.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile *entity.User
		userID, role, ok := parseToken(c, secret)
		if ok {
			profile = &entity.User{Role: role}
			profile.ID = userID
		}

		d := Decide(profile, requiredRoles, false)
		if !d.Allow {
			status := http.StatusForbidden
			if profile == nil {
				status = http.StatusUnauthorized
			}
			resp.Redirect(c, status, d.Target)
			c.Abort()
			return
		}

		utils.SetIdentity(c, userID, role)
		c.Next()
	}
}

// PublicOnlyMiddleware wraps auth-class routes: an already-authenticated
// caller is pointed back at their dashboard.
func PublicOnlyMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile *entity.User
		if _, role, ok := parseToken(c, secret); ok {
			profile = &entity.User{Role: role}
		}
		if d := DecidePublicOnly(profile); !d.Allow {
			resp.Redirect(c, http.StatusForbidden, d.Target)
			c.Abort()
			return
		}
		c.Next()
	}
}

func parseToken(c *gin.Context, secret string) (uint, string, bool) {
	h := c.GetHeader("Authorization")
	tokenStr := ""
	if strings.HasPrefix(h, "Bearer ") {
		tokenStr = strings.TrimPrefix(h, "Bearer ")
	} else if q := c.Query("token"); q != "" {
		// websocket handshakes cannot set headers from the browser
		tokenStr = q
	}
	if tokenStr == "" {
		return 0, "", false
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	var role string
	if v, ok := claims["role"].(string); ok {
		role = v
	}
	if !entity.ValidRole(role) {
		return 0, "", false
	}

	var userID uint
	switch v := claims["userId"].(type) {
	case float64:
		userID = uint(v)
	case int:
		userID = uint(v)
	case int64:
		userID = uint(v)
	case uint:
		userID = v
	}
	if userID == 0 {
		return 0, "", false
	}
	return userID, role, true
}
