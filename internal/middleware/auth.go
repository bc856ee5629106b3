package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CallerKey is the gin context key holding the caller's display name.
const CallerKey = "caller"

// Caller reads the bearer token, if any, and records the caller name from
// its claims. The signature is NOT verified: the name only labels log lines
// and fills in a missing actor. Requests are never rejected here.
func Caller() gin.HandlerFunc {
	parser := jwt.NewParser()
	return func(c *gin.Context) {
		// Try cookie first, fallback to Authorization header
		tokenString, cookieErr := c.Cookie("access_token")
		if cookieErr != nil || tokenString == "" {
			tokenString = bearerToken(c.GetHeader("Authorization"))
		}
		if tokenString == "" {
			c.Next()
			return
		}

		claims := jwt.MapClaims{}
		if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
			if name := callerName(claims); name != "" {
				c.Set(CallerKey, name)
			}
		}
		c.Next()
	}
}

// CallerName returns the name recorded by Caller, or "".
func CallerName(c *gin.Context) string {
	return c.GetString(CallerKey)
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// callerName prefers a human name claim over the subject.
func callerName(claims jwt.MapClaims) string {
	for _, key := range []string{"name", "preferred_username", "email"} {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if sub, err := claims.GetSubject(); err == nil {
		return strings.TrimSpace(sub)
	}
	return ""
}
