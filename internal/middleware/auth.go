package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const userIDKey = "user_id"

// Auth verifies the bearer token issued by the external identity provider
// and exposes its subject as the acting user id. Token issuance and key
// rotation live with the provider; this only consumes its claims.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token"},
			)
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token"},
			)
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "token has no subject"},
			)
			return
		}

		c.Set(userIDKey, sub)

		c.Next()
	}
}

// UserID returns the authenticated user id placed by Auth.
func UserID(c *ginext.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}
