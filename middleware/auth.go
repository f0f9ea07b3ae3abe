package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Tvilalai/jsd9-catsudon-backend/apperrors"
	"github.com/Tvilalai/jsd9-catsudon-backend/auth"
)

const identityKey = "identity"

// AccessTokenCookie is the cookie carrying the session token.
const AccessTokenCookie = "accessToken"

// Authenticate extracts the session token (cookie first, Authorization
// Bearer header as fallback) and attaches the decoded identity to the
// context. It only establishes who the caller is; role checks belong to the
// individual handlers.
func Authenticate(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AccessTokenCookie)
		if err != nil || tokenString == "" {
			tokenString = bearerToken(c.GetHeader("Authorization"))
		}
		if tokenString == "" {
			_ = c.Error(apperrors.NoToken())
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				_ = c.Error(apperrors.TokenExpired())
			} else {
				_ = c.Error(apperrors.InvalidToken())
			}
			c.Abort()
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// Identity returns the claims attached by Authenticate.
func Identity(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, prefix))
	}
	return ""
}
