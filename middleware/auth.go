package middleware

import (
	"net/http"
	"strings"

	"Orbit/pkg/context"
	"Orbit/pkg/jwt"
	"Orbit/pkg/log"
	"Orbit/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenCookie 会话 cookie 名
const TokenCookie = "token"

// Auth 从 cookie 或 Authorization: Bearer 中取令牌
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "unauthorized - no token provided")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, token)
		if err != nil {
			log.L.Debug("invalid token", zap.String("path", c.FullPath()), zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "unauthorized - invalid token")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

// BearerToken cookie 优先, 其次 Authorization 头
func BearerToken(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
