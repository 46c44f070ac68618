package handler

import (
	"net/http"
	"strconv"

	"Orbit/config"
	"Orbit/middleware"
	"Orbit/pkg/log"
	"Orbit/pkg/response"
	"Orbit/pkg/socket"
	"Orbit/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Socket struct {
	Config      *config.Config
	Hub         *socket.Hub
	AuthService service.IAuthService
}

func (s *Socket) RegisterRouter(r gin.IRouter) {
	r.GET("/socket", s.Connect)
}

func (s *Socket) upgrader() *websocket.Upgrader {
	origin := s.Config.App.ClientOrigin
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if origin == "" {
				return true
			}
			o := r.Header.Get("Origin")
			return o == "" || o == origin
		},
	}
}

// Connect 以 userId 作为连接身份; 若带了令牌则必须与 userId 一致
func (s *Socket) Connect(c *gin.Context) {
	raw := c.Query("userId")
	if raw == "" || raw == "undefined" {
		response.Fail(c, http.StatusBadRequest, "userId is required")
		return
	}
	uid, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || uid <= 0 {
		response.Fail(c, http.StatusBadRequest, "invalid userId")
		return
	}

	if token := middleware.BearerToken(c); token != "" {
		tokenUID, err := s.AuthService.ParseToken(token)
		if err != nil || tokenUID != uid {
			response.Fail(c, http.StatusUnauthorized, "token does not match userId")
			return
		}
	}

	conn, err := s.upgrader().Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 失败时已写回错误响应
		log.L.Warn("websocket upgrade failed", zap.Int64("uid", uid), zap.Error(err))
		return
	}

	s.Hub.Serve(conn, uid)
}
