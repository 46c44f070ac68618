package handler

import (
	"Orbit/config"
	"Orbit/middleware"
	"Orbit/pkg/context"
	"Orbit/pkg/response"
	"Orbit/service"
	"Orbit/types"

	"github.com/gin-gonic/gin"
)

type Media struct {
	Config       *config.Config
	MediaService service.IMediaService
}

func (m *Media) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/media")
	g.Use(middleware.Auth([]byte(m.Config.Jwt.Secret)))
	g.GET("/upload-auth", context.Wrap(m.UploadAuth))
}

// UploadAuth 客户端拿预签名地址直传 OSS
func (m *Media) UploadAuth(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.UploadAuthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}

	res, err := m.MediaService.UploadAuth(c.Request.Context(), uid, req.Kind, req.Ext)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}
