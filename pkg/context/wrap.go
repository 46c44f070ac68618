package context

import (
	"errors"
	"net/http"

	"Orbit/pkg/errorx"
	"Orbit/pkg/log"
	"Orbit/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
)

const internalMsg = "internal server error"

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}

		// 如果已经写过响应，直接返回
		if c.Writer.Written() {
			return
		}

		var be *response.BizError
		if errors.As(err, &be) {
			response.Fail(c, be.Code, be.Msg)
			return
		}

		var xe *errorx.Error
		if errors.As(err, &xe) && xe.Kind != errorx.Internal {
			response.Fail(c, xe.Kind.Status(), xe.Msg)
			return
		}

		// 内部错误只记日志, 不把细节返回给客户端
		log.L.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.Fail(c, http.StatusInternalServerError, internalMsg)
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errorx.NewUnauthenticated("not authenticated")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errorx.NewUnauthenticated("not authenticated")
	}

	return uid, nil
}
