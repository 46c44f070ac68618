package handler

import (
	"net/http"
	"strconv"

	"Orbit/pkg/log"
	"Orbit/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 参数绑定失败时返回给客户端的固定信息, 具体原因只写日志
const msgInvalidRequest = "invalid request parameters"

// paramID 解析路径中的雪花 ID
func paramID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func bindError(err error) error {
	log.L.Info("bind request failed", zap.Error(err))
	return response.NewError(http.StatusBadRequest, msgInvalidRequest)
}
