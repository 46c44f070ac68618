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

type Message struct {
	Config         *config.Config
	MessageService service.IMessageService
}

func (m *Message) RegisterRouter(r gin.IRouter) {
	g := r.Group("/user")
	g.Use(middleware.Auth([]byte(m.Config.Jwt.Secret)))
	g.POST("/send/:receiverId", context.Wrap(m.Send))
	g.GET("/getMessage/:receiverId", context.Wrap(m.GetMessages))
	g.GET("/conversations", context.Wrap(m.Conversations))
}

// Send 发送私信, 对方在线时实时推送
func (m *Message) Send(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	receiver, err := paramID(c, "receiverId")
	if err != nil {
		return err
	}

	var req types.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	msg, err := m.MessageService.SendMessage(c.Request.Context(), uid, receiver, req.Message)
	if err != nil {
		return err
	}
	response.Created(c, msg)
	return nil
}

func (m *Message) GetMessages(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	peer, err := paramID(c, "receiverId")
	if err != nil {
		return err
	}

	view, err := m.MessageService.GetMessages(c.Request.Context(), uid, peer)
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}

func (m *Message) Conversations(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	items, err := m.MessageService.Conversations(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}
