package socket

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
)

const (
	heartbeatInterval = 10 // 心跳检测间隔时间
	heartbeatTimeout  = 35 // 心跳检测超时时间（超时时间是隔间检测时间的2.5倍以上）
)

// 客户端心跳管理
type heartbeat struct {
	hub *Hub
}

func newHeartbeat(hub *Hub) *heartbeat {
	return &heartbeat{hub: hub}
}

func (h *heartbeat) Start(ctx context.Context) error {
	ticker := time.NewTicker(heartbeatInterval * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.check(time.Now().Unix())
		}
	}
}

func (h *heartbeat) check(now int64) {
	for item := range h.hub.clients.IterBuffered() {
		h.handle(item.Val, now)
	}
}

func (h *heartbeat) handle(c *Client, now int64) {
	if c.Closed() {
		return
	}

	interval := now - c.lastTime.Load()
	if interval > heartbeatTimeout {
		c.Close(websocket.CloseGoingAway, "heartbeat timeout")
		return
	}

	if interval >= heartbeatInterval {
		_ = c.Write(&ClientResponse{Event: EventPing})
	}
}
