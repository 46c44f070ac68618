package socket

import (
	"context"
	"errors"
	"strconv"

	"Orbit/pkg/log"
	"Orbit/pkg/presence"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	EventNewMessage  = "newMessage"
	EventOnlineUsers = "onlineUsers"
	EventTyping      = "typing"
	EventPing        = "ping"
	EventPong        = "pong"
)

var ErrClientNotFound = errors.New("client not found")

var onlineUsersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "orbit_online_users",
	Help: "Number of users with an active socket connection",
})

func init() {
	prometheus.MustRegister(onlineUsersGauge)
}

// Hub 管理本进程内所有连接, 在线状态交给 presence.Registry
type Hub struct {
	clients  cmap.ConcurrentMap[string, *Client]
	registry *presence.Registry
}

func NewHub(registry *presence.Registry) *Hub {
	h := &Hub{
		clients:  cmap.New[*Client](),
		registry: registry,
	}
	registry.SetNotifier(h)
	return h
}

// Serve 接管一条已升级的连接, 阻塞直到连接断开
func (h *Hub) Serve(conn *websocket.Conn, uid int64) {
	c := newClient(conn, uid)
	h.clients.Set(c.cid, c)
	h.registry.Register(uid, c.cid)

	log.L.Info("socket connected", zap.Int64("uid", uid), zap.String("cid", c.cid))

	go c.loopWrite()
	c.loopRead(h.onMessage)

	c.Close(websocket.CloseNormalClosure, "")
	h.clients.Remove(c.cid)
	h.registry.Release(uid, c.cid)

	log.L.Info("socket disconnected", zap.Int64("uid", uid), zap.String("cid", c.cid))
}

// Push 按连接 ID 下发
func (h *Hub) Push(cid string, event string, content any) error {
	c, ok := h.clients.Get(cid)
	if !ok {
		return ErrClientNotFound
	}
	return c.Write(&ClientResponse{Event: event, Content: content})
}

// PushUser 用户在线时下发到其当前连接, 不在线返回 false
func (h *Hub) PushUser(uid int64, event string, content any) bool {
	cid, ok := h.registry.Lookup(uid)
	if !ok {
		return false
	}
	if err := h.Push(cid, event, content); err != nil {
		log.L.Warn("socket push failed", zap.Int64("uid", uid), zap.String("event", event), zap.Error(err))
		return false
	}
	return true
}

func (h *Hub) Broadcast(event string, content any) {
	resp := &ClientResponse{Event: event, Content: content}
	for item := range h.clients.IterBuffered() {
		_ = item.Val.Write(resp)
	}
}

// NotifyOnline 实现 presence.Notifier
func (h *Hub) NotifyOnline(userIDs []int64) {
	onlineUsersGauge.Set(float64(len(userIDs)))

	ids := make([]string, 0, len(userIDs))
	for _, uid := range userIDs {
		ids = append(ids, strconv.FormatInt(uid, 10))
	}
	h.Broadcast(EventOnlineUsers, ids)
}

// Start 心跳检测, 随 ctx 结束
func (h *Hub) Start(ctx context.Context) error {
	return newHeartbeat(h).Start(ctx)
}

func (h *Hub) onMessage(c *Client, data []byte) {
	event := gjson.GetBytes(data, "event").String()

	switch event {
	case EventPing:
		_ = c.Write(&ClientResponse{Event: EventPong})
	case EventPong:
	case EventTyping:
		receiverID := gjson.GetBytes(data, "content.receiverId").Int()
		if receiverID <= 0 {
			return
		}
		h.PushUser(receiverID, EventTyping, map[string]any{
			"senderId": strconv.FormatInt(c.uid, 10),
			"typing":   gjson.GetBytes(data, "content.typing").Bool(),
		})
	default:
		log.L.Debug("unknown socket event", zap.String("event", event), zap.String("cid", c.cid))
	}
}
