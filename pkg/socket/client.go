package socket

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"Orbit/pkg/jsonutil"
	"Orbit/pkg/log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 8 << 10
	outBufferSize  = 64
)

var (
	ErrClientClosed = errors.New("client closed")
	ErrChanFull     = errors.New("client send buffer full")
)

// ClientResponse 下发给客户端的事件
type ClientResponse struct {
	Event   string `json:"event"`
	Content any    `json:"content,omitempty"`
}

// Client 一条 websocket 连接
type Client struct {
	cid      string
	uid      int64
	conn     *websocket.Conn
	outChan  chan []byte
	done     chan struct{}
	once     sync.Once
	closed   atomic.Bool
	lastTime atomic.Int64 // 最后一次收到消息的 unix 秒
}

func newClient(conn *websocket.Conn, uid int64) *Client {
	c := &Client{
		cid:     uuid.NewString(),
		uid:     uid,
		conn:    conn,
		outChan: make(chan []byte, outBufferSize),
		done:    make(chan struct{}),
	}
	c.lastTime.Store(time.Now().Unix())
	return c
}

func (c *Client) Cid() string {
	return c.cid
}

func (c *Client) Uid() int64 {
	return c.uid
}

func (c *Client) Closed() bool {
	return c.closed.Load()
}

// Write 异步写入, 缓冲区满时直接丢弃并返回错误
func (c *Client) Write(resp *ClientResponse) error {
	if c.Closed() {
		return ErrClientClosed
	}

	select {
	case c.outChan <- jsonutil.Marshal(resp):
		return nil
	case <-c.done:
		return ErrClientClosed
	default:
		return ErrChanFull
	}
}

func (c *Client) Close(code int, text string) {
	c.once.Do(func() {
		c.closed.Store(true)
		close(c.done)

		msg := websocket.FormatCloseMessage(code, text)
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		_ = c.conn.Close()
	})
}

func (c *Client) loopWrite() {
	for {
		select {
		case <-c.done:
			return
		case data := <-c.outChan:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.L.Warn("socket write failed", zap.String("cid", c.cid), zap.Error(err))
				c.Close(websocket.CloseAbnormalClosure, "write failed")
				return
			}
		}
	}
}

func (c *Client) loopRead(onMessage func(c *Client, data []byte)) {
	c.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		c.lastTime.Store(time.Now().Unix())
		onMessage(c, data)
	}
}
