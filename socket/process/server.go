package process

import (
	"context"
	"reflect"
	"sync"

	"Orbit/pkg/log"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var once sync.Once

// IServer 随 HTTP 服务一起启动的常驻协程
type IServer interface {
	Name() string
	Setup(ctx context.Context) error
}

// SubServers 常驻协程列表
type SubServers struct {
	Heartbeat    *Heartbeat    // 连接心跳
	StoryCleaner *StoryCleaner // 过期快拍清理
}

type Server struct {
	items []IServer
	SubServers
}

func NewServer(servers *SubServers) *Server {
	s := &Server{SubServers: *servers}
	s.binds(servers)
	return s
}

func (c *Server) binds(servers *SubServers) {
	elem := reflect.ValueOf(servers).Elem()
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		if field.Kind() == reflect.Ptr && field.IsNil() {
			continue
		}
		if v, ok := field.Interface().(IServer); ok {
			c.items = append(c.items, v)
		}
	}
}

// Start 启动全部协程, 只生效一次
func (c *Server) Start(eg *errgroup.Group, ctx context.Context) {
	once.Do(func() {
		for _, process := range c.items {
			serv := process
			eg.Go(func() error {
				log.L.Info("process start", zap.String("name", serv.Name()))
				err := serv.Setup(ctx)
				log.L.Info("process stopped", zap.String("name", serv.Name()), zap.Error(err))
				return err
			})
		}
	})
}
