package process

import (
	"context"

	"Orbit/pkg/socket"
)

type Heartbeat struct {
	Hub *socket.Hub
}

func (h *Heartbeat) Name() string {
	return "heartbeat"
}

func (h *Heartbeat) Setup(ctx context.Context) error {
	return h.Hub.Start(ctx)
}
