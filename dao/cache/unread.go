package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 未读消息过期时间 - 14天
const unreadExpireAt = 14 * 24 * time.Hour

type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{rds}
}

// Incr 消息未读数自增
// @params uid     接收者ID
// @params sender  发送者ID
func (u *UnreadStorage) Incr(ctx context.Context, uid, sender int64) error {
	name := u.name(uid, sender)
	_, err := u.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, name)
		pipe.Expire(ctx, name, unreadExpireAt)
		return nil
	})
	return err
}

// Get 获取消息未读数
func (u *UnreadStorage) Get(ctx context.Context, uid, sender int64) int64 {
	i, err := u.redis.Get(ctx, u.name(uid, sender)).Int64()
	if err != nil {
		return 0
	}
	return i
}

// Reset 消息未读数重置
func (u *UnreadStorage) Reset(ctx context.Context, uid, sender int64) error {
	return u.redis.Del(ctx, u.name(uid, sender)).Err()
}

// BatchGet 按对端取未读数
func (u *UnreadStorage) BatchGet(ctx context.Context, uid int64, peers []int64) map[int64]int64 {
	resMap := make(map[int64]int64, len(peers))
	if len(peers) == 0 {
		return resMap
	}

	pipe := u.redis.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(peers))
	for _, peer := range peers {
		cmds = append(cmds, pipe.Get(ctx, u.name(uid, peer)))
	}
	_, _ = pipe.Exec(ctx)

	for i, cmd := range cmds {
		if n, err := cmd.Int64(); err == nil {
			resMap[peers[i]] = n
		}
	}
	return resMap
}

// 未读数缓存
// orbit:unread:uid:sender
func (u *UnreadStorage) name(uid, sender int64) string {
	return fmt.Sprintf("orbit:unread:%d:%d", uid, sender)
}
