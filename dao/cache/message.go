package cache

import (
	"context"
	"fmt"

	"Orbit/models"
	"Orbit/pkg/jsonutil"

	"github.com/redis/go-redis/v9"
)

const lastMessageCacheKey = "orbit:message:last_message"

type MessageStorage struct {
	redis *redis.Client
}

func NewMessageStorage(rds *redis.Client) *MessageStorage {
	return &MessageStorage{rds}
}

type LastCacheMessage struct {
	MessageID int64  `json:"message_id,string"`
	SenderID  int64  `json:"sender_id,string"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

func (m *MessageStorage) Set(ctx context.Context, a, b int64, message *LastCacheMessage) error {
	return m.redis.HSet(ctx, lastMessageCacheKey, m.name(a, b), jsonutil.Encode(message)).Err()
}

func (m *MessageStorage) Get(ctx context.Context, a, b int64) (*LastCacheMessage, error) {
	res, err := m.redis.HGet(ctx, lastMessageCacheKey, m.name(a, b)).Result()
	if err != nil {
		return nil, err
	}

	msg := &LastCacheMessage{}
	if err = jsonutil.Decode(res, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// BatchGet 按会话取最后一条消息, key 为会话 ID, 缓存缺失的会话不在结果里
func (m *MessageStorage) BatchGet(ctx context.Context, convs []*models.Conversation) map[int64]*LastCacheMessage {
	resMap := make(map[int64]*LastCacheMessage, len(convs))
	if len(convs) == 0 {
		return resMap
	}

	fields := make([]string, 0, len(convs))
	for _, c := range convs {
		fields = append(fields, m.name(c.UserLow, c.UserHigh))
	}

	vals, err := m.redis.HMGet(ctx, lastMessageCacheKey, fields...).Result()
	if err != nil {
		return resMap
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		msg := &LastCacheMessage{}
		if jsonutil.Decode(s, msg) == nil {
			resMap[convs[i].ID] = msg
		}
	}
	return resMap
}

func (m *MessageStorage) name(a, b int64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}
