package service

import (
	"context"
	"strings"
	"time"

	"Orbit/dao/cache"
	"Orbit/models"
	"Orbit/pkg/log"
	"Orbit/pkg/snowflake"
	"Orbit/pkg/socket"
	"Orbit/types"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var _ IMessageService = (*MessageService)(nil)

type IMessageService interface {
	SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error)
	GetMessages(ctx context.Context, userID, peerID int64) (*types.ConversationView, error)
	Conversations(ctx context.Context, userID int64) ([]*types.ConversationItem, error)
}

// MessageService 私信: 落库后按在线状态实时推送给接收方, 不在线则只落库
type MessageService struct {
	Messages    MessageStore
	Convs       ConversationStore
	Users       UserStore
	LastMessage LastMessageCache
	Unread      UnreadCache
	Pusher      Pusher
}

func (s *MessageService) SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}
	if _, err := findUser(ctx, s.Users, receiverID); err != nil {
		return nil, err
	}

	id := snowflake.GenID()
	msg := &models.Message{
		ID:         id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Ext:        datatypes.JSON("{}"),
		CreatedAt:  snowflake.Time(id),
	}
	if _, err := s.Messages.Append(ctx, msg); err != nil {
		return nil, err
	}

	// 缓存失败不影响发送结果
	if err := s.LastMessage.Set(ctx, senderID, receiverID, &cache.LastCacheMessage{
		MessageID: msg.ID,
		SenderID:  senderID,
		Content:   msg.Content,
		Timestamp: msg.CreatedAt.UnixMilli(),
	}); err != nil {
		log.L.Warn("cache last message failed", zap.Int64("msg_id", msg.ID), zap.Error(err))
	}
	if err := s.Unread.Incr(ctx, receiverID, senderID); err != nil {
		log.L.Warn("incr unread failed", zap.Int64("msg_id", msg.ID), zap.Error(err))
	}

	s.Pusher.PushUser(receiverID, socket.EventNewMessage, msg)
	return msg, nil
}

// GetMessages 两人会话的全部消息, 没有会话时返回空列表. 读取即清空未读
func (s *MessageService) GetMessages(ctx context.Context, userID, peerID int64) (*types.ConversationView, error) {
	conv, err := s.Convs.FindByPair(ctx, userID, peerID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return &types.ConversationView{Messages: []*models.Message{}}, nil
	}

	msgs, err := s.Messages.ListByConversation(ctx, conv.ID)
	if err != nil {
		return nil, err
	}

	if err := s.Unread.Reset(ctx, userID, peerID); err != nil {
		log.L.Warn("reset unread failed", zap.Int64("uid", userID), zap.Error(err))
	}
	return &types.ConversationView{Messages: msgs}, nil
}

// Conversations 我的会话列表, 附带对端资料/最后一条消息/未读数
func (s *MessageService) Conversations(ctx context.Context, userID int64) ([]*types.ConversationItem, error) {
	convs, err := s.Convs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]*types.ConversationItem, 0, len(convs))
	if len(convs) == 0 {
		return items, nil
	}

	peers := make([]int64, 0, len(convs))
	for _, c := range convs {
		peers = append(peers, c.Peer(userID))
	}
	users, err := userMap(ctx, s.Users, peers)
	if err != nil {
		return nil, err
	}

	last := s.LastMessage.BatchGet(ctx, convs)
	if err := s.fillMissingLast(ctx, convs, last); err != nil {
		return nil, err
	}
	unread := s.Unread.BatchGet(ctx, userID, peers)

	for _, c := range convs {
		peer := c.Peer(userID)
		item := &types.ConversationItem{
			ID:        c.ID,
			Peer:      types.NewUserSummary(users[peer]),
			Unread:    unread[peer],
			UpdatedAt: c.UpdatedAt,
		}
		if m, ok := last[c.ID]; ok {
			item.LastMessage = &types.LastMessage{
				ID:       m.MessageID,
				SenderID: m.SenderID,
				Content:  m.Content,
				SentAt:   time.UnixMilli(m.Timestamp),
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// fillMissingLast 缓存缺失(过期或 redis 重启)时回源数据库
func (s *MessageService) fillMissingLast(ctx context.Context, convs []*models.Conversation, last map[int64]*cache.LastCacheMessage) error {
	missing := make([]int64, 0)
	for _, c := range convs {
		if _, ok := last[c.ID]; !ok && c.LastMessageID > 0 {
			missing = append(missing, c.LastMessageID)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	msgs, err := s.Messages.FindByIDs(ctx, missing)
	if err != nil {
		return err
	}
	for _, m := range msgs {
		last[m.ConversationID] = &cache.LastCacheMessage{
			MessageID: m.ID,
			SenderID:  m.SenderID,
			Content:   m.Content,
			Timestamp: m.CreatedAt.UnixMilli(),
		}
	}
	return nil
}
