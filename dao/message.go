package dao

import (
	"context"
	"time"

	"Orbit/models"

	"gorm.io/gorm"
)

type MessageDAO struct {
	db            *gorm.DB
	Conversations *ConversationDAO
}

func NewMessageDAO(db *gorm.DB, conversations *ConversationDAO) *MessageDAO {
	return &MessageDAO{db: db, Conversations: conversations}
}

// Append 在一个事务里: 确保会话存在, 追加消息, 推进会话的 last_message_id
func (d *MessageDAO) Append(ctx context.Context, msg *models.Message) (*models.Conversation, error) {
	var conv *models.Conversation
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		conv, err = d.Conversations.WithDB(tx).Ensure(ctx, msg.SenderID, msg.ReceiverID)
		if err != nil {
			return err
		}

		msg.ConversationID = conv.ID
		if err := tx.Create(msg).Error; err != nil {
			return err
		}

		conv.LastMessageID = msg.ID
		conv.UpdatedAt = time.Now()
		return tx.Model(&models.Conversation{}).
			Where("id = ?", conv.ID).
			Updates(map[string]any{
				"last_message_id": conv.LastMessageID,
				"updated_at":      conv.UpdatedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// ListByConversation 会话全部消息, 按发送顺序
func (d *MessageDAO) ListByConversation(ctx context.Context, conversationID int64) ([]*models.Message, error) {
	msgs := make([]*models.Message, 0)
	err := d.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("id ASC").
		Find(&msgs).Error
	return msgs, err
}

func (d *MessageDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Message, error) {
	msgs := make([]*models.Message, 0, len(ids))
	if len(ids) == 0 {
		return msgs, nil
	}
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&msgs).Error
	return msgs, err
}
