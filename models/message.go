package models

import (
	"time"

	"gorm.io/datatypes"
)

// Conversation 两人会话, 参与者按 (user_low, user_high) 归一化存储
type Conversation struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	UserLow       int64     `gorm:"column:user_low;not null;uniqueIndex:uk_pair,priority:1" json:"-"`
	UserHigh      int64     `gorm:"column:user_high;not null;uniqueIndex:uk_pair,priority:2;index:idx_high" json:"-"`
	LastMessageID int64     `gorm:"column:last_message_id;not null;default:0" json:"lastMessageId,string"`
	CreatedAt     time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// Participants 返回会话双方
func (c *Conversation) Participants() [2]int64 {
	return [2]int64{c.UserLow, c.UserHigh}
}

// Peer 返回 uid 的对端
func (c *Conversation) Peer(uid int64) int64 {
	if c.UserLow == uid {
		return c.UserHigh
	}
	return c.UserLow
}

// Message 只追加, 会话内按 id 升序即发送顺序
type Message struct {
	ID             int64          `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	ConversationID int64          `gorm:"column:conversation_id;not null;index:idx_conversation_id,priority:1" json:"conversationId,string"`
	SenderID       int64          `gorm:"column:sender_id;not null" json:"senderId,string"`
	ReceiverID     int64          `gorm:"column:receiver_id;not null" json:"receiverId,string"`
	Content        string         `gorm:"column:content;type:text;not null" json:"content"`
	Ext            datatypes.JSON `gorm:"column:ext" json:"ext,omitempty"` // 扩展字段
	CreatedAt      time.Time      `gorm:"column:created_at;type:datetime(3);not null" json:"createdAt"`
}

// TableName 指定表名
func (Message) TableName() string {
	return "messages"
}
