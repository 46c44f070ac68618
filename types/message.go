package types

import (
	"time"

	"Orbit/models"
)

type SendMessageRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
}

type ConversationView struct {
	Messages []*models.Message `json:"messages"`
}

type LastMessage struct {
	ID       int64     `json:"_id,string"`
	SenderID int64     `json:"senderId,string"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sentAt"`
}

type ConversationItem struct {
	ID          int64        `json:"_id,string"`
	Peer        UserSummary  `json:"peer"`
	LastMessage *LastMessage `json:"lastMessage"`
	Unread      int64        `json:"unread"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
