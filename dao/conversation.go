package dao

import (
	"context"
	"errors"
	"time"

	"Orbit/models"
	"Orbit/pkg/snowflake"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationDAO struct {
	db *gorm.DB
}

func NewConversationDAO(db *gorm.DB) *ConversationDAO {
	return &ConversationDAO{db: db}
}

func (d *ConversationDAO) WithDB(db *gorm.DB) *ConversationDAO {
	nd := *d
	nd.db = db
	return &nd
}

// orderPair 会话参与者无序, 统一成 (小, 大)
func orderPair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}

// FindByPair 不存在时返回 nil, nil
func (d *ConversationDAO) FindByPair(ctx context.Context, a, b int64) (*models.Conversation, error) {
	low, high := orderPair(a, b)

	var conv models.Conversation
	err := d.db.WithContext(ctx).
		Where("user_low = ? AND user_high = ?", low, high).
		First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// Ensure 确保两人会话存在（幂等）, 依赖唯一索引 uk_pair(user_low, user_high)
func (d *ConversationDAO) Ensure(ctx context.Context, a, b int64) (*models.Conversation, error) {
	low, high := orderPair(a, b)
	now := time.Now()

	conv := &models.Conversation{
		ID:        snowflake.GenID(),
		UserLow:   low,
		UserHigh:  high,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 幂等插入：已存在就不插
	res := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(conv)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return conv, nil
	}

	var existing models.Conversation
	if err := d.db.WithContext(ctx).
		Where("user_low = ? AND user_high = ?", low, high).
		First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// ListByUser 我参与的会话, 最近活跃的在前
func (d *ConversationDAO) ListByUser(ctx context.Context, uid int64) ([]*models.Conversation, error) {
	convs := make([]*models.Conversation, 0)
	err := d.db.WithContext(ctx).
		Where("user_low = ? OR user_high = ?", uid, uid).
		Order("updated_at DESC").
		Find(&convs).Error
	return convs, err
}
