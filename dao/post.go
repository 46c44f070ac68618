package dao

import (
	"context"
	"errors"
	"time"

	"Orbit/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{
		Repo: NewRepo[models.Post](db),
	}
}

func (d *PostDAO) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	return d.Repo.FindById(ctx, id)
}

// ListByAuthor 某人的全部帖子, 新的在前
func (d *PostDAO) ListByAuthor(ctx context.Context, authorID int64) ([]*models.Post, error) {
	posts := make([]*models.Post, 0)
	err := d.Db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

// ListByAuthorsBefore 关注流: authorIDs 的帖子按 (created_at DESC, id DESC),
// before 不为空时只取严格排在它之后的记录
func (d *PostDAO) ListByAuthorsBefore(ctx context.Context, authorIDs []int64, before *time.Time, beforeID int64, limit int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, limit)
	if len(authorIDs) == 0 {
		return posts, nil
	}

	query := d.Db.WithContext(ctx).Where("author_id IN ?", authorIDs)
	if before != nil {
		query = query.Where("(created_at < ? OR (created_at = ? AND id < ?))", *before, *before, beforeID)
	}

	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// ListBeforeID 全站流: id 倒序, beforeID 为 0 时从最新开始
func (d *PostDAO) ListBeforeID(ctx context.Context, beforeID int64, limit int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, limit)
	query := d.Db.WithContext(ctx)
	if beforeID > 0 {
		query = query.Where("id < ?", beforeID)
	}
	err := query.Order("id DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// ListAfterID 下拉刷新: 严格新于 sinceID 的帖子, 新的在前
func (d *PostDAO) ListAfterID(ctx context.Context, sinceID int64, limit int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, limit)
	err := d.Db.WithContext(ctx).
		Where("id > ?", sinceID).
		Order("id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

type postCount struct {
	PostID int64 `gorm:"column:post_id"`
	Total  int64 `gorm:"column:total"`
}

func (d *PostDAO) LikeCounts(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	return d.countBy(ctx, &models.PostLike{}, postIDs)
}

func (d *PostDAO) CommentCounts(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	return d.countBy(ctx, &models.PostComment{}, postIDs)
}

func (d *PostDAO) countBy(ctx context.Context, model any, postIDs []int64) (map[int64]int64, error) {
	res := make(map[int64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return res, nil
	}

	var rows []postCount
	err := d.Db.WithContext(ctx).
		Model(model).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		res[r.PostID] = r.Total
	}
	return res, nil
}

// Like 点赞, 重复点赞幂等. 返回是否新增
func (d *PostDAO) Like(ctx context.Context, like *models.PostLike) (bool, error) {
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *PostDAO) AddComment(ctx context.Context, comment *models.PostComment) error {
	return d.Db.WithContext(ctx).Create(comment).Error
}

// ListComments 评论按时间正序
func (d *PostDAO) ListComments(ctx context.Context, postID int64) ([]*models.PostComment, error) {
	comments := make([]*models.PostComment, 0)
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}
