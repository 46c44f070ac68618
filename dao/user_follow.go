package dao

import (
	"context"

	"Orbit/models"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return d.Repo.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// CreateEdge 写入关注边并在同一事务中给双方计数 +1.
// 边已存在时返回 gorm.ErrDuplicatedKey(唯一索引 uk_follow).
func (d *UserFollowDAO) CreateEdge(ctx context.Context, edge *models.UserFollow) error {
	return d.Txx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(edge).Error; err != nil {
			return err
		}
		if err := incrCounter(tx, edge.FollowingID, "followers_count", 1); err != nil {
			return err
		}
		return incrCounter(tx, edge.FollowerID, "following_count", 1)
	})
}

// DeleteEdge 删除关注边, 返回是否真的删除了一条.
// 计数减一时不低于 0.
func (d *UserFollowDAO) DeleteEdge(ctx context.Context, followerID, followingID int64) (bool, error) {
	var deleted bool
	err := d.Txx(ctx, func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.UserFollow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true

		if err := incrCounter(tx, followingID, "followers_count", -1); err != nil {
			return err
		}
		return incrCounter(tx, followerID, "following_count", -1)
	})
	return deleted, err
}

func incrCounter(tx *gorm.DB, userID int64, column string, delta int) error {
	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn(column, gorm.Expr("GREATEST("+column+" + ?, 0)", delta)).Error
}

// FollowingIDs 我关注的人
func (d *UserFollowDAO) FollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}

// Followers 粉丝列表, 按关注时间倒序
func (d *UserFollowDAO) Followers(ctx context.Context, userID int64) ([]*models.FollowProfile, error) {
	return d.profiles(ctx, "uf.follower_id", "uf.following_id = ?", userID)
}

// Following 关注列表, 按关注时间倒序
func (d *UserFollowDAO) Following(ctx context.Context, userID int64) ([]*models.FollowProfile, error) {
	return d.profiles(ctx, "uf.following_id", "uf.follower_id = ?", userID)
}

func (d *UserFollowDAO) profiles(ctx context.Context, joinCol, where string, userID int64) ([]*models.FollowProfile, error) {
	rows := make([]*models.FollowProfile, 0)
	err := d.Db.WithContext(ctx).
		Table("user_follow uf").
		Select("u.id, u.username, u.full_name, u.profile_image, u.bio, uf.created_at AS followed_at").
		Joins("JOIN users u ON u.id = "+joinCol).
		Where(where, userID).
		Order("uf.created_at DESC, uf.id DESC").
		Scan(&rows).Error
	return rows, err
}

// CountFollowers 获取粉丝数
func (d *UserFollowDAO) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountFollowing 获取关注数
func (d *UserFollowDAO) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

// EdgesFrom followerIDs 发出的所有关注边, 排除 excludeFollower 发出的, 附带被关注人资料
func (d *UserFollowDAO) EdgesFrom(ctx context.Context, followerIDs []int64, excludeFollower int64) ([]*models.SuggestedEdge, error) {
	rows := make([]*models.SuggestedEdge, 0)
	if len(followerIDs) == 0 {
		return rows, nil
	}
	err := d.Db.WithContext(ctx).
		Table("user_follow uf").
		Select("uf.id AS edge_id, uf.follower_id, uf.following_id, u.username, u.full_name, u.profile_image, uf.created_at").
		Joins("JOIN users u ON u.id = uf.following_id").
		Where("uf.follower_id IN ? AND uf.follower_id <> ?", followerIDs, excludeFollower).
		Order("uf.created_at DESC, uf.id DESC").
		Scan(&rows).Error
	return rows, err
}
