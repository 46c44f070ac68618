package models

import (
	"time"
)

// UserFollow 关注边, (follower_id, following_id) 唯一
type UserFollow struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	FollowerID  int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follow,priority:1;index:idx_follower_created,priority:1" json:"followerId,string"` // 关注人
	FollowingID int64     `gorm:"column:following_id;not null;uniqueIndex:uk_follow,priority:2;index:idx_following_created,priority:1" json:"followingId,string"` // 被关注人
	CreatedAt   time.Time `gorm:"column:created_at;not null;index:idx_follower_created,priority:2;index:idx_following_created,priority:2" json:"createdAt"`
}

func (UserFollow) TableName() string {
	return "user_follow"
}

// FollowProfile 关注列表中的一行: 对方资料 + 关注时间
type FollowProfile struct {
	ID           int64     `gorm:"column:id" json:"_id,string"`
	Username     string    `gorm:"column:username" json:"username"`
	FullName     string    `gorm:"column:full_name" json:"fullName"`
	ProfileImage string    `gorm:"column:profile_image" json:"profileImage"`
	Bio          string    `gorm:"column:bio" json:"bio"`
	FollowedAt   time.Time `gorm:"column:followed_at" json:"followedAt"`
}

// SuggestedEdge 二度关系中的一条边: follower 是我关注的人, following 是被推荐的人
type SuggestedEdge struct {
	EdgeID       int64     `gorm:"column:edge_id" json:"_id,string"`
	FollowerID   int64     `gorm:"column:follower_id" json:"follower,string"`
	FollowingID  int64     `gorm:"column:following_id" json:"-"`
	Username     string    `gorm:"column:username" json:"-"`
	FullName     string    `gorm:"column:full_name" json:"-"`
	ProfileImage string    `gorm:"column:profile_image" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
}
