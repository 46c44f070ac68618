package service

import (
	"context"
	"errors"
	"time"

	"Orbit/models"
	"Orbit/pkg/snowflake"
	"Orbit/types"

	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	FollowingIDs(ctx context.Context, userID int64) ([]int64, error)
	Followers(ctx context.Context, userID int64) ([]*models.FollowProfile, error)
	Following(ctx context.Context, userID int64) ([]*models.FollowProfile, error)
	FollowStats(ctx context.Context, userID int64) (*types.FollowStats, error)
	Suggestions(ctx context.Context, viewerID int64) ([]*types.Suggestion, error)
}

type FollowService struct {
	Follows FollowStore
	Users   UserStore
}

func (s *FollowService) Follow(ctx context.Context, followerID, followingID int64) error {
	// 不能关注自己
	if followerID == followingID {
		return ErrSelfFollow
	}

	// 校验被关注用户是否存在
	if _, err := findUser(ctx, s.Users, followingID); err != nil {
		return err
	}

	isFollowing, err := s.Follows.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if isFollowing {
		return ErrAlreadyFollowing
	}

	err = s.Follows.CreateEdge(ctx, &models.UserFollow{
		ID:          snowflake.GenID(),
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	})
	// 并发关注时唯一索引兜底
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyFollowing
	}
	return err
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	deleted, err := s.Follows.DeleteEdge(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFollowing
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return s.Follows.IsFollowing(ctx, followerID, followingID)
}

func (s *FollowService) FollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.Follows.FollowingIDs(ctx, userID)
}

func (s *FollowService) Followers(ctx context.Context, userID int64) ([]*models.FollowProfile, error) {
	return s.Follows.Followers(ctx, userID)
}

func (s *FollowService) Following(ctx context.Context, userID int64) ([]*models.FollowProfile, error) {
	return s.Follows.Following(ctx, userID)
}

// FollowStats 实时统计关注边, 不读冗余计数
func (s *FollowService) FollowStats(ctx context.Context, userID int64) (*types.FollowStats, error) {
	stats := &types.FollowStats{}

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		n, err := s.Follows.CountFollowers(ctx, userID)
		stats.FollowersCount = n
		return err
	})
	p.Go(func(ctx context.Context) error {
		n, err := s.Follows.CountFollowing(ctx, userID)
		stats.FollowingCount = n
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// Suggestions 我关注的人发出的所有关注边(二度关系), 不去重也不排除已关注的人
func (s *FollowService) Suggestions(ctx context.Context, viewerID int64) ([]*types.Suggestion, error) {
	following, err := s.Follows.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(following) == 0 {
		return []*types.Suggestion{}, nil
	}

	edges, err := s.Follows.EdgesFrom(ctx, following, viewerID)
	if err != nil {
		return nil, err
	}

	res := make([]*types.Suggestion, 0, len(edges))
	for _, e := range edges {
		res = append(res, &types.Suggestion{
			ID:       e.EdgeID,
			Follower: e.FollowerID,
			Following: types.UserSummary{
				ID:           e.FollowingID,
				Username:     e.Username,
				FullName:     e.FullName,
				ProfileImage: e.ProfileImage,
			},
			CreatedAt: e.CreatedAt,
		})
	}
	return res, nil
}
