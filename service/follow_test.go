package service

import (
	"context"
	"testing"
	"time"

	"Orbit/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowService() (*FollowService, *fakeUsers, *fakeFollows) {
	users := newFakeUsers(user(viewer, "viewer"), user(alice, "alice"), user(bob, "bob"), user(carol, "carol"))
	follows := newFakeFollows(users)
	return &FollowService{Follows: follows, Users: users}, users, follows
}

func TestFollow(t *testing.T) {
	svc, users, _ := newFollowService()
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, viewer, alice))

	ok, err := svc.IsFollowing(ctx, viewer, alice)
	require.NoError(t, err)
	assert.True(t, ok)

	// 冗余计数同步 +1
	a, _ := users.FindByID(ctx, alice)
	v, _ := users.FindByID(ctx, viewer)
	assert.Equal(t, int64(1), a.FollowersCount)
	assert.Equal(t, int64(1), v.FollowingCount)
}

func TestFollow_Errors(t *testing.T) {
	svc, _, _ := newFollowService()
	ctx := context.Background()

	err := svc.Follow(ctx, viewer, viewer)
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.Equal(t, errorx.Conflict, errorx.KindOf(err))

	err = svc.Follow(ctx, viewer, 404)
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, svc.Follow(ctx, viewer, alice))
	err = svc.Follow(ctx, viewer, alice)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)
	assert.Equal(t, errorx.Conflict, errorx.KindOf(err))
}

func TestFollow_DuplicateEdge(t *testing.T) {
	svc, users, follows := newFollowService()
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, viewer, alice))

	// 应用层检查放行, 唯一索引拦下第二次写入
	follows.staleCheck = true
	err := svc.Follow(ctx, viewer, alice)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)
	assert.Equal(t, errorx.Conflict, errorx.KindOf(err))

	a, _ := users.FindByID(ctx, alice)
	assert.Equal(t, int64(1), a.FollowersCount)
	assert.Len(t, follows.edges, 1)
}

func TestUnfollow(t *testing.T) {
	svc, users, _ := newFollowService()
	ctx := context.Background()

	err := svc.Unfollow(ctx, viewer, alice)
	assert.ErrorIs(t, err, ErrNotFollowing)
	assert.Equal(t, errorx.NotFound, errorx.KindOf(err))

	require.NoError(t, svc.Follow(ctx, viewer, alice))
	require.NoError(t, svc.Unfollow(ctx, viewer, alice))

	ok, err := svc.IsFollowing(ctx, viewer, alice)
	require.NoError(t, err)
	assert.False(t, ok)

	a, _ := users.FindByID(ctx, alice)
	assert.Equal(t, int64(0), a.FollowersCount)

	assert.ErrorIs(t, svc.Unfollow(ctx, viewer, alice), ErrNotFollowing)
}

func TestFollowStats_CountsEdges(t *testing.T) {
	svc, _, follows := newFollowService()
	follows.add(alice, viewer, base)
	follows.add(bob, viewer, base)
	follows.add(viewer, carol, base)

	stats, err := svc.FollowStats(context.Background(), viewer)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.FollowersCount)
	assert.Equal(t, int64(1), stats.FollowingCount)
}

func TestFollowersNewestFirst(t *testing.T) {
	svc, _, follows := newFollowService()
	follows.add(alice, viewer, base)
	follows.add(bob, viewer, base.Add(time.Minute))

	list, err := svc.Followers(context.Background(), viewer)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, bob, list[0].ID)
	assert.Equal(t, alice, list[1].ID)
	assert.Equal(t, base.Add(time.Minute), list[0].FollowedAt)

	following, err := svc.Following(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, viewer, following[0].ID)
}

func TestSuggestions(t *testing.T) {
	svc, _, follows := newFollowService()
	ctx := context.Background()

	res, err := svc.Suggestions(ctx, viewer)
	require.NoError(t, err)
	assert.Empty(t, res)

	follows.add(viewer, alice, base)
	follows.add(viewer, bob, base)
	follows.add(alice, carol, base)
	follows.add(bob, carol, base)
	// 已关注的人也会出现在推荐里, 不去重
	follows.add(alice, bob, base)
	// 与我无关的边
	follows.add(carol, alice, base)

	res, err = svc.Suggestions(ctx, viewer)
	require.NoError(t, err)
	require.Len(t, res, 3)

	var carolCount int
	for _, s := range res {
		assert.NotEqual(t, carol, s.Follower)
		if s.Following.ID == carol {
			carolCount++
			assert.Equal(t, "carol", s.Following.Username)
		}
	}
	assert.Equal(t, 2, carolCount)
}
