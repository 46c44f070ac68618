package service

import (
	"context"
	"strconv"
	"time"

	"Orbit/models"
	"Orbit/pkg/cursor"
	"Orbit/types"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	FollowingFeed(ctx context.Context, viewerID int64, token string, limit int) (*types.FeedPage, error)
	GlobalFeed(ctx context.Context, q *types.FeedQuery) (*types.FeedPage, error)
}

// FeedService 关注流与全站流.
// 都按多取一条(limit+1)判断是否还有下一页, 多出的那条不返回.
type FeedService struct {
	Follows FollowStore
	Posts   PostStore
	Users   UserStore
	Codec   *cursor.Codec
}

// FollowingFeed 只包含 viewer 关注的人的帖子, 按 (created_at DESC, id DESC) 排序.
// nextCursor 只在 hasMore 时返回, 由本页最后一条的 (created_at, id) 编码.
func (s *FeedService) FollowingFeed(ctx context.Context, viewerID int64, token string, limit int) (*types.FeedPage, error) {
	limit = types.NormalizeLimit(limit)

	var (
		before   *time.Time
		beforeID int64
	)
	if token != "" {
		key, err := s.Codec.DecodeKey(token)
		if err != nil {
			return nil, err
		}
		t := time.UnixMilli(key.CreatedAt)
		before, beforeID = &t, key.ID
	}

	following, err := s.Follows.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(following) == 0 {
		return emptyPage(), nil
	}

	posts, err := s.Posts.ListByAuthorsBefore(ctx, following, before, beforeID, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(posts) > limit
	if hasMore {
		posts = posts[:limit]
	}

	items, err := hydratePosts(ctx, s.Users, s.Posts, posts)
	if err != nil {
		return nil, err
	}

	page := &types.FeedPage{Posts: items, HasMore: hasMore}
	if hasMore {
		last := posts[limit-1]
		next, err := s.Codec.EncodeKey(cursor.Key{CreatedAt: last.CreatedAt.UnixMilli(), ID: last.ID})
		if err != nil {
			return nil, err
		}
		page.NextCursor = &next
	}
	return page, nil
}

// GlobalFeed 全站帖子按 id 倒序(id 内嵌创建时间).
// SinceID 为下拉刷新, 只返回比它新的帖子, 优先于 Cursor.
// nextCursor 为本页最后一条, firstPostId 为本页第一条.
func (s *FeedService) GlobalFeed(ctx context.Context, q *types.FeedQuery) (*types.FeedPage, error) {
	limit := types.NormalizeLimit(q.Limit)

	var (
		posts []*models.Post
		err   error
	)
	switch {
	case q.SinceID > 0:
		posts, err = s.Posts.ListAfterID(ctx, q.SinceID, limit+1)
	case q.Cursor != "":
		var beforeID int64
		beforeID, err = s.Codec.DecodeID(q.Cursor)
		if err != nil {
			return nil, err
		}
		posts, err = s.Posts.ListBeforeID(ctx, beforeID, limit+1)
	default:
		posts, err = s.Posts.ListBeforeID(ctx, 0, limit+1)
	}
	if err != nil {
		return nil, err
	}

	hasMore := len(posts) > limit
	if hasMore {
		posts = posts[:limit]
	}

	items, err := hydratePosts(ctx, s.Users, s.Posts, posts)
	if err != nil {
		return nil, err
	}

	page := &types.FeedPage{Posts: items, HasMore: hasMore}
	if len(posts) > 0 {
		next, err := s.Codec.EncodeID(posts[len(posts)-1].ID)
		if err != nil {
			return nil, err
		}
		first := strconv.FormatInt(posts[0].ID, 10)
		page.NextCursor, page.FirstPostID = &next, &first
	}
	return page, nil
}

func emptyPage() *types.FeedPage {
	return &types.FeedPage{Posts: []*types.FeedItem{}, HasMore: false}
}

// hydratePosts 填充作者信息与点赞/评论数, 保持入参顺序
func hydratePosts(ctx context.Context, users UserStore, store PostStore, posts []*models.Post) ([]*types.FeedItem, error) {
	items := make([]*types.FeedItem, 0, len(posts))
	if len(posts) == 0 {
		return items, nil
	}

	authorIDs := make([]int64, 0, len(posts))
	postIDs := make([]int64, 0, len(posts))
	for _, p := range posts {
		authorIDs = append(authorIDs, p.AuthorID)
		postIDs = append(postIDs, p.ID)
	}

	authors, err := userMap(ctx, users, authorIDs)
	if err != nil {
		return nil, err
	}
	likes, err := store.LikeCounts(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	comments, err := store.CommentCounts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	for _, p := range posts {
		items = append(items, &types.FeedItem{
			ID:           p.ID,
			Author:       types.NewUserSummary(authors[p.AuthorID]),
			ImageURL:     p.ImageURL,
			MediaType:    p.MediaType,
			Caption:      p.Caption,
			LikeCount:    likes[p.ID],
			CommentCount: comments[p.ID],
			CreatedAt:    p.CreatedAt,
		})
	}
	return items, nil
}
