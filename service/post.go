package service

import (
	"context"
	"errors"
	"strings"

	"Orbit/models"
	"Orbit/pkg/snowflake"
	"Orbit/types"

	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Create(ctx context.Context, authorID int64, req *types.CreatePostRequest) (*types.FeedItem, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*types.FeedItem, error)
	Like(ctx context.Context, userID, postID int64) (bool, error)
	Comment(ctx context.Context, userID, postID int64, text string) (*types.CommentItem, error)
	Comments(ctx context.Context, postID int64) ([]*types.CommentItem, error)
}

type PostService struct {
	Posts PostStore
	Users UserStore
}

func (s *PostService) Create(ctx context.Context, authorID int64, req *types.CreatePostRequest) (*types.FeedItem, error) {
	author, err := findUser(ctx, s.Users, authorID)
	if err != nil {
		return nil, err
	}

	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = models.MediaTypeImage
	}

	id := snowflake.GenID()
	post := &models.Post{
		ID:        id,
		AuthorID:  authorID,
		ImageURL:  strings.TrimSpace(req.ImageURL),
		MediaType: mediaType,
		Caption:   req.Caption,
		// 与 id 内嵌的毫秒时间一致, 两种排序方式结果相同
		CreatedAt: snowflake.Time(id),
	}
	if err := s.Posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return &types.FeedItem{
		ID:        post.ID,
		Author:    types.NewUserSummary(author),
		ImageURL:  post.ImageURL,
		MediaType: post.MediaType,
		Caption:   post.Caption,
		CreatedAt: post.CreatedAt,
	}, nil
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID int64) ([]*types.FeedItem, error) {
	if _, err := findUser(ctx, s.Users, authorID); err != nil {
		return nil, err
	}
	posts, err := s.Posts.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return hydratePosts(ctx, s.Users, s.Posts, posts)
}

// Like 重复点赞不报错, 返回是否新增
func (s *PostService) Like(ctx context.Context, userID, postID int64) (bool, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return false, err
	}
	id := snowflake.GenID()
	return s.Posts.Like(ctx, &models.PostLike{
		ID:        id,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: snowflake.Time(id),
	})
}

func (s *PostService) Comment(ctx context.Context, userID, postID int64, text string) (*types.CommentItem, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	user, err := findUser(ctx, s.Users, userID)
	if err != nil {
		return nil, err
	}

	id := snowflake.GenID()
	comment := &models.PostComment{
		ID:        id,
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: snowflake.Time(id),
	}
	if err := s.Posts.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return &types.CommentItem{
		ID:        comment.ID,
		User:      types.NewUserSummary(user),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *PostService) Comments(ctx context.Context, postID int64) ([]*types.CommentItem, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.Posts.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}
	users, err := userMap(ctx, s.Users, userIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.CommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, &types.CommentItem{
			ID:        c.ID,
			User:      types.NewUserSummary(users[c.UserID]),
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}
	return items, nil
}

func (s *PostService) ensurePost(ctx context.Context, postID int64) error {
	_, err := s.Posts.FindByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	return err
}
