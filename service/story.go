package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"Orbit/models"
	"Orbit/pkg/snowflake"
	"Orbit/types"

	"gorm.io/gorm"
)

var _ IStoryService = (*StoryService)(nil)

type IStoryService interface {
	Create(ctx context.Context, userID int64, req *types.CreateStoryRequest) (*types.StoryItem, error)
	ListFor(ctx context.Context, viewerID int64) ([]*types.StoryItem, error)
	View(ctx context.Context, viewerID, storyID int64) error
	CleanExpired(ctx context.Context, now time.Time) (int64, error)
}

type StoryService struct {
	Stories StoryStore
	Follows FollowStore
	Users   UserStore
}

func (s *StoryService) Create(ctx context.Context, userID int64, req *types.CreateStoryRequest) (*types.StoryItem, error) {
	user, err := findUser(ctx, s.Users, userID)
	if err != nil {
		return nil, err
	}

	id := snowflake.GenID()
	story := &models.Story{
		ID:        id,
		UserID:    userID,
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		CreatedAt: snowflake.Time(id),
	}
	if err := s.Stories.Create(ctx, story); err != nil {
		return nil, err
	}
	return newStoryItem(story, user, nil, userID), nil
}

// ListFor 自己和关注的人 24 小时内的快拍, 自己的排在最前, 其余按发布时间倒序
func (s *StoryService) ListFor(ctx context.Context, viewerID int64) ([]*types.StoryItem, error) {
	following, err := s.Follows.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	owners := append([]int64{viewerID}, following...)
	stories, err := s.Stories.ListActive(ctx, owners, time.Now().Add(-models.StoryTTL))
	if err != nil {
		return nil, err
	}
	if len(stories) == 0 {
		return []*types.StoryItem{}, nil
	}

	sort.SliceStable(stories, func(i, j int) bool {
		mi, mj := stories[i].UserID == viewerID, stories[j].UserID == viewerID
		if mi != mj {
			return mi
		}
		if !stories[i].CreatedAt.Equal(stories[j].CreatedAt) {
			return stories[i].CreatedAt.After(stories[j].CreatedAt)
		}
		return stories[i].ID > stories[j].ID
	})

	storyIDs := make([]int64, 0, len(stories))
	userIDs := make([]int64, 0, len(stories))
	for _, st := range stories {
		storyIDs = append(storyIDs, st.ID)
		userIDs = append(userIDs, st.UserID)
	}

	users, err := userMap(ctx, s.Users, userIDs)
	if err != nil {
		return nil, err
	}
	viewers, err := s.Stories.ViewerIDs(ctx, storyIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.StoryItem, 0, len(stories))
	for _, st := range stories {
		items = append(items, newStoryItem(st, users[st.UserID], viewers[st.ID], viewerID))
	}
	return items, nil
}

func (s *StoryService) View(ctx context.Context, viewerID, storyID int64) error {
	story, err := s.Stories.FindByID(ctx, storyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStoryNotFound
	}
	if err != nil {
		return err
	}
	if time.Since(story.CreatedAt) >= models.StoryTTL {
		return ErrStoryNotFound
	}

	id := snowflake.GenID()
	return s.Stories.AddView(ctx, &models.StoryView{
		ID:        id,
		StoryID:   storyID,
		ViewerID:  viewerID,
		CreatedAt: snowflake.Time(id),
	})
}

// CleanExpired 删除超过有效期的快拍
func (s *StoryService) CleanExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.Stories.DeleteExpired(ctx, now.Add(-models.StoryTTL))
}

func newStoryItem(st *models.Story, owner *models.User, viewerIDs []int64, viewerID int64) *types.StoryItem {
	viewers := make([]string, 0, len(viewerIDs))
	viewed := false
	for _, id := range viewerIDs {
		viewers = append(viewers, strconv.FormatInt(id, 10))
		if id == viewerID {
			viewed = true
		}
	}
	return &types.StoryItem{
		ID:        st.ID,
		User:      types.NewUserSummary(owner),
		ImageURL:  st.ImageURL,
		Caption:   st.Caption,
		Viewers:   viewers,
		Viewed:    viewed,
		CreatedAt: st.CreatedAt,
		ExpiresAt: st.CreatedAt.Add(models.StoryTTL),
	}
}
