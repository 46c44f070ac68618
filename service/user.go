package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"Orbit/models"
	"Orbit/types"

	"gorm.io/gorm"
)

const searchLimit = 20

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	OtherUsers(ctx context.Context, userID int64) ([]*models.User, error)
	Search(ctx context.Context, keyword string) ([]*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*models.User, error)
}

type UserService struct {
	Users UserStore
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return findUser(ctx, s.Users, userID)
}

func (s *UserService) OtherUsers(ctx context.Context, userID int64) ([]*models.User, error) {
	return s.Users.ListExcept(ctx, userID)
}

func (s *UserService) Search(ctx context.Context, keyword string) ([]*models.User, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptySearch
	}
	return s.Users.Search(ctx, keyword, searchLimit)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*models.User, error) {
	if _, err := findUser(ctx, s.Users, userID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		taken, err := s.Users.IsUsernameTaken(ctx, username, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
		updates["username"] = username
	}
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.Users.Update(ctx, userID, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrUsernameTaken
			}
			return nil, err
		}
	}

	return findUser(ctx, s.Users, userID)
}

// findUser 未找到时返回 ErrUserNotFound
func findUser(ctx context.Context, users UserStore, id int64) (*models.User, error) {
	user, err := users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// userMap 批量取用户, 便于按 ID 填充作者信息
func userMap(ctx context.Context, users UserStore, ids []int64) (map[int64]*models.User, error) {
	list, err := users.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	m := make(map[int64]*models.User, len(list))
	for _, u := range list {
		m[u.ID] = u
	}
	return m, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
