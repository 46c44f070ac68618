package dao

import (
	"context"
	"fmt"

	"Orbit/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

func (u *Users) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return u.Repo.FindById(ctx, id)
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsUsernameTaken 用户名是否被 exceptID 以外的用户占用
func (u *Users) IsUsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ? AND id <> ?", username, exceptID)
}

func (u *Users) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ?", email)
}

func (u *Users) FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	var users []*models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// ListExcept 除自己以外的所有用户
func (u *Users) ListExcept(ctx context.Context, id int64) ([]*models.User, error) {
	var users []*models.User
	err := u.Db.WithContext(ctx).
		Where("id <> ?", id).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// Search 用户名或全名模糊匹配(大小写不敏感依赖库的 collation)
func (u *Users) Search(ctx context.Context, keyword string, limit int) ([]*models.User, error) {
	var users []*models.User
	like := "%" + escapeLike(keyword) + "%"
	err := u.Db.WithContext(ctx).
		Where("username LIKE ? OR full_name LIKE ?", like, like).
		Order("followers_count DESC, id DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (u *Users) Update(ctx context.Context, userID int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	err := u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error

	if err != nil {
		return fmt.Errorf("dao.User.Update error: %w", err)
	}

	return nil
}
