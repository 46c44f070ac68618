package dao

import (
	"context"
	"time"

	"Orbit/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoryDAO struct {
	Repo[models.Story]
}

func NewStoryDAO(db *gorm.DB) *StoryDAO {
	return &StoryDAO{
		Repo: NewRepo[models.Story](db),
	}
}

// ListActive userIDs 在 since 之后发布的快拍, 新的在前
func (d *StoryDAO) ListActive(ctx context.Context, userIDs []int64, since time.Time) ([]*models.Story, error) {
	stories := make([]*models.Story, 0)
	if len(userIDs) == 0 {
		return stories, nil
	}
	err := d.Db.WithContext(ctx).
		Where("user_id IN ? AND created_at > ?", userIDs, since).
		Order("created_at DESC, id DESC").
		Find(&stories).Error
	return stories, err
}

func (d *StoryDAO) FindByID(ctx context.Context, id int64) (*models.Story, error) {
	return d.Repo.FindById(ctx, id)
}

// AddView 记录浏览, 同一用户重复浏览只记一次
func (d *StoryDAO) AddView(ctx context.Context, view *models.StoryView) error {
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(view).Error
}

// ViewerIDs 每条快拍的浏览者
func (d *StoryDAO) ViewerIDs(ctx context.Context, storyIDs []int64) (map[int64][]int64, error) {
	res := make(map[int64][]int64, len(storyIDs))
	if len(storyIDs) == 0 {
		return res, nil
	}

	var views []models.StoryView
	err := d.Db.WithContext(ctx).
		Select("story_id, viewer_id").
		Where("story_id IN ?", storyIDs).
		Order("id ASC").
		Find(&views).Error
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		res[v.StoryID] = append(res[v.StoryID], v.ViewerID)
	}
	return res, nil
}

// DeleteExpired 删除 before 之前发布的快拍及其浏览记录
func (d *StoryDAO) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	var deleted int64
	err := d.Txx(ctx, func(tx *gorm.DB) error {
		expired := tx.Model(&models.Story{}).Select("id").Where("created_at <= ?", before)
		if err := tx.Where("story_id IN (?)", expired).Delete(&models.StoryView{}).Error; err != nil {
			return err
		}
		res := tx.Where("created_at <= ?", before).Delete(&models.Story{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}
