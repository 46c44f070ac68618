package models

import "time"

// StoryTTL 快拍有效期
const StoryTTL = 24 * time.Hour

type Story struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_user_created,priority:1" json:"userId,string"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(512);not null" json:"imageUrl"`
	Caption   string    `gorm:"column:caption;type:varchar(512);not null;default:''" json:"caption"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime(3);not null;index:idx_user_created,priority:2;index:idx_created" json:"createdAt"`
}

func (Story) TableName() string {
	return "stories"
}

type StoryView struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	StoryID   int64     `gorm:"column:story_id;not null;uniqueIndex:uk_story_viewer,priority:1" json:"storyId,string"`
	ViewerID  int64     `gorm:"column:viewer_id;not null;uniqueIndex:uk_story_viewer,priority:2" json:"viewerId,string"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

func (StoryView) TableName() string {
	return "story_views"
}
