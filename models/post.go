package models

import "time"

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Post created_at 精确到毫秒, 与 id 组成 feed 的排序键
type Post struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false;index:idx_created_id,priority:2,sort:desc" json:"id,string"`
	AuthorID  int64     `gorm:"column:author_id;not null;index:idx_author_created,priority:1" json:"authorId,string"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(512);not null" json:"imageUrl"`
	MediaType string    `gorm:"column:media_type;type:varchar(16);not null;default:image" json:"mediaType"`
	Caption   string    `gorm:"column:caption;type:varchar(2200);not null;default:''" json:"caption"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime(3);not null;index:idx_created_id,priority:1,sort:desc;index:idx_author_created,priority:2" json:"createdAt"`
}

func (Post) TableName() string {
	return "posts"
}

type PostLike struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uk_post_user,priority:1" json:"postId,string"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_post_user,priority:2" json:"userId,string"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

type PostComment struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	PostID    int64     `gorm:"column:post_id;not null;index:idx_post_created,priority:1" json:"postId,string"`
	UserID    int64     `gorm:"column:user_id;not null" json:"userId,string"`
	Text      string    `gorm:"column:text;type:varchar(1000);not null" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime(3);not null;index:idx_post_created,priority:2" json:"createdAt"`
}

func (PostComment) TableName() string {
	return "post_comments"
}
