package types

import "time"

const (
	DefaultFeedLimit = 3
	MaxFeedLimit     = 50
)

type CreatePostRequest struct {
	ImageURL  string `json:"imageUrl" binding:"required,max=512"`
	Caption   string `json:"caption" binding:"required,max=2200"`
	MediaType string `json:"mediaType" binding:"omitempty,oneof=image video"`
}

// FeedQuery sinceId 与 cursor 同时存在时以 sinceId 为准
type FeedQuery struct {
	Cursor  string `form:"cursor"`
	SinceID int64  `form:"sinceId"`
	Limit   int    `form:"limit"`
}

// NormalizeLimit 缺省 3, 最大 50
func NormalizeLimit(limit int) int {
	if limit < 1 {
		return DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		return MaxFeedLimit
	}
	return limit
}

type FeedItem struct {
	ID           int64       `json:"_id,string"`
	Author       UserSummary `json:"author"`
	ImageURL     string      `json:"imageUrl"`
	MediaType    string      `json:"mediaType"`
	Caption      string      `json:"caption"`
	LikeCount    int64       `json:"likeCount"`
	CommentCount int64       `json:"commentCount"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type FeedPage struct {
	Posts       []*FeedItem `json:"posts"`
	NextCursor  *string     `json:"nextCursor"`
	HasMore     bool        `json:"hasMore"`
	FirstPostID *string     `json:"firstPostId,omitempty"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

type CommentItem struct {
	ID        int64       `json:"_id,string"`
	User      UserSummary `json:"user"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"createdAt"`
}
