package types

import "time"

type CreateStoryRequest struct {
	ImageURL string `json:"imageUrl" binding:"required,max=512"`
	Caption  string `json:"caption" binding:"required,max=512"`
}

type StoryItem struct {
	ID        int64       `json:"_id,string"`
	User      UserSummary `json:"user"`
	ImageURL  string      `json:"imageUrl"`
	Caption   string      `json:"caption"`
	Viewers   []string    `json:"viewers"`
	Viewed    bool        `json:"viewed"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
