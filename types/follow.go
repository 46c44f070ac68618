package types

import "time"

type FollowStats struct {
	FollowersCount int64 `json:"followersCount"`
	FollowingCount int64 `json:"followingCount"`
}

// Suggestion 我关注的人(Follower)关注了谁(Following)
type Suggestion struct {
	ID        int64       `json:"_id,string"`
	Follower  int64       `json:"follower,string"`
	Following UserSummary `json:"following"`
	CreatedAt time.Time   `json:"createdAt"`
}
