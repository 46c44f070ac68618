package service

import (
	"context"
	"time"

	"Orbit/dao/cache"
	"Orbit/models"
)

// 服务依赖的存储接口, 由 dao / dao/cache 实现, 测试中替换为内存实现

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	IsUsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error)
	ListExcept(ctx context.Context, id int64) ([]*models.User, error)
	Search(ctx context.Context, keyword string, limit int) ([]*models.User, error)
	Update(ctx context.Context, userID int64, updates map[string]interface{}) error
}

type FollowStore interface {
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	CreateEdge(ctx context.Context, edge *models.UserFollow) error
	DeleteEdge(ctx context.Context, followerID, followingID int64) (bool, error)
	FollowingIDs(ctx context.Context, userID int64) ([]int64, error)
	Followers(ctx context.Context, userID int64) ([]*models.FollowProfile, error)
	Following(ctx context.Context, userID int64) ([]*models.FollowProfile, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)
	EdgesFrom(ctx context.Context, followerIDs []int64, excludeFollower int64) ([]*models.SuggestedEdge, error)
}

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*models.Post, error)
	ListByAuthorsBefore(ctx context.Context, authorIDs []int64, before *time.Time, beforeID int64, limit int) ([]*models.Post, error)
	ListBeforeID(ctx context.Context, beforeID int64, limit int) ([]*models.Post, error)
	ListAfterID(ctx context.Context, sinceID int64, limit int) ([]*models.Post, error)
	LikeCounts(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	CommentCounts(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	Like(ctx context.Context, like *models.PostLike) (bool, error)
	AddComment(ctx context.Context, comment *models.PostComment) error
	ListComments(ctx context.Context, postID int64) ([]*models.PostComment, error)
}

type StoryStore interface {
	Create(ctx context.Context, story *models.Story) error
	FindByID(ctx context.Context, id int64) (*models.Story, error)
	ListActive(ctx context.Context, userIDs []int64, since time.Time) ([]*models.Story, error)
	AddView(ctx context.Context, view *models.StoryView) error
	ViewerIDs(ctx context.Context, storyIDs []int64) (map[int64][]int64, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type MessageStore interface {
	Append(ctx context.Context, msg *models.Message) (*models.Conversation, error)
	ListByConversation(ctx context.Context, conversationID int64) ([]*models.Message, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*models.Message, error)
}

type ConversationStore interface {
	FindByPair(ctx context.Context, a, b int64) (*models.Conversation, error)
	ListByUser(ctx context.Context, uid int64) ([]*models.Conversation, error)
}

type LastMessageCache interface {
	Set(ctx context.Context, a, b int64, message *cache.LastCacheMessage) error
	BatchGet(ctx context.Context, convs []*models.Conversation) map[int64]*cache.LastCacheMessage
}

type UnreadCache interface {
	Incr(ctx context.Context, uid, sender int64) error
	Reset(ctx context.Context, uid, sender int64) error
	BatchGet(ctx context.Context, uid int64, peers []int64) map[int64]int64
}

// Pusher 实时下发, 用户不在线返回 false
type Pusher interface {
	PushUser(uid int64, event string, content any) bool
}
