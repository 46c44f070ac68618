package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewUserFollowDAO,
	NewPostDAO,
	NewStoryDAO,
	NewConversationDAO,
	NewMessageDAO,
)
