package service

import (
	"Orbit/config"
	"Orbit/dao"
	"Orbit/dao/cache"
	"Orbit/pkg/cursor"
	"Orbit/pkg/socket"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(UserStore), new(*dao.Users)),
	wire.Bind(new(FollowStore), new(*dao.UserFollowDAO)),
	wire.Bind(new(PostStore), new(*dao.PostDAO)),
	wire.Bind(new(StoryStore), new(*dao.StoryDAO)),
	wire.Bind(new(MessageStore), new(*dao.MessageDAO)),
	wire.Bind(new(ConversationStore), new(*dao.ConversationDAO)),
	wire.Bind(new(LastMessageCache), new(*cache.MessageStorage)),
	wire.Bind(new(UnreadCache), new(*cache.UnreadStorage)),
	wire.Bind(new(Pusher), new(*socket.Hub)),

	NewCursorCodec,

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(StoryService), "*"),
	wire.Bind(new(IStoryService), new(*StoryService)),

	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),

	wire.Struct(new(MediaService), "*"),
	wire.Bind(new(IMediaService), new(*MediaService)),
)

func NewCursorCodec(cfg *config.Cursor) (*cursor.Codec, error) {
	return cursor.New(cfg.Salt)
}
