package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"Orbit/dao/cache"
	"Orbit/models"

	"gorm.io/gorm"
)

// 内存版存储, 行为与 dao 层保持一致

type fakeUsers struct {
	mu    sync.Mutex
	users map[int64]*models.User
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: make(map[int64]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) FindByIDs(_ context.Context, ids []int64) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			cp := *u
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (f *fakeUsers) IsEmailTaken(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) IsUsernameTaken(_ context.Context, username string, exceptID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username && u.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) ListExcept(_ context.Context, id int64) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]*models.User, 0)
	for _, u := range f.users {
		if u.ID != id {
			res = append(res, u)
		}
	}
	return res, nil
}

func (f *fakeUsers) Search(_ context.Context, keyword string, limit int) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kw := strings.ToLower(keyword)
	res := make([]*models.User, 0)
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Username), kw) || strings.Contains(strings.ToLower(u.FullName), kw) {
			res = append(res, u)
		}
	}
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (f *fakeUsers) Update(_ context.Context, userID int64, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil
	}
	for k, v := range updates {
		switch k {
		case "username":
			u.Username = v.(string)
		case "full_name":
			u.FullName = v.(string)
		case "bio":
			u.Bio = v.(string)
		case "city":
			u.City = v.(string)
		case "country":
			u.Country = v.(string)
		case "profile_image":
			u.ProfileImage = v.(string)
		}
	}
	return nil
}

type fakeFollows struct {
	mu    sync.Mutex
	edges []*models.UserFollow
	users *fakeUsers
	// staleCheck 模拟并发关注: IsFollowing 读到的是对方写入前的状态
	staleCheck bool
}

func newFakeFollows(users *fakeUsers) *fakeFollows {
	return &fakeFollows{users: users}
}

// add 直接写入一条边, 测试准备数据用
func (f *fakeFollows) add(follower, following int64, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edges = append(f.edges, &models.UserFollow{
		ID:          int64(len(f.edges) + 1),
		FollowerID:  follower,
		FollowingID: following,
		CreatedAt:   at,
	})
}

func (f *fakeFollows) IsFollowing(_ context.Context, followerID, followingID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.staleCheck {
		return false, nil
	}
	return f.find(followerID, followingID) >= 0, nil
}

func (f *fakeFollows) find(followerID, followingID int64) int {
	for i, e := range f.edges {
		if e.FollowerID == followerID && e.FollowingID == followingID {
			return i
		}
	}
	return -1
}

func (f *fakeFollows) CreateEdge(_ context.Context, edge *models.UserFollow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.find(edge.FollowerID, edge.FollowingID) >= 0 {
		return gorm.ErrDuplicatedKey
	}
	f.edges = append(f.edges, edge)
	f.bump(edge.FollowingID, edge.FollowerID, 1)
	return nil
}

func (f *fakeFollows) DeleteEdge(_ context.Context, followerID, followingID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(followerID, followingID)
	if i < 0 {
		return false, nil
	}
	f.edges = append(f.edges[:i], f.edges[i+1:]...)
	f.bump(followingID, followerID, -1)
	return true, nil
}

func (f *fakeFollows) bump(followingID, followerID int64, delta int64) {
	if f.users == nil {
		return
	}
	f.users.mu.Lock()
	defer f.users.mu.Unlock()
	if u, ok := f.users.users[followingID]; ok {
		u.FollowersCount = max(u.FollowersCount+delta, 0)
	}
	if u, ok := f.users.users[followerID]; ok {
		u.FollowingCount = max(u.FollowingCount+delta, 0)
	}
}

func (f *fakeFollows) FollowingIDs(_ context.Context, userID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0)
	for _, e := range f.edges {
		if e.FollowerID == userID {
			ids = append(ids, e.FollowingID)
		}
	}
	return ids, nil
}

func (f *fakeFollows) Followers(ctx context.Context, userID int64) ([]*models.FollowProfile, error) {
	return f.profiles(ctx, func(e *models.UserFollow) (int64, bool) { return e.FollowerID, e.FollowingID == userID })
}

func (f *fakeFollows) Following(ctx context.Context, userID int64) ([]*models.FollowProfile, error) {
	return f.profiles(ctx, func(e *models.UserFollow) (int64, bool) { return e.FollowingID, e.FollowerID == userID })
}

func (f *fakeFollows) profiles(ctx context.Context, pick func(e *models.UserFollow) (int64, bool)) ([]*models.FollowProfile, error) {
	f.mu.Lock()
	edges := make([]*models.UserFollow, len(f.edges))
	copy(edges, f.edges)
	f.mu.Unlock()

	sort.SliceStable(edges, func(i, j int) bool { return edges[i].CreatedAt.After(edges[j].CreatedAt) })

	res := make([]*models.FollowProfile, 0)
	for _, e := range edges {
		id, ok := pick(e)
		if !ok {
			continue
		}
		u, err := f.users.FindByID(ctx, id)
		if err != nil {
			continue
		}
		res = append(res, &models.FollowProfile{ID: u.ID, Username: u.Username, FullName: u.FullName, FollowedAt: e.CreatedAt})
	}
	return res, nil
}

func (f *fakeFollows) CountFollowers(_ context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, e := range f.edges {
		if e.FollowingID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeFollows) CountFollowing(_ context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, e := range f.edges {
		if e.FollowerID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeFollows) EdgesFrom(ctx context.Context, followerIDs []int64, excludeFollower int64) ([]*models.SuggestedEdge, error) {
	in := make(map[int64]bool, len(followerIDs))
	for _, id := range followerIDs {
		in[id] = true
	}

	f.mu.Lock()
	edges := make([]*models.UserFollow, len(f.edges))
	copy(edges, f.edges)
	f.mu.Unlock()

	res := make([]*models.SuggestedEdge, 0)
	for _, e := range edges {
		if !in[e.FollowerID] || e.FollowerID == excludeFollower {
			continue
		}
		u, err := f.users.FindByID(ctx, e.FollowingID)
		if err != nil {
			continue
		}
		res = append(res, &models.SuggestedEdge{
			EdgeID:      e.ID,
			FollowerID:  e.FollowerID,
			FollowingID: e.FollowingID,
			Username:    u.Username,
			FullName:    u.FullName,
			CreatedAt:   e.CreatedAt,
		})
	}
	return res, nil
}

type fakePosts struct {
	mu       sync.Mutex
	posts    []*models.Post
	likes    []*models.PostLike
	comments []*models.PostComment
	queries  int
}

func (f *fakePosts) Create(_ context.Context, post *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePosts) FindByID(_ context.Context, id int64) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// sorted 按 (created_at DESC, id DESC)
func (f *fakePosts) sorted(keep func(p *models.Post) bool) []*models.Post {
	res := make([]*models.Post, 0)
	for _, p := range f.posts {
		if keep(p) {
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID > res[j].ID
	})
	return res
}

func limitPosts(posts []*models.Post, limit int) []*models.Post {
	if len(posts) > limit {
		return posts[:limit]
	}
	return posts
}

func (f *fakePosts) ListByAuthor(_ context.Context, authorID int64) ([]*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(p *models.Post) bool { return p.AuthorID == authorID }), nil
}

func (f *fakePosts) ListByAuthorsBefore(_ context.Context, authorIDs []int64, before *time.Time, beforeID int64, limit int) ([]*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++

	in := make(map[int64]bool, len(authorIDs))
	for _, id := range authorIDs {
		in[id] = true
	}
	res := f.sorted(func(p *models.Post) bool {
		if !in[p.AuthorID] {
			return false
		}
		if before == nil {
			return true
		}
		return p.CreatedAt.Before(*before) || (p.CreatedAt.Equal(*before) && p.ID < beforeID)
	})
	return limitPosts(res, limit), nil
}

func (f *fakePosts) byID(keep func(p *models.Post) bool, limit int) []*models.Post {
	res := make([]*models.Post, 0)
	for _, p := range f.posts {
		if keep(p) {
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return limitPosts(res, limit)
}

func (f *fakePosts) ListBeforeID(_ context.Context, beforeID int64, limit int) ([]*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	return f.byID(func(p *models.Post) bool { return beforeID == 0 || p.ID < beforeID }, limit), nil
}

func (f *fakePosts) ListAfterID(_ context.Context, sinceID int64, limit int) ([]*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	return f.byID(func(p *models.Post) bool { return p.ID > sinceID }, limit), nil
}

func (f *fakePosts) LikeCounts(_ context.Context, postIDs []int64) (map[int64]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make(map[int64]int64)
	for _, l := range f.likes {
		res[l.PostID]++
	}
	return res, nil
}

func (f *fakePosts) CommentCounts(_ context.Context, postIDs []int64) (map[int64]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make(map[int64]int64)
	for _, c := range f.comments {
		res[c.PostID]++
	}
	return res, nil
}

func (f *fakePosts) Like(_ context.Context, like *models.PostLike) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.likes {
		if l.PostID == like.PostID && l.UserID == like.UserID {
			return false, nil
		}
	}
	f.likes = append(f.likes, like)
	return true, nil
}

func (f *fakePosts) AddComment(_ context.Context, comment *models.PostComment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakePosts) ListComments(_ context.Context, postID int64) ([]*models.PostComment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]*models.PostComment, 0)
	for _, c := range f.comments {
		if c.PostID == postID {
			res = append(res, c)
		}
	}
	return res, nil
}

type fakeStories struct {
	mu      sync.Mutex
	stories []*models.Story
	views   []*models.StoryView
}

func (f *fakeStories) Create(_ context.Context, story *models.Story) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stories = append(f.stories, story)
	return nil
}

func (f *fakeStories) FindByID(_ context.Context, id int64) (*models.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.stories {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStories) ListActive(_ context.Context, userIDs []int64, since time.Time) ([]*models.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	in := make(map[int64]bool)
	for _, id := range userIDs {
		in[id] = true
	}
	res := make([]*models.Story, 0)
	for _, s := range f.stories {
		if in[s.UserID] && s.CreatedAt.After(since) {
			res = append(res, s)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (f *fakeStories) AddView(_ context.Context, view *models.StoryView) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.views {
		if v.StoryID == view.StoryID && v.ViewerID == view.ViewerID {
			return nil
		}
	}
	f.views = append(f.views, view)
	return nil
}

func (f *fakeStories) ViewerIDs(_ context.Context, storyIDs []int64) (map[int64][]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make(map[int64][]int64)
	for _, v := range f.views {
		res[v.StoryID] = append(res[v.StoryID], v.ViewerID)
	}
	return res, nil
}

func (f *fakeStories) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.stories[:0]
	var n int64
	for _, s := range f.stories {
		if s.CreatedAt.After(before) {
			kept = append(kept, s)
			continue
		}
		n++
	}
	f.stories = kept
	return n, nil
}

// fakeMessages 同时实现 MessageStore 与 ConversationStore
type fakeMessages struct {
	mu       sync.Mutex
	convs    []*models.Conversation
	messages []*models.Message
	nextID   int64
}

func (f *fakeMessages) pair(a, b int64) *models.Conversation {
	if a > b {
		a, b = b, a
	}
	for _, c := range f.convs {
		if c.UserLow == a && c.UserHigh == b {
			return c
		}
	}
	return nil
}

func (f *fakeMessages) Append(_ context.Context, msg *models.Message) (*models.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	conv := f.pair(msg.SenderID, msg.ReceiverID)
	if conv == nil {
		f.nextID++
		low, high := msg.SenderID, msg.ReceiverID
		if low > high {
			low, high = high, low
		}
		conv = &models.Conversation{ID: f.nextID, UserLow: low, UserHigh: high, CreatedAt: time.Now()}
		f.convs = append(f.convs, conv)
	}
	msg.ConversationID = conv.ID
	conv.LastMessageID = msg.ID
	conv.UpdatedAt = time.Now()
	f.messages = append(f.messages, msg)
	return conv, nil
}

func (f *fakeMessages) ListByConversation(_ context.Context, conversationID int64) ([]*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]*models.Message, 0)
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			res = append(res, m)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (f *fakeMessages) FindByIDs(_ context.Context, ids []int64) ([]*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	in := make(map[int64]bool)
	for _, id := range ids {
		in[id] = true
	}
	res := make([]*models.Message, 0)
	for _, m := range f.messages {
		if in[m.ID] {
			res = append(res, m)
		}
	}
	return res, nil
}

func (f *fakeMessages) FindByPair(_ context.Context, a, b int64) (*models.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pair(a, b), nil
}

func (f *fakeMessages) ListByUser(_ context.Context, uid int64) ([]*models.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]*models.Conversation, 0)
	for _, c := range f.convs {
		if c.UserLow == uid || c.UserHigh == uid {
			res = append(res, c)
		}
	}
	return res, nil
}

type fakeLastCache struct {
	mu   sync.Mutex
	data map[[2]int64]*cache.LastCacheMessage
}

func newFakeLastCache() *fakeLastCache {
	return &fakeLastCache{data: make(map[[2]int64]*cache.LastCacheMessage)}
}

func pairKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}

func (f *fakeLastCache) Set(_ context.Context, a, b int64, message *cache.LastCacheMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[pairKey(a, b)] = message
	return nil
}

func (f *fakeLastCache) BatchGet(_ context.Context, convs []*models.Conversation) map[int64]*cache.LastCacheMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make(map[int64]*cache.LastCacheMessage)
	for _, c := range convs {
		if m, ok := f.data[pairKey(c.UserLow, c.UserHigh)]; ok {
			res[c.ID] = m
		}
	}
	return res
}

type fakeUnread struct {
	mu   sync.Mutex
	data map[[2]int64]int64
}

func newFakeUnread() *fakeUnread {
	return &fakeUnread{data: make(map[[2]int64]int64)}
}

func (f *fakeUnread) Incr(_ context.Context, uid, sender int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[[2]int64{uid, sender}]++
	return nil
}

func (f *fakeUnread) Reset(_ context.Context, uid, sender int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, [2]int64{uid, sender})
	return nil
}

func (f *fakeUnread) BatchGet(_ context.Context, uid int64, peers []int64) map[int64]int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make(map[int64]int64)
	for _, p := range peers {
		if n, ok := f.data[[2]int64{uid, p}]; ok {
			res[p] = n
		}
	}
	return res
}

type pushed struct {
	uid     int64
	event   string
	content any
}

type fakePusher struct {
	mu     sync.Mutex
	online map[int64]bool
	pushed []pushed
}

func newFakePusher(online ...int64) *fakePusher {
	f := &fakePusher{online: make(map[int64]bool)}
	for _, uid := range online {
		f.online[uid] = true
	}
	return f
}

func (f *fakePusher) PushUser(uid int64, event string, content any) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.online[uid] {
		return false
	}
	f.pushed = append(f.pushed, pushed{uid: uid, event: event, content: content})
	return true
}

func user(id int64, username string) *models.User {
	return &models.User{ID: id, Username: username, FullName: strings.ToUpper(username), Email: username + "@orbit.dev"}
}
