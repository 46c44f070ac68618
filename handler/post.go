package handler

import (
	"Orbit/config"
	"Orbit/middleware"
	"Orbit/pkg/context"
	"Orbit/pkg/response"
	"Orbit/service"
	"Orbit/types"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config      *config.Config
	PostService service.IPostService
	FeedService service.IFeedService
}

// RegisterRouter 同一层级的路径参数统一命名为 :id, 既可能是用户也可能是帖子
func (p *Post) RegisterRouter(r gin.IRouter) {
	g := r.Group("/user/post")
	g.Use(middleware.Auth([]byte(p.Config.Jwt.Secret)))
	g.POST("/createPost", context.Wrap(p.Create))
	g.GET("/get-all-posts", context.Wrap(p.MyPosts))
	g.GET("/getFollowUserPost", context.Wrap(p.FollowingFeed))
	g.GET("/getAllUsersPosts", context.Wrap(p.GlobalFeed))
	g.GET("/reels", context.Wrap(p.Reels))
	g.GET("/:id/posts", context.Wrap(p.UserPosts))
	g.POST("/:id/like", context.Wrap(p.Like))
	g.POST("/:id/comment", context.Wrap(p.Comment))
	g.GET("/:id/comments", context.Wrap(p.Comments))
}

func (p *Post) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	item, err := p.PostService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

func (p *Post) MyPosts(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	items, err := p.PostService.ListByAuthor(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (p *Post) UserPosts(c *gin.Context) error {
	author, err := paramID(c, "id")
	if err != nil {
		return err
	}
	items, err := p.PostService.ListByAuthor(c.Request.Context(), author)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

// FollowingFeed 关注流, 游标分页
func (p *Post) FollowingFeed(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var q types.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return bindError(err)
	}

	page, err := p.FeedService.FollowingFeed(c.Request.Context(), uid, q.Cursor, q.Limit)
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}

// GlobalFeed 全站流, 只认 cursor
func (p *Post) GlobalFeed(c *gin.Context) error {
	var q types.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return bindError(err)
	}
	q.SinceID = 0

	page, err := p.FeedService.GlobalFeed(c.Request.Context(), &q)
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}

// Reels 全站流, 支持 sinceId 拉取更新
func (p *Post) Reels(c *gin.Context) error {
	var q types.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return bindError(err)
	}

	page, err := p.FeedService.GlobalFeed(c.Request.Context(), &q)
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}

func (p *Post) Like(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	added, err := p.PostService.Like(c.Request.Context(), uid, postID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"liked": true, "added": added})
	return nil
}

func (p *Post) Comment(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	item, err := p.PostService.Comment(c.Request.Context(), uid, postID, req.Text)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

func (p *Post) Comments(c *gin.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	items, err := p.PostService.Comments(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}
