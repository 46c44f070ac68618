package handler

import (
	"Orbit/config"
	"Orbit/middleware"
	"Orbit/pkg/context"
	"Orbit/pkg/response"
	"Orbit/service"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	g := r.Group("/user")
	g.Use(middleware.Auth([]byte(f.Config.Jwt.Secret)))
	g.POST("/follow/:userId", context.Wrap(f.FollowUser))
	g.DELETE("/unfollow/:userId", context.Wrap(f.UnfollowUser))
	g.GET("/followers/:userId", context.Wrap(f.Followers))
	g.GET("/following/:userId", context.Wrap(f.Following))
	g.GET("/follow-status/:userId", context.Wrap(f.FollowStatus))
	g.GET("/follow-stats/:userId", context.Wrap(f.FollowStats))
	g.GET("/suggestedForYou", context.Wrap(f.Suggestions))
}

// FollowUser 关注用户
func (f *Follow) FollowUser(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	target, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	if err := f.FollowService.Follow(c.Request.Context(), uid, target); err != nil {
		return err
	}
	response.Success(c, gin.H{"message": "followed successfully"})
	return nil
}

// UnfollowUser 取消关注
func (f *Follow) UnfollowUser(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	target, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	if err := f.FollowService.Unfollow(c.Request.Context(), uid, target); err != nil {
		return err
	}
	response.Success(c, gin.H{"message": "unfollowed successfully"})
	return nil
}

func (f *Follow) Followers(c *gin.Context) error {
	target, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	list, err := f.FollowService.Followers(c.Request.Context(), target)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (f *Follow) Following(c *gin.Context) error {
	target, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	list, err := f.FollowService.Following(c.Request.Context(), target)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

// FollowStatus 我是否关注了对方
func (f *Follow) FollowStatus(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	target, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	ok, err := f.FollowService.IsFollowing(c.Request.Context(), uid, target)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"isFollowing": ok})
	return nil
}

func (f *Follow) FollowStats(c *gin.Context) error {
	target, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	stats, err := f.FollowService.FollowStats(c.Request.Context(), target)
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}

func (f *Follow) Suggestions(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	list, err := f.FollowService.Suggestions(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}
