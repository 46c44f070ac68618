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

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/user")
	g.Use(middleware.Auth([]byte(u.Config.Jwt.Secret)))
	g.PATCH("/editUserProfile", context.Wrap(u.EditProfile))
	g.GET("/getOtherUsers", context.Wrap(u.OtherUsers))
	g.GET("/search/:query", context.Wrap(u.Search))
	g.GET("/profile/:userId", context.Wrap(u.Profile))
}

func (u *User) EditProfile(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	user, err := u.UserService.UpdateProfile(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) OtherUsers(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	users, err := u.UserService.OtherUsers(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (u *User) Search(c *gin.Context) error {
	users, err := u.UserService.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (u *User) Profile(c *gin.Context) error {
	id, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	user, err := u.UserService.GetProfile(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}
