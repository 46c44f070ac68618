package handler

import (
	"net/http"

	"Orbit/config"
	"Orbit/middleware"
	"Orbit/pkg/context"
	"Orbit/pkg/response"
	"Orbit/service"
	"Orbit/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	g := r.Group("/user")
	g.POST("/signup", context.Wrap(a.Signup))
	g.POST("/login", context.Wrap(a.Login))
	g.POST("/logout", context.Wrap(a.Logout))
	g.GET("/getProfile", authorize, context.Wrap(a.GetProfile))
}

func (a *Auth) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	user, token, err := a.AuthService.Signup(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	a.setCookie(c, token, int(a.Config.Jwt.ExpiresIn))
	response.Created(c, user)
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	user, token, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	a.setCookie(c, token, int(a.Config.Jwt.ExpiresIn))
	response.Success(c, user)
	return nil
}

func (a *Auth) Logout(c *gin.Context) error {
	a.setCookie(c, "", -1)
	response.Success(c, gin.H{"message": "logged out successfully"})
	return nil
}

func (a *Auth) GetProfile(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := a.UserService.GetProfile(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

// setCookie httpOnly + SameSite=Strict, maxAge<0 表示删除
func (a *Auth) setCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", a.Config.Jwt.CookieSecure, true)
}
