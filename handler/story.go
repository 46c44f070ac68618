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

type Story struct {
	Config       *config.Config
	StoryService service.IStoryService
}

func (s *Story) RegisterRouter(r gin.IRouter) {
	g := r.Group("/user")
	g.Use(middleware.Auth([]byte(s.Config.Jwt.Secret)))
	g.POST("/story", context.Wrap(s.Create))
	g.GET("/userStory/getStory", context.Wrap(s.List))
	g.POST("/story/:storyId/view", context.Wrap(s.View))
}

func (s *Story) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	item, err := s.StoryService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

func (s *Story) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	items, err := s.StoryService.ListFor(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (s *Story) View(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	storyID, err := paramID(c, "storyId")
	if err != nil {
		return err
	}

	if err := s.StoryService.View(c.Request.Context(), uid, storyID); err != nil {
		return err
	}
	response.Success(c, gin.H{"viewed": true})
	return nil
}
