package server

import (
	"Orbit/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	User    *handler.User
	Follow  *handler.Follow
	Post    *handler.Post
	Story   *handler.Story
	Message *handler.Message
	Media   *handler.Media
	Socket  *handler.Socket
}
