package service

import "Orbit/pkg/errorx"

var (
	ErrUserNotFound       = errorx.NewNotFound("user not found")
	ErrSelfFollow         = errorx.NewConflict("you cannot follow yourself")
	ErrAlreadyFollowing   = errorx.NewConflict("you are already following this user")
	ErrNotFollowing       = errorx.NewNotFound("you are not following this user")
	ErrEmailTaken         = errorx.NewConflict("email already registered")
	ErrUsernameTaken      = errorx.NewConflict("username already taken")
	ErrInvalidCredentials = errorx.NewValidation("invalid email or password")
	ErrPostNotFound       = errorx.NewNotFound("post not found")
	ErrStoryNotFound      = errorx.NewNotFound("story not found")
	ErrEmptyMessage       = errorx.NewValidation("message content is required")
	ErrEmptySearch        = errorx.NewValidation("search query is required")
)
