package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"Orbit/config"
	"Orbit/models"
	"Orbit/pkg/jwt"
	"Orbit/pkg/snowflake"
	"Orbit/types"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCost = 10

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Signup(ctx context.Context, req *types.SignupRequest) (*models.User, string, error)
	Login(ctx context.Context, req *types.LoginRequest) (*models.User, string, error)
	ParseToken(token string) (int64, error)
}

type AuthService struct {
	Config *config.Config
	Users  UserStore
}

func (s *AuthService) Signup(ctx context.Context, req *types.SignupRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	taken, err := s.Users.IsEmailTaken(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrEmailTaken
	}
	taken, err = s.Users.IsUsernameTaken(ctx, username, 0)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &models.User{
		ID:        snowflake.GenID(),
		Username:  username,
		FullName:  strings.TrimSpace(req.FullName),
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		// 并发注册时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*models.User, string, error) {
	user, err := s.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ParseToken 校验会话令牌, 返回用户 ID
func (s *AuthService) ParseToken(token string) (int64, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), jwt.TypeAccess, token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func (s *AuthService) issue(userID int64) (string, error) {
	return jwt.GenerateToken([]byte(s.Config.Jwt.Secret), userID, jwt.TypeAccess, s.Config.Jwt.Expire())
}
