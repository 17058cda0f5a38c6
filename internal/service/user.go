package service

import (
	"context"

	"echofm/internal/apperr"
	"echofm/internal/domain"
	"echofm/pkg/utils"
)

type UserService struct {
	users  domain.UserRepository
	hasher *utils.Hasher
}

func NewUserService(users domain.UserRepository, hasher *utils.Hasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Register 手机号唯一；新账号等级默认 A1。Profile 不在注册时创建（懒建）。
func (s *UserService) Register(ctx context.Context, phone, password, username string) (*domain.User, error) {
	exists, err := s.users.ExistsByPhone(ctx, phone)
	if err != nil {
		return nil, apperr.Internal("register failed", err)
	}
	if exists {
		return nil, apperr.Conflict("phone already registered")
	}

	u := &domain.User{
		Phone:        phone,
		Username:     username,
		PasswordHash: s.hasher.Hash(password),
		Level:        domain.DefaultLevel,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, apperr.Internal("register failed", err)
	}
	return u, nil
}

func (s *UserService) Login(ctx context.Context, phone, password string) (*domain.User, error) {
	u, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		return nil, apperr.Internal("login failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if !s.hasher.Check(password, u.PasswordHash) {
		return nil, apperr.Unauthorized("wrong password")
	}
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("query user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

type UpdateUserInput struct {
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatarUrl"`
}

// Update 部分更新：未提供的字段保持原值
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.AvatarURL != nil {
		u.AvatarURL = *in.AvatarURL
	}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, apperr.Internal("update user failed", err)
	}
	return u, nil
}
