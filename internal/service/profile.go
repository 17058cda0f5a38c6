package service

import (
	"context"

	"echofm/internal/apperr"
	"echofm/internal/domain"
)

// ProfileService 维护与账号共享主键的扩展资料。
// Profile 懒建：首次 follow/collect/listenTime 时以既有账号为锚创建。
type ProfileService struct {
	profiles domain.ProfileRepository
	users    domain.UserRepository
}

func NewProfileService(profiles domain.ProfileRepository, users domain.UserRepository) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

// Upsert 整体写入；主键必须对应既有账号，否则共享主键无从构造
func (s *ProfileService) Upsert(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	u, err := s.users.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, apperr.Internal("save profile failed", err)
	}
	if u == nil {
		return nil, apperr.BadRequest("profile has no owning user")
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, apperr.Internal("save profile failed", err)
	}
	return p, nil
}

// GetByUserID 不存在返回 nil，不算错误
func (s *ProfileService) GetByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("query profile failed", err)
	}
	return p, nil
}

func (s *ProfileService) DeleteByUserID(ctx context.Context, userID int64) error {
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		return apperr.Internal("delete profile failed", err)
	}
	return nil
}

func (s *ProfileService) ListAll(ctx context.Context) ([]domain.UserProfile, error) {
	ps, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal("list profiles failed", err)
	}
	return ps, nil
}

// loadOrInit 要求账号存在；profile 缺失时返回仅带主键的新记录
func (s *ProfileService) loadOrInit(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("query user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("query profile failed", err)
	}
	if p == nil {
		p = &domain.UserProfile{UserID: userID}
	}
	return p, nil
}

// Follow 幂等加入关注集合；FollowCount 始终等于集合基数。
// 不校验 creatorId 真实存在，也不回写创作者自己的 FansCount。
func (s *ProfileService) Follow(ctx context.Context, userID, creatorID int64) error {
	p, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return err
	}
	if !p.HasSubscribe(creatorID) {
		p.SubscribeCreatorID = append(p.SubscribeCreatorID, creatorID)
	}
	p.FollowCount = len(p.SubscribeCreatorID)
	if err := s.profiles.Save(ctx, p); err != nil {
		return apperr.Internal("save profile failed", err)
	}
	return nil
}

// Unfollow profile 不存在时是 no-op
func (s *ProfileService) Unfollow(ctx context.Context, userID, creatorID int64) error {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return apperr.Internal("query profile failed", err)
	}
	if p == nil {
		return nil
	}
	p.RemoveSubscribe(creatorID)
	p.FollowCount = len(p.SubscribeCreatorID)
	if err := s.profiles.Save(ctx, p); err != nil {
		return apperr.Internal("save profile failed", err)
	}
	return nil
}

// Collect 与 Follow 对称，但不维护任何计数
func (s *ProfileService) Collect(ctx context.Context, userID, audioID int64) error {
	p, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return err
	}
	if !p.HasCollect(audioID) {
		p.CollectAudioID = append(p.CollectAudioID, audioID)
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return apperr.Internal("save profile failed", err)
	}
	return nil
}

func (s *ProfileService) Uncollect(ctx context.Context, userID, audioID int64) error {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return apperr.Internal("query profile failed", err)
	}
	if p == nil {
		return nil
	}
	p.RemoveCollect(audioID)
	if err := s.profiles.Save(ctx, p); err != nil {
		return apperr.Internal("save profile failed", err)
	}
	return nil
}

// AddListenTime 秒数累加，不做符号校验
func (s *ProfileService) AddListenTime(ctx context.Context, userID, seconds int64) error {
	p, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return err
	}
	p.TotalListenTime += seconds
	if err := s.profiles.Save(ctx, p); err != nil {
		return apperr.Internal("save profile failed", err)
	}
	return nil
}
