package service

import (
	"context"

	"echofm/internal/apperr"
	"echofm/internal/domain"
)

// AudioService 的计数器都是 read-modify-write：取整行、改一个字段、整行回写。
// 同一条记录上的并发变更，最后写入者胜出。
type AudioService struct {
	audios domain.AudioRepository
}

func NewAudioService(audios domain.AudioRepository) *AudioService {
	return &AudioService{audios: audios}
}

type CreateAudioInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required"`
	CoverURL    string `json:"coverUrl"`
	Duration    int64  `json:"duration"`
	CreatorID   int64  `json:"creatorId" binding:"required"`
	Category    string `json:"category"`
}

// Create 不校验 creatorId 是否对应真实账号
func (s *AudioService) Create(ctx context.Context, in CreateAudioInput) (*domain.Audio, error) {
	a := &domain.Audio{
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
		CoverURL:    in.CoverURL,
		Duration:    in.Duration,
		CreatorID:   in.CreatorID,
		Category:    in.Category,
	}
	if err := s.audios.Create(ctx, a); err != nil {
		return nil, apperr.Internal("create audio failed", err)
	}
	return a, nil
}

func (s *AudioService) GetByID(ctx context.Context, id int64) (*domain.Audio, error) {
	a, err := s.audios.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("query audio failed", err)
	}
	if a == nil {
		return nil, apperr.NotFound("audio not found")
	}
	return a, nil
}

type UpdateAudioInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	CoverURL    *string `json:"coverUrl"`
	Duration    *int64  `json:"duration"`
	Category    *string `json:"category"`
}

// Update 部分更新，null 字段跳过
func (s *AudioService) Update(ctx context.Context, id int64, in UpdateAudioInput) (*domain.Audio, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.URL != nil {
		a.URL = *in.URL
	}
	if in.CoverURL != nil {
		a.CoverURL = *in.CoverURL
	}
	if in.Duration != nil {
		a.Duration = *in.Duration
	}
	if in.Category != nil {
		a.Category = *in.Category
	}
	if err := s.audios.Save(ctx, a); err != nil {
		return nil, apperr.Internal("update audio failed", err)
	}
	return a, nil
}

// Delete 无条件删除；不清理各 profile 收藏集合里的引用
func (s *AudioService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.audios.Delete(ctx, id); err != nil {
		return apperr.Internal("delete audio failed", err)
	}
	return nil
}

func (s *AudioService) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Audio, error) {
	as, err := s.audios.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, apperr.Internal("query audios failed", err)
	}
	return as, nil
}

func (s *AudioService) ListByCategory(ctx context.Context, category string) ([]domain.Audio, error) {
	as, err := s.audios.ListByCategory(ctx, category)
	if err != nil {
		return nil, apperr.Internal("query audios failed", err)
	}
	return as, nil
}

func (s *AudioService) Search(ctx context.Context, keyword string) ([]domain.Audio, error) {
	as, err := s.audios.SearchByTitle(ctx, keyword)
	if err != nil {
		return nil, apperr.Internal("search audios failed", err)
	}
	return as, nil
}

func (s *AudioService) IncrementPlay(ctx context.Context, id int64) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.PlayCount++
	if err := s.audios.Save(ctx, a); err != nil {
		return apperr.Internal("update play count failed", err)
	}
	return nil
}

func (s *AudioService) IncrementLike(ctx context.Context, id int64) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.LikeCount++
	if err := s.audios.Save(ctx, a); err != nil {
		return apperr.Internal("update like count failed", err)
	}
	return nil
}

// DecrementLike 零点不下穿：已是 0 时不落盘
func (s *AudioService) DecrementLike(ctx context.Context, id int64) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.LikeCount == 0 {
		return nil
	}
	a.LikeCount--
	if err := s.audios.Save(ctx, a); err != nil {
		return apperr.Internal("update like count failed", err)
	}
	return nil
}
