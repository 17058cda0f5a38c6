package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"echofm/internal/domain"
)

type AudioRepo struct{ db *gorm.DB }

func NewAudioRepo(db *gorm.DB) *AudioRepo { return &AudioRepo{db: db} }

var _ domain.AudioRepository = (*AudioRepo)(nil)

func (r *AudioRepo) Create(ctx context.Context, a *domain.Audio) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AudioRepo) FindByID(ctx context.Context, id int64) (*domain.Audio, error) {
	var a domain.Audio
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AudioRepo) Save(ctx context.Context, a *domain.Audio) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AudioRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Audio{}).Error
}

func (r *AudioRepo) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Audio, error) {
	var as []domain.Audio
	err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).Order("created_at desc").Find(&as).Error
	return as, err
}

func (r *AudioRepo) ListByCategory(ctx context.Context, category string) ([]domain.Audio, error) {
	var as []domain.Audio
	err := r.db.WithContext(ctx).Where("category = ?", category).Order("created_at desc").Find(&as).Error
	return as, err
}

// SearchByTitle 标题子串匹配；大小写敏感性跟随数据库排序规则
func (r *AudioRepo) SearchByTitle(ctx context.Context, keyword string) ([]domain.Audio, error) {
	var as []domain.Audio
	err := r.db.WithContext(ctx).Where("title LIKE ?", "%"+keyword+"%").Order("created_at desc").Find(&as).Error
	return as, err
}
