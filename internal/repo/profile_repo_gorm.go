package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"echofm/internal/domain"
)

type ProfileRepo struct{ db *gorm.DB }

func NewProfileRepo(db *gorm.DB) *ProfileRepo { return &ProfileRepo{db: db} }

var _ domain.ProfileRepository = (*ProfileRepo)(nil)

// Save 按共享主键 upsert：首写插入，之后整行覆盖（read-modify-write 语义）
func (r *ProfileRepo) Save(ctx context.Context, p *domain.UserProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(p).Error
}

func (r *ProfileRepo) FindByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	// 不存在也视为成功
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.UserProfile{}).Error
}

func (r *ProfileRepo) ListAll(ctx context.Context) ([]domain.UserProfile, error) {
	var ps []domain.UserProfile
	err := r.db.WithContext(ctx).Order("user_id").Find(&ps).Error
	return ps, err
}
