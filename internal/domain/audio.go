package domain

import (
	"context"
	"time"
)

type Audio struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"audioId"`
	Title        string    `gorm:"size:191;not null" json:"title"`
	Description  string    `gorm:"size:1024" json:"description"`
	URL          string    `gorm:"size:255;not null" json:"url"`
	CoverURL     string    `gorm:"size:255" json:"coverUrl"`
	Duration     int64     `json:"duration"` // 单位：秒
	CreatorID    int64     `gorm:"not null;index" json:"creatorId"`
	Category     string    `gorm:"size:64;index" json:"category"`
	PlayCount    int       `gorm:"not null;default:0" json:"playCount"`
	LikeCount    int       `gorm:"not null;default:0" json:"likeCount"`
	CommentCount int       `gorm:"not null;default:0" json:"commentCount"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Audio) TableName() string { return "audios" }

type AudioRepository interface {
	Create(ctx context.Context, a *Audio) error
	FindByID(ctx context.Context, id int64) (*Audio, error)
	Save(ctx context.Context, a *Audio) error
	Delete(ctx context.Context, id int64) error
	ListByCreator(ctx context.Context, creatorID int64) ([]Audio, error)
	ListByCategory(ctx context.Context, category string) ([]Audio, error)
	SearchByTitle(ctx context.Context, keyword string) ([]Audio, error)
}
