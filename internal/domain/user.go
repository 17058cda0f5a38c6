package domain

import (
	"context"
	"time"
)

const DefaultLevel = "A1"

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"userId"`
	Phone        string    `gorm:"uniqueIndex;size:20;not null" json:"phone"`
	Username     string    `gorm:"size:64" json:"username"`
	PasswordHash string    `gorm:"size:191;not null" json:"-"`
	AvatarURL    string    `gorm:"size:255" json:"avatarUrl"`
	Level        string    `gorm:"size:8;not null;default:A1" json:"level"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Save(ctx context.Context, u *User) error
}
