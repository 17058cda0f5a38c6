package domain

import "context"

// UserProfile 与 users 共享主键：UserID 既是主键也是外键。
// Profile 不能先于 Account 存在。
type UserProfile struct {
	UserID             int64   `gorm:"primaryKey" json:"userId"`
	TotalListenTime    int64   `gorm:"not null;default:0" json:"totalListenTime"`
	FansCount          int     `gorm:"not null;default:0" json:"fansCount"`
	FollowCount        int     `gorm:"not null;default:0" json:"followCount"`
	SubscribeCreatorID []int64 `gorm:"serializer:json" json:"subscribeCreatorIds"`
	CollectAudioID     []int64 `gorm:"serializer:json" json:"collectAudioIds"`
}

func (UserProfile) TableName() string { return "user_profile" }

// HasSubscribe 判断是否已关注某创作者
func (p *UserProfile) HasSubscribe(creatorID int64) bool {
	return containsID(p.SubscribeCreatorID, creatorID)
}

// HasCollect 判断是否已收藏某音频
func (p *UserProfile) HasCollect(audioID int64) bool {
	return containsID(p.CollectAudioID, audioID)
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// RemoveSubscribe 从关注集合移除（不存在则无变化）
func (p *UserProfile) RemoveSubscribe(creatorID int64) {
	p.SubscribeCreatorID = removeID(p.SubscribeCreatorID, creatorID)
}

// RemoveCollect 从收藏集合移除（不存在则无变化）
func (p *UserProfile) RemoveCollect(audioID int64) {
	p.CollectAudioID = removeID(p.CollectAudioID, audioID)
}

type ProfileRepository interface {
	Save(ctx context.Context, p *UserProfile) error
	FindByUserID(ctx context.Context, userID int64) (*UserProfile, error)
	DeleteByUserID(ctx context.Context, userID int64) error
	ListAll(ctx context.Context) ([]UserProfile, error)
}
