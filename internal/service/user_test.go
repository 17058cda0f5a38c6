package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echofm/internal/domain"
)

func TestRegisterAssignsUniqueIDs(t *testing.T) {
	svc := newUserSvc(t, newTestDB(t))

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		u, err := svc.Register(context.Background(), fmt.Sprintf("138000000%02d", i), "pw", "")
		require.NoError(t, err)
		assert.False(t, seen[u.ID], "id %d assigned twice", u.ID)
		seen[u.ID] = true
	}
}

func TestRegisterDefaults(t *testing.T) {
	svc := newUserSvc(t, newTestDB(t))

	u, err := svc.Register(context.Background(), "13800000001", "pass1", "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLevel, u.Level)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "pass1", u.PasswordHash, "password must be stored as digest")
	assert.NotZero(t, u.CreatedAt)
}

func TestRegisterDuplicatePhoneConflict(t *testing.T) {
	svc := newUserSvc(t, newTestDB(t))

	_, err := svc.Register(context.Background(), "13800000001", "pw", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "13800000001", "other", "")
	require.Error(t, err)
	assert.Equal(t, 409, appCode(t, err))
}

func TestRegisterDoesNotCreateProfile(t *testing.T) {
	db := newTestDB(t)
	u := mustRegister(t, newUserSvc(t, db), "13800000001")

	p, err := newProfileSvc(t, db).GetByUserID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Nil(t, p, "profile is created lazily, not at registration")
}

func TestLogin(t *testing.T) {
	svc := newUserSvc(t, newTestDB(t))
	reg := mustRegister(t, svc, "13800000001")

	t.Run("ok", func(t *testing.T) {
		u, err := svc.Login(context.Background(), "13800000001", "secret")
		require.NoError(t, err)
		assert.Equal(t, reg.ID, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "13800000001", "nope")
		require.Error(t, err)
		assert.Equal(t, 401, appCode(t, err))
	})

	t.Run("unknown phone", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "13899999999", "secret")
		require.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
	})
}

func TestUpdatePartial(t *testing.T) {
	svc := newUserSvc(t, newTestDB(t))

	u, err := svc.Register(context.Background(), "13800000001", "pass1", "alice")
	require.NoError(t, err)

	avatar := "http://x/a.png"
	got, err := svc.Update(context.Background(), u.ID, UpdateUserInput{AvatarURL: &avatar})
	require.NoError(t, err)

	assert.Equal(t, avatar, got.AvatarURL)
	assert.Equal(t, "alice", got.Username, "unspecified field must keep its value")
	assert.Equal(t, u.Phone, got.Phone)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newUserSvc(t, newTestDB(t))

	name := "bob"
	_, err := svc.Update(context.Background(), 42, UpdateUserInput{Username: &name})
	require.Error(t, err)
	assert.Equal(t, 404, appCode(t, err))
}

// 注册 → 登录同凭证 → 只改头像，用户名保持注册时的值
func TestRegisterLoginUpdateScenario(t *testing.T) {
	svc := newUserSvc(t, newTestDB(t))

	reg, err := svc.Register(context.Background(), "13800000001", "pass1", "alice")
	require.NoError(t, err)

	logged, err := svc.Login(context.Background(), "13800000001", "pass1")
	require.NoError(t, err)
	require.Equal(t, reg.ID, logged.ID)

	avatar := "http://x/a.png"
	updated, err := svc.Update(context.Background(), reg.ID, UpdateUserInput{AvatarURL: &avatar})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, avatar, updated.AvatarURL)
}
