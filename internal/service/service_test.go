package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"echofm/internal/apperr"
	"echofm/internal/domain"
	"echofm/internal/repo"
	"echofm/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.UserProfile{}, &domain.Audio{}))
	return db
}

func newUserSvc(t *testing.T, db *gorm.DB) *UserService {
	t.Helper()
	return NewUserService(repo.NewUserRepo(db), utils.NewHasher("test-salt"))
}

func newProfileSvc(t *testing.T, db *gorm.DB) *ProfileService {
	t.Helper()
	return NewProfileService(repo.NewProfileRepo(db), repo.NewUserRepo(db))
}

func newAudioSvc(t *testing.T, db *gorm.DB) *AudioService {
	t.Helper()
	return NewAudioService(repo.NewAudioRepo(db))
}

func mustRegister(t *testing.T, svc *UserService, phone string) *domain.User {
	t.Helper()
	u, err := svc.Register(context.Background(), phone, "secret", "")
	require.NoError(t, err)
	return u
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae), "expected apperr.Error, got %v", err)
	return ae.Code
}
