package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echofm/internal/repo"
)

func newUploadSvc(t *testing.T) (*UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	return NewUploadService(repo.NewFSBlobStore(dir)), dir
}

func TestStoreLowercasesExtension(t *testing.T) {
	svc, dir := newUploadSvc(t)

	url, err := svc.Store(FolderAudio, "clip.MP3", strings.NewReader("payload"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/audio/"), "url %q", url)
	assert.True(t, strings.HasSuffix(url, ".mp3"), "extension must be lower-cased: %q", url)
	assert.NotContains(t, url, "clip", "generated name must differ from the original")

	b, err := os.ReadFile(filepath.Join(dir, FolderAudio, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))
}

func TestStoreWithoutExtension(t *testing.T) {
	svc, _ := newUploadSvc(t)

	url, err := svc.Store(FolderCover, "artwork", strings.NewReader("x"))
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(url, "."), "no trailing dot for extension-less names: %q", url)
	assert.True(t, strings.HasPrefix(url, "/uploads/cover/"))
}

func TestStoreGeneratesUniqueNames(t *testing.T) {
	svc, _ := newUploadSvc(t)

	u1, err := svc.Store(FolderAudio, "same.mp3", strings.NewReader("a"))
	require.NoError(t, err)
	u2, err := svc.Store(FolderAudio, "same.mp3", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, u1, u2)
}

func TestStoreRejectsUnknownFolder(t *testing.T) {
	svc, _ := newUploadSvc(t)

	_, err := svc.Store("video", "clip.mp4", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, 400, appCode(t, err))
}

func TestStoreWriteFailure(t *testing.T) {
	dir := t.TempDir()
	// 把分类目录占成普通文件，落盘必然失败
	require.NoError(t, os.WriteFile(filepath.Join(dir, FolderAudio), []byte("x"), 0o644))
	svc := NewUploadService(repo.NewFSBlobStore(dir))

	_, err := svc.Store(FolderAudio, "clip.mp3", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, 500, appCode(t, err))
}
