package repo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"echofm/internal/domain"
)

// FSBlobStore 把上传内容写到本地目录，按 folder 分子目录。
// /uploads/** 的静态回读由 HTTP 层直接挂载同一目录。
type FSBlobStore struct {
	Basedir string
}

func NewFSBlobStore(basedir string) *FSBlobStore { return &FSBlobStore{Basedir: basedir} }

var _ domain.BlobStore = (*FSBlobStore)(nil)

func (s *FSBlobStore) Save(folder, filename string, r io.Reader) error {
	dir := filepath.Join(s.Basedir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	dst := filepath.Join(dir, filename)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
