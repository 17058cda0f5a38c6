package service

import (
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"echofm/internal/apperr"
	"echofm/internal/domain"
)

const (
	FolderAudio = "audio"
	FolderCover = "cover"
)

// UploadService 收二进制负载、生成唯一文件名、交给 BlobStore 落盘，
// 返回 /uploads/{folder}/{filename} 形式的稳定取回路径。
// 不校验内容类型，也不扫描负载。
type UploadService struct {
	blobs domain.BlobStore
}

func NewUploadService(blobs domain.BlobStore) *UploadService {
	return &UploadService{blobs: blobs}
}

func (s *UploadService) Store(folder, originalName string, r io.Reader) (string, error) {
	if folder != FolderAudio && folder != FolderCover {
		return "", apperr.BadRequest("unknown upload folder: " + folder)
	}

	name := uuid.NewString()
	if ext := fileExt(originalName); ext != "" {
		name += "." + ext
	}

	if err := s.blobs.Save(folder, name, r); err != nil {
		return "", apperr.Internal("upload failed", err)
	}
	return "/uploads/" + folder + "/" + name, nil
}

// fileExt 取小写扩展名，不含点；没有扩展名返回空串
func fileExt(filename string) string {
	ext := path.Ext(filename)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
