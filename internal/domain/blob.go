package domain

import "io"

// BlobStore 负责上传文件落盘；URL 生成在 service 层
type BlobStore interface {
	Save(folder, filename string, r io.Reader) error
}
