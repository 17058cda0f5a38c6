package router

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"echofm/internal/apperr"
	"echofm/internal/service"
	httpez "echofm/internal/transport/http/ez"
)

// MountUpload multipart 文件上传，字段名 file
func MountUpload(api *gin.RouterGroup, l *zap.Logger, svc *service.UploadService) {
	ez := httpez.New(api.Group("/upload"), l)

	store := func(c *gin.Context, fh *multipart.FileHeader, folder string) (string, error) {
		f, err := fh.Open()
		if err != nil {
			return "", apperr.BadRequest("open uploaded file: " + err.Error())
		}
		defer f.Close()
		return svc.Store(folder, fh.Filename, f)
	}

	httpez.POSTFILE(ez, "/audio", "file", func(c *gin.Context, fh *multipart.FileHeader) (any, error) {
		url, err := store(c, fh, service.FolderAudio)
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "audio uploaded", Data: gin.H{"audioUrl": url}}, nil
	})

	httpez.POSTFILE(ez, "/cover", "file", func(c *gin.Context, fh *multipart.FileHeader) (any, error) {
		url, err := store(c, fh, service.FolderCover)
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "cover uploaded", Data: gin.H{"coverUrl": url}}, nil
	})
}
