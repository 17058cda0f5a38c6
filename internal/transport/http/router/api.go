package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"echofm/internal/service"
	mdw "echofm/internal/transport/http/middleware"
)

type Services struct {
	Users    *service.UserService
	Profiles *service.ProfileService
	Audios   *service.AudioService
	Uploads  *service.UploadService
}

type Options struct {
	UploadDir    string
	MaxBodyBytes int64
}

func NewAPIEngine(l *zap.Logger, svcs Services, opt Options) *gin.Engine {
	r := gin.New()

	if opt.MaxBodyBytes <= 0 {
		opt.MaxBodyBytes = 64 << 20
	}

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(opt.MaxBodyBytes),
		mdw.Timeout(30*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查 + prometheus
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 已上传文件静态回读
	r.Static("/uploads", opt.UploadDir)

	api := r.Group("/api")
	MountUser(api, l, svcs.Users)
	MountProfile(api, l, svcs.Profiles)
	MountAudio(api, l, svcs.Audios)
	MountUpload(api, l, svcs.Uploads)

	return r
}
