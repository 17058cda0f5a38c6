package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"echofm/internal/service"
	httpez "echofm/internal/transport/http/ez"
)

// MountAudio 音频元数据 CRUD、筛选列表与计数器变更
func MountAudio(api *gin.RouterGroup, l *zap.Logger, svc *service.AudioService) {
	ez := httpez.New(api.Group("/audio"), l)

	httpez.POSTJSON[service.CreateAudioInput](ez, "", func(c *gin.Context, in *service.CreateAudioInput) (any, error) {
		a, err := svc.Create(c.Request.Context(), *in)
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "audio created", Data: a}, nil
	})

	ez.GET("/search", func(c *gin.Context) (any, error) {
		return svc.Search(c.Request.Context(), c.Query("keyword"))
	})

	ez.GET("/creator/:creatorId", func(c *gin.Context) (any, error) {
		id, err := httpez.ParamID(c, "creatorId")
		if err != nil {
			return nil, err
		}
		return svc.ListByCreator(c.Request.Context(), id)
	})

	ez.GET("/category/:category", func(c *gin.Context) (any, error) {
		return svc.ListByCategory(c.Request.Context(), c.Param("category"))
	})

	ez.GET("/:id", func(c *gin.Context) (any, error) {
		id, err := httpez.ParamID(c, "id")
		if err != nil {
			return nil, err
		}
		return svc.GetByID(c.Request.Context(), id)
	})

	httpez.PUTJSON[service.UpdateAudioInput](ez, "/:id", func(c *gin.Context, in *service.UpdateAudioInput) (any, error) {
		id, err := httpez.ParamID(c, "id")
		if err != nil {
			return nil, err
		}
		return svc.Update(c.Request.Context(), id, *in)
	})

	ez.DELETE("/:id", func(c *gin.Context) (any, error) {
		id, err := httpez.ParamID(c, "id")
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "audio deleted"}, svc.Delete(c.Request.Context(), id)
	})

	ez.POST("/:id/play", func(c *gin.Context) (any, error) {
		id, err := httpez.ParamID(c, "id")
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "play count incremented"}, svc.IncrementPlay(c.Request.Context(), id)
	})

	ez.POST("/:id/like", func(c *gin.Context) (any, error) {
		id, err := httpez.ParamID(c, "id")
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "like success"}, svc.IncrementLike(c.Request.Context(), id)
	})

	ez.POST("/:id/unlike", func(c *gin.Context) (any, error) {
		id, err := httpez.ParamID(c, "id")
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "unlike success"}, svc.DecrementLike(c.Request.Context(), id)
	})
}
