package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"echofm/internal/domain"
	"echofm/internal/service"
	httpez "echofm/internal/transport/http/ez"
)

// MountProfile 用户扩展资料：整体 upsert/查询/删除，以及
// 关注、收藏、收听时长三组按共享主键的变更操作。
func MountProfile(api *gin.RouterGroup, l *zap.Logger, svc *service.ProfileService) {
	ez := httpez.New(api.Group("/userProfile"), l)

	httpez.POSTJSON[domain.UserProfile](ez, "", func(c *gin.Context, in *domain.UserProfile) (any, error) {
		return svc.Upsert(c.Request.Context(), in)
	})

	ez.GET("", func(c *gin.Context) (any, error) {
		return svc.ListAll(c.Request.Context())
	})

	ez.GET("/:userId", func(c *gin.Context) (any, error) {
		id, err := httpez.ParamID(c, "userId")
		if err != nil {
			return nil, err
		}
		// 不存在返回空 data，不算错误
		return svc.GetByUserID(c.Request.Context(), id)
	})

	ez.DELETE("/:userId", func(c *gin.Context) (any, error) {
		id, err := httpez.ParamID(c, "userId")
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "profile deleted"}, svc.DeleteByUserID(c.Request.Context(), id)
	})

	pair := func(c *gin.Context, second string) (int64, int64, error) {
		userID, err := httpez.ParamID(c, "userId")
		if err != nil {
			return 0, 0, err
		}
		other, err := httpez.ParamID(c, second)
		if err != nil {
			return 0, 0, err
		}
		return userID, other, nil
	}

	ez.POST("/:userId/subscribe/:creatorId", func(c *gin.Context) (any, error) {
		userID, creatorID, err := pair(c, "creatorId")
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "subscribe success"}, svc.Follow(c.Request.Context(), userID, creatorID)
	})

	ez.DELETE("/:userId/subscribe/:creatorId", func(c *gin.Context) (any, error) {
		userID, creatorID, err := pair(c, "creatorId")
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "unsubscribe success"}, svc.Unfollow(c.Request.Context(), userID, creatorID)
	})

	ez.POST("/:userId/collect/:audioId", func(c *gin.Context) (any, error) {
		userID, audioID, err := pair(c, "audioId")
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "collect success"}, svc.Collect(c.Request.Context(), userID, audioID)
	})

	ez.DELETE("/:userId/collect/:audioId", func(c *gin.Context) (any, error) {
		userID, audioID, err := pair(c, "audioId")
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "uncollect success"}, svc.Uncollect(c.Request.Context(), userID, audioID)
	})

	ez.POST("/:userId/listenTime/:seconds", func(c *gin.Context) (any, error) {
		userID, seconds, err := pair(c, "seconds")
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "listen time added"}, svc.AddListenTime(c.Request.Context(), userID, seconds)
	})
}
