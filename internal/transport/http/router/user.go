package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"echofm/internal/service"
	httpez "echofm/internal/transport/http/ez"
)

type registerIn struct {
	Phone    string `json:"phone" binding:"required,numeric,min=6,max=20"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"omitempty,max=64"`
}

type loginIn struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MountUser 注册/登录/查询/更新。密码散列通过模型上的 json:"-" 保证永不回显。
func MountUser(api *gin.RouterGroup, l *zap.Logger, svc *service.UserService) {
	ez := httpez.New(api.Group("/user"), l)

	httpez.POSTJSON[registerIn](ez, "/register", func(c *gin.Context, in *registerIn) (any, error) {
		u, err := svc.Register(c.Request.Context(), in.Phone, in.Password, in.Username)
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "register success", Data: u}, nil
	})

	httpez.POSTJSON[loginIn](ez, "/login", func(c *gin.Context, in *loginIn) (any, error) {
		u, err := svc.Login(c.Request.Context(), in.Phone, in.Password)
		if err != nil {
			return nil, err
		}
		return httpez.Result{Msg: "login success", Data: u}, nil
	})

	ez.GET("/me", func(c *gin.Context) (any, error) {
		id, err := httpez.QueryID(c, "userId")
		if err != nil {
			return nil, err
		}
		return svc.GetByID(c.Request.Context(), id)
	})

	httpez.PUTJSON[service.UpdateUserInput](ez, "/update", func(c *gin.Context, in *service.UpdateUserInput) (any, error) {
		id, err := httpez.QueryID(c, "userId")
		if err != nil {
			return nil, err
		}
		return svc.Update(c.Request.Context(), id, *in)
	})
}
