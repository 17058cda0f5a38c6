package ez

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"echofm/internal/apperr"
	resp "echofm/internal/transport/http/response"
)

// EZ 轻封装：handler 只关心 (data, error)，envelope 与错误映射统一处理。
// 业务失败一律 HTTP 200 软失败，成败在 envelope body 里表达。
type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ { return EZ{g: g, log: l} }

// Result 让 handler 携带自定义成功提示语
type Result struct {
	Msg  string
	Data any
}

type Handler func(c *gin.Context) (any, error)

func (e EZ) GET(path string, h Handler)    { e.g.GET(path, e.wrap(h)) }
func (e EZ) POST(path string, h Handler)   { e.g.POST(path, e.wrap(h)) }
func (e EZ) PUT(path string, h Handler)    { e.g.PUT(path, e.wrap(h)) }
func (e EZ) DELETE(path string, h Handler) { e.g.DELETE(path, e.wrap(h)) }

// POSTJSON 绑定 JSON 入参后执行
func POSTJSON[T any](e EZ, path string, h func(c *gin.Context, in *T) (any, error)) {
	e.POST(path, bindJSON(h))
}

// PUTJSON 绑定 JSON 入参后执行
func PUTJSON[T any](e EZ, path string, h func(c *gin.Context, in *T) (any, error)) {
	e.PUT(path, bindJSON(h))
}

// POSTFILE 处理 multipart/form-data 单文件上传
func POSTFILE(e EZ, path, fieldName string, h func(c *gin.Context, fh *multipart.FileHeader) (any, error)) {
	e.POST(path, func(c *gin.Context) (any, error) {
		fh, err := c.FormFile(fieldName)
		if err != nil {
			return nil, apperr.BadRequest("invalid multipart form: " + err.Error())
		}
		return h(c, fh)
	})
}

func bindJSON[T any](h func(c *gin.Context, in *T) (any, error)) Handler {
	return func(c *gin.Context) (any, error) {
		var in T
		if err := c.ShouldBindJSON(&in); err != nil {
			return nil, apperr.BadRequest(bindErrMsg(err))
		}
		return h(c, &in)
	}
}

// bindErrMsg 把校验失败聚合成 "field: tag; field: tag"
func bindErrMsg(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		parts = append(parts, strings.ToLower(fe.Field())+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// ParamID 解析路径上的数字标识
func ParamID(c *gin.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid " + name)
	}
	return v, nil
}

// QueryID 解析 query 上的数字标识
func QueryID(c *gin.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid " + name)
	}
	return v, nil
}

func (e EZ) wrap(h Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := h(c)
		if err != nil {
			var ae *apperr.Error
			if errors.As(err, &ae) {
				if ae.Err != nil && e.log != nil {
					// 内部原因只落日志，不回给调用方
					e.log.Error("handler failed",
						zap.String("path", c.FullPath()),
						zap.String("msg", ae.Msg),
						zap.Error(ae.Err),
					)
				}
				c.JSON(http.StatusOK, resp.Error(ae.Code, ae.Msg))
				return
			}
			if e.log != nil {
				e.log.Error("unexpected error", zap.String("path", c.FullPath()), zap.Error(err))
			}
			c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, ""))
			return
		}
		if r, ok := data.(Result); ok {
			c.JSON(http.StatusOK, resp.Success(r.Msg, r.Data))
			return
		}
		c.JSON(http.StatusOK, resp.OK(data))
	}
}
