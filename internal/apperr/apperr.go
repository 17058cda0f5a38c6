package apperr

// 业务错误：code 跟随 envelope 错误码，Err 仅服务端记录
type Error struct {
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "application error"
}

func (e *Error) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &Error{Code: 400, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Code: 401, Msg: msg} }
func NotFound(msg string) error     { return &Error{Code: 404, Msg: msg} }
func Conflict(msg string) error     { return &Error{Code: 409, Msg: msg} }
func Internal(msg string, err error) error {
	return &Error{Code: 500, Msg: msg, Err: err}
}
