package response

const (
	CodeSuccess  = 0
	CodeBusiness = 1
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func New(code int, msg string, data any) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
		Data: data,
	}
}

// With overrides the response code, used to surface business codes.
func (r *Response) With(code int) *Response {
	r.Code = code
	return r
}

func Success(data any, msg ...string) *Response {
	m := "success"
	if len(msg) > 0 {
		m = msg[0]
	}
	return New(CodeSuccess, m, data)
}

func BusinessError(msg string, data ...any) *Response {
	var d any
	if len(data) > 0 {
		d = data[0]
	}
	return New(CodeBusiness, msg, d)
}
