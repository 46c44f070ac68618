package errorx

import (
	"errors"
	"net/http"
)

// Kind 错误分类, 决定返回给客户端的 HTTP 状态码
type Kind int

const (
	Internal Kind = iota
	Validation
	NotFound
	Conflict
	InvalidCursor
	Unauthenticated
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case InvalidCursor:
		return "invalid_cursor"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// Status 对应的 HTTP 状态码
func (k Kind) Status() int {
	switch k {
	case Validation, Conflict, InvalidCursor:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Msg + ": " + e.err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is 同 Kind 同 Msg 视为同一个错误, 便于 errors.Is 匹配带 cause 的副本
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == e.Msg
}

// With 附带底层原因, 原因只写日志不返回客户端
func (e *Error) With(cause error) *Error {
	return &Error{Kind: e.Kind, Msg: e.Msg, err: cause}
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func NewValidation(msg string) *Error {
	return New(Validation, msg)
}

func NewNotFound(msg string) *Error {
	return New(NotFound, msg)
}

func NewConflict(msg string) *Error {
	return New(Conflict, msg)
}

func NewUnauthenticated(msg string) *Error {
	return New(Unauthenticated, msg)
}

// KindOf 非 *Error 一律视为 Internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
