package apperror

import (
	"errors"
	"fmt"
)

// Kind 业务错误分类，Handler 层据此映射 HTTP 状态码
type Kind int

const (
	KindInternal     Kind = iota // 未预期的上游失败 → 500
	KindValidation               // 参数/格式校验失败 → 400
	KindUnauthorized             // 未认证 → 401
	KindForbidden                // 权限/归属规则不满足 → 403
	KindNotFound                 // 资源不存在或已软删除 → 404
	KindConflict                 // 唯一约束冲突 → 409
)

// Error 带分类的业务错误
// 约定：Service 层只返回 *Error 或原样透传，Handler 层统一映射。
type Error struct {
	Kind    Kind
	Message string
	Err     error // 可选的底层错误
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is 同 Kind 且同 Message 视为同一错误，支持 errors.Is 对哨兵错误的比较
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && (t.Message == "" || e.Message == t.Message)
}

// ── 构造函数 ──

// Validationf 400 参数校验错误
func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf 404 资源不存在
func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbiddenf 403 权限不足
func Forbiddenf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// Conflictf 409 唯一约束冲突
func Conflictf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized 401 未认证
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Internalf 500 内部错误（包装底层错误）
func Internalf(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf 提取错误分类；非 *Error 一律视为 Internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf 提取面向用户的错误消息；非 *Error 返回兜底文案
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "服务器内部错误"
}
