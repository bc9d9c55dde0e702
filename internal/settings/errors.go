package settings

import (
	"errors"
	"fmt"
)

// ErrUserAborted 用户拒绝确认, 不做任何修改
var ErrUserAborted = errors.New("aborted by user")

// IOError 文件读写失败
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError 设置文件格式错误
type ParseError struct {
	Path string
	Line int // 0 表示未知
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid config file %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("invalid config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// KeyNotFoundError 文件中不存在该设置项
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("setting %q does not exist", e.Key)
}
