package config

import (
	"errors"
	"fmt"
)

var (
	ErrLoginNotInitialized = errors.New("login info is not initialized")
	ErrHeartbeatInterval   = errors.New("heartbeat_interval <= 0")
	ErrHeartbeatTimeout    = errors.New("heartbeat_timeout < heartbeat_interval")
	ErrLocalPortMissing    = errors.New("local_port not found")
)

// FileParseError 配置文件不存在、不可读或格式错误
type FileParseError struct {
	Path string
	Err  error
}

func (e *FileParseError) Error() string {
	return fmt.Sprintf("config file %s parse failed: %v", e.Path, e.Err)
}

func (e *FileParseError) Unwrap() error {
	return e.Err
}

// InvariantViolation 解析后字段关系校验失败
type InvariantViolation struct {
	Section string
	Err     error
}

func (e *InvariantViolation) Error() string {
	if e.Section == CommonSection {
		return fmt.Sprintf("section [%s] error: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("proxy [%s] error: %v", e.Section, e.Err)
}

func (e *InvariantViolation) Unwrap() error {
	return e.Err
}
