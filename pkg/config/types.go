// Package config 提供路由系统的配置加载与校验
//
// 配置来源优先级：默认值 < 配置文件（YAML/JSON）< 环境变量。
// 加载完成后统一经过 Validate 校验，再通过 [Config.SystemConfig]
// 转换为 router 包可用的运行时配置。
package config

import (
	"log/slog"
	"os"

	"github.com/lwmacct/260829-go-pkg-router/pkg/router"
)

// LogLevel 日志级别
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// String 返回日志级别的字符串表示
func (l LogLevel) String() string {
	return string(l)
}

// IsValid 检查日志级别是否合法
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// Slog 转换为 slog 的级别表示
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config 路由系统的完整配置
type Config struct {
	// Name 系统名称
	Name string `yaml:"name" json:"name"`
	// MailboxCapacity 单个邮箱容量上限，0 表示无界
	MailboxCapacity int `yaml:"mailbox_capacity" json:"mailbox_capacity"`
	// EventBufferSize 路由事件通道缓冲大小
	EventBufferSize int `yaml:"event_buffer_size" json:"event_buffer_size"`
	// LogLevel 日志级别
	LogLevel LogLevel `yaml:"log_level" json:"log_level"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Name:            "router",
		MailboxCapacity: 0,
		EventBufferSize: 1024,
		LogLevel:        LogLevelInfo,
	}
}

// Validate 校验配置合法性
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrInvalidName
	}
	if c.MailboxCapacity < 0 {
		return ErrInvalidMailboxCapacity
	}
	if c.EventBufferSize < 1 {
		return ErrInvalidEventBufferSize
	}
	if !c.LogLevel.IsValid() {
		return ErrInvalidLogLevel
	}
	return nil
}

// Logger 按配置的日志级别构建 slog 日志器
func (c *Config) Logger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.LogLevel.Slog(),
	})
	return slog.New(handler)
}

// SystemConfig 转换为 router 包的运行时配置
func (c *Config) SystemConfig() *router.SystemConfig {
	return &router.SystemConfig{
		MailboxCapacity: c.MailboxCapacity,
		EventBufferSize: c.EventBufferSize,
		Logger:          c.Logger(),
	}
}
