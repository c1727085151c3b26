package config

import "errors"

// 配置校验错误
var (
	ErrInvalidName            = errors.New("invalid system name")
	ErrInvalidMailboxCapacity = errors.New("invalid mailbox capacity")
	ErrInvalidEventBufferSize = errors.New("invalid event buffer size")
	ErrInvalidLogLevel        = errors.New("invalid log level")
)

// 配置加载错误
var (
	ErrConfigFileNotFound = errors.New("configuration file not found")
	ErrUnsupportedFormat  = errors.New("unsupported configuration format")
)
