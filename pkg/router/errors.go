package router

import "errors"

// 路由错误
var (
	// ErrAddressNotFound 目标地址下没有挂载任何槽位
	ErrAddressNotFound = errors.New("address not found")
	// ErrDisconnected 目标槽位的消费端已释放（Actor 已结束）
	ErrDisconnected = errors.New("receiver disconnected")
	// ErrSenderClosed 发送句柄已通过 Close 释放
	ErrSenderClosed = errors.New("sender closed")
)

// 配置错误
var (
	// ErrSystemRunning 构建阶段已结束，不再接受变更
	ErrSystemRunning = errors.New("system already running")
	// ErrNilActor 挂载的 Actor 为 nil
	ErrNilActor = errors.New("actor cannot be nil")
)
