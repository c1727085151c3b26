package router

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sender 发送句柄，绑定到一个槽位并注入其 Actor 的 Run
//
// Sender 持有冻结的地址表与全量邮箱的生产端引用，因此可以向系统内
// 任意地址单播或广播。每次成功投递都会在路由事件通道上产生一条
// RoutingEvent，from 为本槽位。
//
// 邮箱以生产端引用计数判定关闭，而 Go 无法观察"句柄不再被使用"，
// 因此不再发送的 Actor（典型如纯消费者）应尽早调用 Close 释放发送
// 能力，否则依赖邮箱关闭收尾的下游会一直等到本 Actor 结束。Run
// 返回后运行时会自动补一次 Close。
type Sender[M any] struct {
	self   Slot
	table  *addressTable[M]
	events chan<- RoutingEvent
	stats  *statsCollector
	closed atomic.Bool
}

// Self 返回本 Sender 绑定的槽位
func (s *Sender[M]) Self() Slot {
	return s.self
}

// Send 单播：向 address 下轮询选出的一个槽位投递 msg
//
// 地址未挂载返回 ErrAddressNotFound，不产生事件。轮询游标为该地址
// 全局共享，连续 N 次单播（无论来自哪些 Sender）依次命中 N 个不同
// 槽位。目标消费端已释放时返回 ErrDisconnected，游标照常前进。
func (s *Sender[M]) Send(address string, msg M) error {
	if s.closed.Load() {
		return fmt.Errorf("send to %q: %w", address, ErrSenderClosed)
	}
	g, ok := s.table.group(address)
	if !ok {
		return fmt.Errorf("send to %q: %w", address, ErrAddressNotFound)
	}
	s.stats.sends.Add(1)

	idx := g.next()
	to := Slot{Address: address, Index: idx}
	if err := g.boxes[idx].push(msg); err != nil {
		s.stats.failedDeliveries.Add(1)
		return fmt.Errorf("send to %s: %w", to, err)
	}
	s.stats.delivered.Add(1)
	s.emit(RoutingEvent{From: s.self, To: to})
	return nil
}

// Publish 广播：向 address 下的每个槽位按索引升序各投递一份 msg
//
// 地址未挂载返回 ErrAddressNotFound，不产生事件。单个目标投递失败
// 不影响其余目标，所有失败最终聚合为一个错误返回；成功的目标此时
// 已经收到消息。消息以值语义入队，若 M 含指针则各目标共享底层数据，
// 接收方不得修改。
func (s *Sender[M]) Publish(address string, msg M) error {
	if s.closed.Load() {
		return fmt.Errorf("publish to %q: %w", address, ErrSenderClosed)
	}
	g, ok := s.table.group(address)
	if !ok {
		return fmt.Errorf("publish to %q: %w", address, ErrAddressNotFound)
	}
	s.stats.publishes.Add(1)

	var errs []error
	for idx, box := range g.boxes {
		to := Slot{Address: address, Index: idx}
		if err := box.push(msg); err != nil {
			s.stats.failedDeliveries.Add(1)
			errs = append(errs, fmt.Errorf("publish to %s: %w", to, err))
			continue
		}
		s.stats.delivered.Add(1)
		s.emit(RoutingEvent{From: s.self, To: to})
	}
	return errors.Join(errs...)
}

// Close 提前释放发送能力，幂等
//
// 释放本 Sender 在所有邮箱上的生产端句柄；当某个邮箱因此失去最后
// 一个生产者时即告关闭，其 Receiver 的序列随之结束。之后的
// Send/Publish 返回 ErrSenderClosed。
func (s *Sender[M]) Close() {
	if s.closed.CompareAndSwap(false, true) {
		s.table.detachProducer()
	}
}

// emit 投递完成后上报一条路由事件
// 同一 Sender 的事件按投递顺序进入通道，保证观察者侧的单源有序
func (s *Sender[M]) emit(ev RoutingEvent) {
	s.stats.routingEvents.Add(1)
	s.events <- ev
}
