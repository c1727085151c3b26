package router

import "iter"

// Receiver 消费句柄，包装本槽位的邮箱
//
// 提供阻塞的、只进不退的单遍消息序列：邮箱为空且仍有生产者时 Recv
// 阻塞；最后一个生产者释放且队列耗尽后序列结束，此后不再产出任何
// 消息。Receiver 只能由持有它的 Actor goroutine 使用。
type Receiver[M any] struct {
	self Slot
	box  *mailbox[M]
	done bool
}

// Self 返回本 Receiver 绑定的槽位
func (r *Receiver[M]) Self() Slot {
	return r.self
}

// Recv 阻塞接收下一条消息
// 第二个返回值为 false 表示序列已结束（邮箱已关闭）
func (r *Receiver[M]) Recv() (M, bool) {
	if r.done {
		var zero M
		return zero, false
	}
	v, ok := r.box.pop()
	if !ok {
		r.done = true
	}
	return v, ok
}

// Iter 以迭代器形式消费剩余消息
//
// 用法：
//
//	for msg := range receiver.Iter() {
//		handle(msg)
//	}
//
// 迭代与 Recv 消费同一序列，提前 break 后可继续用 Recv 接收。
func (r *Receiver[M]) Iter() iter.Seq[M] {
	return func(yield func(M) bool) {
		for {
			v, ok := r.Recv()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Len 返回邮箱中当前排队的消息数（近似值，仅供观测）
func (r *Receiver[M]) Len() int {
	return r.box.len()
}

// close 释放消费端，由槽位 goroutine 在 Run 返回后调用
func (r *Receiver[M]) close() {
	r.box.closeConsumer()
}
