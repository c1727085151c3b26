package router

import "sync"

// mailbox 单消费者 FIFO 邮箱
//
// 生产端由系统内所有 Sender 共享，通过引用计数跟踪：最后一个生产者
// 释放后邮箱关闭，消费端随之自然结束。消费端释放（Actor 的 Run 返回）
// 后，后续投递返回 ErrDisconnected，残留消息被丢弃。
//
// capacity 为 0 表示无界队列，push 不因容量阻塞；大于 0 时队列满会
// 阻塞生产者，直到消费端腾出空间或被释放。
type mailbox[M any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	// queue 环形使用的切片队列，head 指向下一个出队位置
	queue []M
	head  int

	capacity  int
	producers int
	recvGone  bool
}

func newMailbox[M any](capacity int) *mailbox[M] {
	m := &mailbox[M]{capacity: capacity}
	m.notEmpty = sync.NewCond(&m.mu)
	m.notFull = sync.NewCond(&m.mu)
	return m
}

// addProducer 注册一个生产端句柄
func (m *mailbox[M]) addProducer() {
	m.mu.Lock()
	m.producers++
	m.mu.Unlock()
}

// dropProducer 释放一个生产端句柄
// 最后一个句柄释放后唤醒消费者，使其观察到邮箱关闭
func (m *mailbox[M]) dropProducer() {
	m.mu.Lock()
	m.producers--
	if m.producers == 0 {
		m.notEmpty.Broadcast()
	}
	m.mu.Unlock()
}

// closeConsumer 释放消费端
// 之后的 push 返回 ErrDisconnected，已入队但未消费的消息被丢弃
func (m *mailbox[M]) closeConsumer() {
	m.mu.Lock()
	m.recvGone = true
	m.queue = nil
	m.head = 0
	m.notFull.Broadcast()
	m.mu.Unlock()
}

// push 消息入队
// 有界模式下队列满会阻塞，直到有空间、或消费端已释放
func (m *mailbox[M]) push(v M) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		if m.recvGone {
			return ErrDisconnected
		}
		if m.capacity <= 0 || len(m.queue)-m.head < m.capacity {
			break
		}
		m.notFull.Wait()
	}

	m.queue = append(m.queue, v)
	m.notEmpty.Signal()
	return nil
}

// pop 阻塞出队
// 返回 false 表示邮箱已关闭（所有生产端已释放且队列耗尽）
func (m *mailbox[M]) pop() (M, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.queue) == m.head && m.producers > 0 {
		m.notEmpty.Wait()
	}

	if len(m.queue) == m.head {
		var zero M
		return zero, false
	}

	v := m.queue[m.head]
	var zero M
	m.queue[m.head] = zero // 解除引用，避免消息滞留
	m.head++
	if m.head == len(m.queue) {
		m.queue = m.queue[:0]
		m.head = 0
	}
	m.notFull.Signal()
	return v, true
}

// len 返回当前排队的消息数
func (m *mailbox[M]) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue) - m.head
}
