package router

import "sync"

// ═══════════════════════════════════════════════════════════════════════════
// 通用观测与消费辅助
// ═══════════════════════════════════════════════════════════════════════════

// EventLog 并发安全的路由事件记录器
// 其 Observe 方法可直接作为 System.Run 的观察者传入：
//
//	log := router.NewEventLog()
//	_ = sys.Run(log.Observe)
//	for _, ev := range log.Events() {
//		fmt.Println(ev)
//	}
type EventLog struct {
	mu     sync.Mutex
	events []RoutingEvent
}

// NewEventLog 创建事件记录器
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Observe 记录一条路由事件，实现 Observer 签名
func (l *EventLog) Observe(ev RoutingEvent) {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
}

// Events 返回已记录事件的快照
func (l *EventLog) Events() []RoutingEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]RoutingEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len 返回已记录的事件数
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// From 返回来自指定槽位的事件，保持记录顺序
func (l *EventLog) From(slot Slot) []RoutingEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []RoutingEvent
	for _, ev := range l.events {
		if ev.From == slot {
			out = append(out, ev)
		}
	}
	return out
}

// MultiObserver 把多个观察者合并为一个，按传入顺序依次调用
func MultiObserver(observers ...Observer) Observer {
	return func(ev RoutingEvent) {
		for _, ob := range observers {
			ob(ev)
		}
	}
}

// Consumer 构造纯消费型 Actor
// 先释放发送能力再执行 fn，保证下游不会因本 Actor 存活而等待：
//
//	_ = sys.Mount("sink", router.Consumer(func(r *router.Receiver[int]) {
//		for v := range r.Iter() {
//			handle(v)
//		}
//	}))
func Consumer[M any](fn func(r *Receiver[M])) ActorFunc[M] {
	return func(s *Sender[M], r *Receiver[M]) {
		s.Close()
		fn(r)
	}
}

// Drain 消费 Receiver 的剩余序列并按接收顺序返回
// 阻塞直到邮箱关闭，常与 Consumer 搭配用于收集型 Actor 的收尾
func Drain[M any](r *Receiver[M]) []M {
	var out []M
	for v := range r.Iter() {
		out = append(out, v)
	}
	return out
}
