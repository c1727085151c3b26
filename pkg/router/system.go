package router

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// 系统生命周期状态
const (
	stateBuilding int32 = iota
	stateRunning
	stateTerminated
)

// System Actor 路由系统
// 构建阶段通过 Mount 注册 Actor，Run 冻结地址表并驱动整个系统
type System[M any] struct {
	// 基本信息
	name string
	id   string

	// 生命周期状态（stateBuilding → stateRunning → stateTerminated）
	state atomic.Int32

	// mountMu 保护构建阶段的挂载记录
	mountMu sync.Mutex
	// 挂载记录，按挂载顺序
	mounts []mountRecord[M]
	// nextIndex 每个地址的下一个槽位索引
	nextIndex map[string]int

	// 配置
	config *SystemConfig

	// 统计信息
	stats *statsCollector

	// 日志
	logger *slog.Logger
}

// mountRecord 一条挂载记录
type mountRecord[M any] struct {
	slot  Slot
	actor Actor[M]
}

// SystemConfig 系统配置
type SystemConfig struct {
	// MailboxCapacity 单个邮箱的容量上限，0 表示无界
	// 有界时队列满会阻塞发送方（背压）
	MailboxCapacity int
	// EventBufferSize 路由事件通道的缓冲大小
	EventBufferSize int
	// PanicHandler Actor panic 处理函数，nil 时使用默认日志处理
	PanicHandler func(slot Slot, recovered any)
	// Logger 自定义日志器
	Logger *slog.Logger
}

// DefaultSystemConfig 默认系统配置
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		MailboxCapacity: 0,
		EventBufferSize: 1024,
		PanicHandler:    nil, // 使用默认处理
		Logger:          nil, // 使用默认 logger
	}
}

// New 创建新的路由系统
func New[M any](name string) *System[M] {
	return NewWithConfig[M](name, DefaultSystemConfig())
}

// NewWithConfig 使用配置创建路由系统
func NewWithConfig[M any](name string, config *SystemConfig) *System[M] {
	if config == nil {
		config = DefaultSystemConfig()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &System[M]{
		name:      name,
		id:        uuid.NewString(),
		nextIndex: make(map[string]int),
		config:    config,
		stats:     newStatsCollector(),
		logger:    logger,
	}
}

// Name 返回系统名称
func (s *System[M]) Name() string {
	return s.name
}

// ID 返回系统实例的唯一标识
func (s *System[M]) ID() string {
	return s.id
}

// Mount 在 address 下挂载一个 Actor，仅构建阶段可用
//
// 同一地址可以重复挂载，每次挂载产生一个新的槽位，索引按挂载顺序
// 从 0 递增。Run 开始后调用返回 ErrSystemRunning。
func (s *System[M]) Mount(address string, actor Actor[M]) error {
	if actor == nil {
		return fmt.Errorf("mount %q: %w", address, ErrNilActor)
	}
	if s.state.Load() != stateBuilding {
		return fmt.Errorf("mount %q: %w", address, ErrSystemRunning)
	}

	s.mountMu.Lock()
	idx := s.nextIndex[address]
	s.nextIndex[address] = idx + 1

	slot := Slot{Address: address, Index: idx}
	s.mounts = append(s.mounts, mountRecord[M]{slot: slot, actor: actor})
	s.mountMu.Unlock()
	s.stats.mountedSlots.Add(1)

	s.logger.Debug("mounted actor", "system", s.name, "slot", slot.String())
	return nil
}

// Run 运行系统，阻塞直到全部 Actor 结束且事件流耗尽
//
// 冻结地址表后为每个槽位构建邮箱、Sender 与 Receiver，并启动一个
// goroutine 执行其 Actor 的 Run。observer 在调用方 goroutine 上被
// 串行调用，每条成功投递的消息恰好对应一次回调；单个来源的事件
// 保持其发送顺序，跨来源的交织顺序不保证确定。
//
// Actor panic 被就地隔离：该槽位结束，其生产端句柄被释放，其余
// Actor 与 Run 的返回值均不受影响。重复调用返回 ErrSystemRunning。
func (s *System[M]) Run(observer Observer) error {
	if !s.state.CompareAndSwap(stateBuilding, stateRunning) {
		return fmt.Errorf("run: %w", ErrSystemRunning)
	}
	if observer == nil {
		observer = func(RoutingEvent) {}
	}

	s.logger.Info("router system running",
		"system", s.name, "id", s.id, "slots", len(s.mounts))

	table := newAddressTable(s.mounts, s.config.MailboxCapacity)
	events := make(chan RoutingEvent, s.config.EventBufferSize)

	var wg sync.WaitGroup
	for i, rec := range s.mounts {
		sender := &Sender[M]{
			self:   rec.slot,
			table:  table,
			events: events,
			stats:  s.stats,
		}
		receiver := &Receiver[M]{
			self: rec.slot,
			box:  table.boxes[i],
		}
		// 每个 Sender 持有全量邮箱的生产端引用
		table.attachProducer()

		wg.Add(1)
		go s.runActor(rec, sender, receiver, &wg)
	}

	// 所有槽位 goroutine 退出后关闭事件通道，结束排空循环
	go func() {
		wg.Wait()
		close(events)
	}()

	for ev := range events {
		observer(ev)
	}

	s.state.Store(stateTerminated)
	s.logger.Info("router system terminated",
		"system", s.name, "id", s.id, "events", s.stats.routingEvents.Load())
	return nil
}

// runActor 槽位 goroutine 主体
func (s *System[M]) runActor(rec mountRecord[M], sender *Sender[M], receiver *Receiver[M], wg *sync.WaitGroup) {
	defer wg.Done()
	defer func() {
		// panic 只终止本槽位，随后照常释放句柄，
		// 依赖本 Actor 的邮箱得以关闭
		if r := recover(); r != nil {
			s.stats.recoveredPanics.Add(1)
			if s.config.PanicHandler != nil {
				s.config.PanicHandler(rec.slot, r)
			} else {
				s.logger.Error("panic in actor",
					"system", s.name,
					"slot", rec.slot.String(),
					"error", r,
					"stack", string(debug.Stack()))
			}
		}
		receiver.close()
		sender.Close()
		s.logger.Debug("actor stopped", "system", s.name, "slot", rec.slot.String())
	}()

	s.logger.Debug("actor started", "system", s.name, "slot", rec.slot.String())
	rec.actor.Run(sender, receiver)
}

// Stats 获取统计信息快照
func (s *System[M]) Stats() SystemStats {
	return s.stats.snapshot()
}

// Len 返回已挂载的槽位总数
func (s *System[M]) Len() int {
	return len(s.mounts)
}

// SlotsAt 返回 address 下已挂载的槽位数
func (s *System[M]) SlotsAt(address string) int {
	return s.nextIndex[address]
}

// Addresses 返回所有已挂载的地址，按首次挂载顺序
func (s *System[M]) Addresses() []string {
	seen := make(map[string]bool, len(s.nextIndex))
	addrs := make([]string, 0, len(s.nextIndex))
	for _, rec := range s.mounts {
		if !seen[rec.slot.Address] {
			seen[rec.slot.Address] = true
			addrs = append(addrs, rec.slot.Address)
		}
	}
	return addrs
}

// IsRunning 检查系统是否处于运行阶段
func (s *System[M]) IsRunning() bool {
	return s.state.Load() == stateRunning
}
