package router

import (
	"sync/atomic"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════
// 系统统计信息
// ═══════════════════════════════════════════════════════════════════════════

// SystemStats 系统运行统计的一次性快照
type SystemStats struct {
	// MountedSlots 已挂载的槽位总数
	MountedSlots int64
	// Sends 单播调用次数（含失败）
	Sends int64
	// Publishes 广播调用次数（含失败）
	Publishes int64
	// Delivered 成功投递的消息份数（广播按目标计数）
	Delivered int64
	// FailedDeliveries 因消费端释放而失败的投递次数
	FailedDeliveries int64
	// RoutingEvents 已上报的路由事件数
	RoutingEvents int64
	// RecoveredPanics Actor Run 中被隔离的 panic 次数
	RecoveredPanics int64
	// StartedAt 系统创建时间
	StartedAt time.Time
}

// statsCollector 统计收集器，所有计数器使用原子操作
type statsCollector struct {
	mountedSlots     atomic.Int64
	sends            atomic.Int64
	publishes        atomic.Int64
	delivered        atomic.Int64
	failedDeliveries atomic.Int64
	routingEvents    atomic.Int64
	recoveredPanics  atomic.Int64
	startedAt        time.Time
}

func newStatsCollector() *statsCollector {
	return &statsCollector{startedAt: time.Now()}
}

// snapshot 返回线程安全的统计快照
func (c *statsCollector) snapshot() SystemStats {
	return SystemStats{
		MountedSlots:     c.mountedSlots.Load(),
		Sends:            c.sends.Load(),
		Publishes:        c.publishes.Load(),
		Delivered:        c.delivered.Load(),
		FailedDeliveries: c.failedDeliveries.Load(),
		RoutingEvents:    c.routingEvents.Load(),
		RecoveredPanics:  c.recoveredPanics.Load(),
		StartedAt:        c.startedAt,
	}
}
