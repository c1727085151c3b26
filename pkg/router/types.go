package router

import "fmt"

// Actor 计算单元接口
// 实现此接口即可被挂载到 System 中
//
// Run 在专属 goroutine 上被调用且只调用一次，sender 和 receiver
// 在调用期间归该 Actor 独占。Run 返回后，该槽位的邮箱消费端被释放，
// 后续投递会收到 Disconnected 错误。
type Actor[M any] interface {
	// Run 执行 Actor 主体逻辑
	// 通过 sender 向其他地址发送消息，通过 receiver 消费自己的邮箱
	Run(sender *Sender[M], receiver *Receiver[M])
}

// ActorFunc 函数式 Actor，便于快速创建简单 Actor
type ActorFunc[M any] func(sender *Sender[M], receiver *Receiver[M])

// Run 实现 Actor 接口
func (f ActorFunc[M]) Run(sender *Sender[M], receiver *Receiver[M]) {
	f(sender, receiver)
}

// Slot 槽位标识，唯一确定一个已挂载的 Actor 实例
// Address 是挂载地址，Index 是该地址内按挂载顺序分配的 0 起始序号
// 槽位标识在 System 的整个生命周期内保持不变
type Slot struct {
	Address string
	Index   int
}

// String 返回槽位的字符串表示，如 "B[1]"
func (s Slot) String() string {
	return fmt.Sprintf("%s[%d]", s.Address, s.Index)
}

// RoutingEvent 路由事件，记录一次完成的消息投递
// 单播产生一条事件，广播对每个成功投递的目标各产生一条
type RoutingEvent struct {
	// From 发送方槽位
	From Slot
	// To 接收方槽位
	To Slot
}

// String 返回事件的字符串表示，如 "A[0] -> B[1]"
func (e RoutingEvent) String() string {
	return fmt.Sprintf("%s -> %s", e.From, e.To)
}

// Observer 路由事件观察者回调
// 由 System.Run 在调用方 goroutine 上串行调用，每条投递恰好一次
type Observer func(RoutingEvent)
