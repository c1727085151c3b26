// Package router 提供基于地址路由的 Actor 运行时
//
// 每个 Actor 挂载在一个字符串地址下，同一地址可以挂载多个实例（槽位）。
// 消息通过点对点队列在 Actor 之间流动，支持两种投递方式：
//   - 单播（Send）：按地址解析后轮询选择一个槽位投递
//   - 广播（Publish）：向地址下的所有槽位各投递一份
//
// # 核心组件
//
// [System] 是运行时入口，生命周期为 构建 → 运行 → 终止：
//
//	sys := router.New[int]("demo")
//	_ = sys.Mount("A", producer)
//	_ = sys.Mount("B", consumer)
//	_ = sys.Run(func(ev router.RoutingEvent) {
//		fmt.Println(ev)
//	})
//
// [System.Mount] 只在构建阶段可用，按挂载顺序为地址分配 0 起始的槽位索引。
// [System.Run] 冻结地址表，为每个槽位启动一个 goroutine 执行
// [Actor.Run]，并在调用方 goroutine 上串行回放路由事件，直到所有
// Actor 结束、事件流耗尽后才返回。
//
// [Sender] 是注入到 Actor 的发送句柄，[Sender.Send] 单播，
// [Sender.Publish] 广播。[Receiver] 包装该槽位的邮箱，提供阻塞的
// 单遍消费序列，邮箱在最后一个生产端句柄释放后自然关闭。不再发送
// 的 Actor 应尽早调用 [Sender.Close]（或用 [Consumer] 构造），
// 否则持有句柄本身就会让下游的序列无法结束。
//
// [RoutingEvent] 记录一次完成的投递（from 槽位 → to 槽位），每条
// 投递的消息恰好对应一次观察者回调，可用于拓扑观测。
//
// # 并发模型
//
// 每个槽位独占一个 goroutine，Actor 状态归该 goroutine 私有，无需
// 加锁。地址表在 Run 开始后只读；轮询游标是唯一的跨线程可变状态，
// 使用原子计数实现，保证系统级的公平轮询。
//
// # 错误与失败隔离
//
// 路由错误（[ErrAddressNotFound]、[ErrDisconnected]）返回给发送方
// 自行处理，运行时不做重试。Actor 内部 panic 只终止该 Actor，其余
// Actor 与 Run 本身不受影响；依赖它的 Actor 会在邮箱关闭后自然
// 收尾。不提供监督重启、持久化与跨进程投递。
//
// 完整使用示例请参考 example_test.go 或运行 go doc -all。
package router
