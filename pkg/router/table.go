package router

import "sync/atomic"

// addressGroup 同一地址下的全部槽位及其共享的轮询游标
// 游标是系统级的：所有发往该地址的 Sender 共用同一条轮询序列
type addressGroup[M any] struct {
	boxes  []*mailbox[M] // 按槽位索引升序
	cursor atomic.Uint64
}

// next 返回下一个轮询索引
// 原子自增取模，并发调用产生的索引序列等价于单一线性计数器
func (g *addressGroup[M]) next() int {
	return int((g.cursor.Add(1) - 1) % uint64(len(g.boxes)))
}

// addressTable 冻结后的地址表
// Run 开始时一次性构建，此后只读，跨 goroutine 共享无需加锁
type addressTable[M any] struct {
	groups map[string]*addressGroup[M]
	boxes  []*mailbox[M] // 全部邮箱，按挂载顺序
}

// newAddressTable 根据挂载记录构建地址表
// mounts 的顺序即挂载顺序，槽位索引在 Mount 时已定
func newAddressTable[M any](mounts []mountRecord[M], mailboxCapacity int) *addressTable[M] {
	t := &addressTable[M]{
		groups: make(map[string]*addressGroup[M], len(mounts)),
		boxes:  make([]*mailbox[M], 0, len(mounts)),
	}
	for _, rec := range mounts {
		box := newMailbox[M](mailboxCapacity)
		t.boxes = append(t.boxes, box)
		g, ok := t.groups[rec.slot.Address]
		if !ok {
			g = &addressGroup[M]{}
			t.groups[rec.slot.Address] = g
		}
		g.boxes = append(g.boxes, box)
	}
	return t
}

// group 解析地址
func (t *addressTable[M]) group(address string) (*addressGroup[M], bool) {
	g, ok := t.groups[address]
	return g, ok
}

// attachProducer 为一个 Sender 在所有邮箱上登记生产端句柄
// 单播与广播都可能触达任意槽位，因此每个 Sender 都持有全量句柄
func (t *addressTable[M]) attachProducer() {
	for _, box := range t.boxes {
		box.addProducer()
	}
}

// detachProducer 释放一个 Sender 的全部生产端句柄
func (t *addressTable[M]) detachProducer() {
	for _, box := range t.boxes {
		box.dropProducer()
	}
}
