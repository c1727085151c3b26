package router

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMounts() []mountRecord[int] {
	return []mountRecord[int]{
		{slot: Slot{Address: "A", Index: 0}},
		{slot: Slot{Address: "B", Index: 0}},
		{slot: Slot{Address: "B", Index: 1}},
		{slot: Slot{Address: "B", Index: 2}},
	}
}

func TestAddressTable_Build(t *testing.T) {
	table := newAddressTable(testMounts(), 0)

	require.Len(t, table.boxes, 4)

	a, ok := table.group("A")
	require.True(t, ok)
	assert.Len(t, a.boxes, 1)

	b, ok := table.group("B")
	require.True(t, ok)
	assert.Len(t, b.boxes, 3)

	_, ok = table.group("C")
	assert.False(t, ok)
}

func TestAddressGroup_RoundRobinSequential(t *testing.T) {
	table := newAddressTable(testMounts(), 0)
	g, ok := table.group("B")
	require.True(t, ok)

	assert.Equal(t, 0, g.next())
	assert.Equal(t, 1, g.next())
	assert.Equal(t, 2, g.next())
	assert.Equal(t, 0, g.next())
}

// 并发调用下游标仍等价于单一线性计数器：
// 每 3 次连续取值覆盖 3 个索引各一次
func TestAddressGroup_RoundRobinConcurrent(t *testing.T) {
	table := newAddressTable(testMounts(), 0)
	g, ok := table.group("B")
	require.True(t, ok)

	const workers = 4
	const perWorker = 300

	counts := make([]int64, 3)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 3)
			for i := 0; i < perWorker; i++ {
				local[g.next()]++
			}
			mu.Lock()
			for i, n := range local {
				counts[i] += n
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	// workers*perWorker 可被 3 整除，公平轮询下每个索引分到等量
	want := int64(workers * perWorker / 3)
	for i, n := range counts {
		assert.Equal(t, want, n, "index %d", i)
	}
}

func TestAddressTable_ProducerRefcount(t *testing.T) {
	table := newAddressTable(testMounts(), 0)

	table.attachProducer()
	table.attachProducer()
	table.detachProducer()

	// 仍有一个生产者，push 正常
	require.NoError(t, table.boxes[0].push(1))

	table.detachProducer()

	// 全部释放后邮箱关闭，已入队的消息仍可弹出
	v, ok := table.boxes[0].pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = table.boxes[0].pop()
	assert.False(t, ok)
}
