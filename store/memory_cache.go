package store

import (
	"container/heap"
	"context"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

type expiry struct {
	key string
	at  time.Time
}

// expiryQueue là min-heap theo thời điểm hết hạn
type expiryQueue []expiry

func (q expiryQueue) Len() int           { return len(q) }
func (q expiryQueue) Less(i, j int) bool { return q[i].at.Before(q[j].at) }
func (q expiryQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *expiryQueue) Push(x any)        { *q = append(*q, x.(expiry)) }
func (q *expiryQueue) Pop() any {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]
	return item
}

// MemoryCache là Cache trong bộ nhớ, dùng khi không cấu hình Redis.
// Key hết hạn bị dọn ở mỗi lần gọi, kể cả khi không ai đọc lại key đó.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	queue   expiryQueue
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// evictExpired xóa các key đã hết hạn; gọi khi đang giữ mu
func (m *MemoryCache) evictExpired(now time.Time) {
	for m.queue.Len() > 0 && !now.Before(m.queue[0].at) {
		item := heap.Pop(&m.queue).(expiry)
		// key có thể đã được Set lại với hạn mới
		if entry, ok := m.entries[item.key]; ok && entry.expiresAt.Equal(item.at) {
			delete(m.entries, item.key)
		}
	}
}

func (m *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.evictExpired(now)

	entry := memoryEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
		heap.Push(&m.queue, expiry{key: key, at: entry.expiresAt})
	}
	m.entries[key] = entry
	return nil
}

func (m *MemoryCache) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	m.mu.Lock()
	m.evictExpired(m.now())
	entry, ok := m.entries[key]
	m.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(entry.payload, target); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	m.evictExpired(m.now())
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Len trả về số key còn hiệu lực
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictExpired(m.now())
	return len(m.entries)
}
