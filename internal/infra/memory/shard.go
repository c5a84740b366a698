// Package memory holds the process-scoped stores for pending registrations and
// login attempts. Nothing here survives a restart.
package memory

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultShardCount is the number of independently locked buckets per store.
const DefaultShardCount = 32

type shard[V any] struct {
	mu    sync.Mutex
	items map[string]V
}

// shardedMap spreads keys over shards so that different emails never wait on the same lock.
type shardedMap[V any] struct {
	shards []*shard[V]
}

func newShardedMap[V any](count int) *shardedMap[V] {
	if count <= 0 {
		count = DefaultShardCount
	}

	shards := make([]*shard[V], count)
	for i := range shards {
		shards[i] = &shard[V]{items: make(map[string]V)}
	}

	return &shardedMap[V]{shards: shards}
}

func (m *shardedMap[V]) shardFor(key string) *shard[V] {
	return m.shards[xxhash.Sum64String(key)%uint64(len(m.shards))]
}

// update runs fn while holding the lock of the shard owning key.
func (m *shardedMap[V]) update(key string, fn func(items map[string]V)) {
	s := m.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.items)
}

// each visits every shard in turn, holding only that shard's lock.
func (m *shardedMap[V]) each(fn func(items map[string]V)) {
	for _, s := range m.shards {
		s.mu.Lock()
		fn(s.items)
		s.mu.Unlock()
	}
}

func (m *shardedMap[V]) len() int {
	total := 0
	m.each(func(items map[string]V) {
		total += len(items)
	})

	return total
}
