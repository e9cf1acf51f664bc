package token_bucket

import (
	"sync"
	"time"
)

// TokenBucket - классический token bucket с дробным накоплением токенов.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64 // токенов в секунду
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(time.Now())

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
}

// Keyed держит отдельный bucket на каждый ключ (actor id или адрес клиента),
// чтобы один покупатель не выедал лимит всем остальным.
type Keyed struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration

	mu      sync.Mutex
	buckets map[string]*keyedEntry
}

type keyedEntry struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyed(capacity int, refillRate float64, idleTTL time.Duration) *Keyed {
	return &Keyed{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		buckets:    make(map[string]*keyedEntry),
	}
}

func (k *Keyed) AllowKey(key string) bool {
	now := time.Now()

	k.mu.Lock()
	entry, ok := k.buckets[key]
	if !ok {
		entry = &keyedEntry{bucket: NewTokenBucket(k.capacity, k.refillRate)}
		k.buckets[key] = entry
	}
	entry.lastSeen = now
	k.mu.Unlock()

	return entry.bucket.Allow()
}

// Evict удаляет bucket'ы, к которым не обращались дольше idleTTL.
// Возвращает количество удаленных ключей.
func (k *Keyed) Evict() int {
	now := time.Now()

	k.mu.Lock()
	defer k.mu.Unlock()

	removed := 0
	for key, entry := range k.buckets {
		if now.Sub(entry.lastSeen) > k.idleTTL {
			delete(k.buckets, key)
			removed++
		}
	}
	return removed
}

func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}
