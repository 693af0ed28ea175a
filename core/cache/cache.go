package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thread-safe key-value store using sync.Map, with optional TTLs
// and tag-based invalidation. When a Redis client is attached via UseRedis
// the string payloads are mirrored there so multiple instances share
// catalog responses.
type Cache struct {
	m sync.Map
	// tagIndex maps tag string to the set of keys carrying it
	tagIndex sync.Map // map[string]*sync.Map
}

var (
	once     sync.Once
	instance *Cache

	redisMu     sync.RWMutex
	redisClient *redis.Client
)

// UseRedis attaches a Redis client as the shared second-level store.
// Call once at startup; a nil client disables mirroring.
func UseRedis(client *redis.Client) {
	redisMu.Lock()
	defer redisMu.Unlock()
	redisClient = client
}

func getRedis() *redis.Client {
	redisMu.RLock()
	defer redisMu.RUnlock()
	return redisClient
}

func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

// NewCache creates a new Cache instance.
func NewCache() *Cache {
	return &Cache{}
}

// cacheItem holds a value and its expiration time.
type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // Unix timestamp in nanoseconds; 0 means no expiration
}

// Set stores a value with an optional TTL (in seconds) and optional tags.
// A ttl of 0 means no expiration.
func (c *Cache) Set(key string, value interface{}, ttl int64, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(time.Duration(ttl) * time.Second).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	if len(tags) > 0 {
		c.tagKey(key, tags)
	}
	if rc := getRedis(); rc != nil {
		if s, ok := value.(string); ok {
			rc.Set(context.Background(), redisKey(key), s, time.Duration(ttl)*time.Second)
		}
	}
}

// Get retrieves a value. Returns (value, true) if found and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		if rc := getRedis(); rc != nil {
			if s, err := rc.Get(context.Background(), redisKey(key)).Result(); err == nil {
				return s, true
			}
		}
		return nil, false
	}
	item := v.(cacheItem)
	if item.ExpiresAt > 0 && time.Now().UnixNano() > item.ExpiresAt {
		c.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// Delete removes a key from the cache.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
	if rc := getRedis(); rc != nil {
		rc.Del(context.Background(), redisKey(key))
	}
}

func (c *Cache) tagKey(key string, tags []string) {
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
}

// InvalidateTags deletes every entry carrying any of the given tags.
func (c *Cache) InvalidateTags(tags []string) {
	for _, tag := range tags {
		val, ok := c.tagIndex.Load(tag)
		if !ok {
			continue
		}
		km := val.(*sync.Map)
		km.Range(func(key, _ interface{}) bool {
			c.Delete(key.(string))
			km.Delete(key)
			return true
		})
		c.tagIndex.Delete(tag)
	}
}

// PruneExpired drops all expired entries. Run periodically; expired entries
// are otherwise only dropped lazily on Get.
func (c *Cache) PruneExpired() int {
	now := time.Now().UnixNano()
	pruned := 0
	c.m.Range(func(key, value interface{}) bool {
		if item, ok := value.(cacheItem); ok {
			if item.ExpiresAt > 0 && now > item.ExpiresAt {
				c.m.Delete(key)
				pruned++
			}
		}
		return true
	})
	return pruned
}

func redisKey(key string) string {
	return fmt.Sprintf("biolink:cache:%s", key)
}
