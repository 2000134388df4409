package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"github.com/sirupsen/logrus"

	"stayease-backend/models"
)

const listingKey = "stayease:properties:all"

// ListingCache holds the full listing collection so searches can filter in
// memory instead of reloading every property per request.
// A fill is tagged with the generation read before loading; Set drops it when
// an Invalidate happened in between.
type ListingCache interface {
	Get() ([]models.Property, bool)
	Generation() uint64
	Set(generation uint64, properties []models.Property) bool
	Invalidate()
}

type Options struct {
	LocalTTL      time.Duration
	RemoteTTL     time.Duration
	MemcachedHost string
}

type listingCache struct {
	mu         sync.Mutex
	generation uint64

	local     *ccache.Cache[[]models.Property]
	remote    *memcache.Client
	localTTL  time.Duration
	remoteTTL time.Duration
	log       *logrus.Logger
}

// NewListingCache builds a two-level cache: an in-process ccache and, when a
// memcached host is configured, a shared memcached tier behind it.
func NewListingCache(opts Options, log *logrus.Logger) ListingCache {
	if opts.LocalTTL <= 0 {
		opts.LocalTTL = 5 * time.Minute
	}
	if opts.RemoteTTL <= 0 {
		opts.RemoteTTL = 15 * time.Minute
	}
	c := &listingCache{
		local:     ccache.New(ccache.Configure[[]models.Property]().MaxSize(16)),
		localTTL:  opts.LocalTTL,
		remoteTTL: opts.RemoteTTL,
		log:       log,
	}
	if opts.MemcachedHost != "" {
		c.remote = memcache.New(opts.MemcachedHost)
		log.WithField("host", opts.MemcachedHost).Info("listing cache: memcached tier enabled")
	}
	return c
}

func (c *listingCache) Get() ([]models.Property, bool) {
	if item := c.local.Get(listingKey); item != nil && !item.Expired() {
		return item.Value(), true
	}
	if c.remote == nil {
		return nil, false
	}

	generation := c.Generation()
	item, err := c.remote.Get(listingKey)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			c.log.WithError(err).Warn("listing cache: memcached get failed")
		}
		return nil, false
	}
	var properties []models.Property
	if err := json.Unmarshal(item.Value, &properties); err != nil {
		c.log.WithError(err).Warn("listing cache: corrupt memcached entry")
		return nil, false
	}
	c.mu.Lock()
	if generation == c.generation {
		c.local.Set(listingKey, properties, c.localTTL)
	}
	c.mu.Unlock()
	return properties, true
}

func (c *listingCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *listingCache) Set(generation uint64, properties []models.Property) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}

	c.local.Set(listingKey, properties, c.localTTL)
	if c.remote == nil {
		return true
	}
	payload, err := json.Marshal(properties)
	if err != nil {
		c.log.WithError(err).Warn("listing cache: marshal failed")
		return true
	}
	if err := c.remote.Set(&memcache.Item{
		Key:        listingKey,
		Value:      payload,
		Expiration: int32(c.remoteTTL / time.Second),
	}); err != nil {
		c.log.WithError(err).Warn("listing cache: memcached set failed")
	}
	return true
}

func (c *listingCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++

	c.local.Delete(listingKey)
	if c.remote == nil {
		return
	}
	if err := c.remote.Delete(listingKey); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		c.log.WithError(err).Warn("listing cache: memcached delete failed")
	}
}
