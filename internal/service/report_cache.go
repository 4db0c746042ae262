package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/yourusername/bet-ledger/internal/metrics"
)

// ReportCache keeps computed reports in memory until the next bet write or
// until the TTL expires. A zero TTL disables caching.
type ReportCache struct {
	cache *cache.Cache
	ttl   time.Duration
	mu    sync.RWMutex
}

// NewReportCache creates a new report cache
func NewReportCache(ttl time.Duration) *ReportCache {
	rc := &ReportCache{ttl: ttl}
	if ttl > 0 {
		rc.cache = cache.New(ttl, ttl*2)
	}
	return rc
}

// reportKey builds a deterministic key from a report name and its parameters.
func reportKey(report string, params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(report)
	for _, k := range keys {
		fmt.Fprintf(&b, ":%s=%v", k, params[k])
	}
	return b.String()
}

// Get retrieves a cached report
func (rc *ReportCache) Get(report, key string) (interface{}, bool) {
	if rc == nil || rc.cache == nil {
		return nil, false
	}
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	value, found := rc.cache.Get(key)
	metrics.RecordReportCache(report, found)
	return value, found
}

// Set stores a report
func (rc *ReportCache) Set(key string, value interface{}) {
	if rc == nil || rc.cache == nil {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.cache.Set(key, value, rc.ttl)
}

// Invalidate drops every cached report
func (rc *ReportCache) Invalidate() {
	if rc == nil || rc.cache == nil {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.cache.Flush()
}

// Len returns the number of cached reports, expired ones included
func (rc *ReportCache) Len() int {
	if rc == nil || rc.cache == nil {
		return 0
	}
	return rc.cache.ItemCount()
}
