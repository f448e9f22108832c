package caching_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteforge-dev/siteforge/internal/infra/caching"
)

func TestImplement(t *testing.T) {
	cases := []struct {
		name string
		cfg  caching.Config
		want bool
	}{
		{"redis", caching.Config{Provider: caching.ProviderRedis, Endpoint: "redis.internal:6379"}, true},
		{"redis missing endpoint", caching.Config{Provider: caching.ProviderRedis}, false},
		{"memcached", caching.Config{Provider: caching.ProviderMemcached, Endpoint: "mc.internal:11211"}, true},
		{"elasticache complete", caching.Config{Provider: caching.ProviderElastiCache, ClusterID: "cms-cache", Region: "us-east-1"}, true},
		{"elasticache missing region", caching.Config{Provider: caching.ProviderElastiCache, ClusterID: "cms-cache"}, false},
		{"custom", caching.Config{Provider: caching.ProviderCustom, Endpoint: "cache.internal:6379"}, true},
		{"unsupported", caching.Config{Provider: "hazelcast", Endpoint: "x"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, caching.NewService(tc.cfg).Implement(context.Background()))
		})
	}
}

func TestMetrics_Invariants(t *testing.T) {
	svc := caching.NewService(caching.Config{Provider: caching.ProviderRedis, Endpoint: "redis.internal:6379"})

	m := svc.Metrics(context.Background())
	assert.InDelta(t, 1.0, m.Performance.HitRate+m.Performance.MissRate, 1e-9)
	assert.Equal(t, m.Errors.TotalErrors, m.Errors.ConnectionErrors+m.Errors.TimeoutErrors+m.Errors.MemoryErrors)
	assert.LessOrEqual(t, m.Memory.UsedMB, m.Memory.MaxMB)
}

func TestHealth_NextCheckAfterLastCheck(t *testing.T) {
	svc := caching.NewService(caching.Config{Provider: caching.ProviderMemcached, Endpoint: "mc.internal:11211"})

	report := svc.Health(context.Background())
	assert.True(t, report.NextCheck.After(report.LastCheck))
	require.NotEmpty(t, report.Checks)
}

func TestRecommendations(t *testing.T) {
	assert.Empty(t, caching.NewService(caching.Config{Provider: "hazelcast"}).Recommendations(context.Background()))

	svc := caching.NewService(caching.Config{Provider: caching.ProviderRedis, Endpoint: "redis.internal:6379"})
	recs := svc.Recommendations(context.Background())
	require.NotEmpty(t, recs)
	// Hit rate in the snapshot is below 90%, so the warm-up suggestion is
	// always present for a valid config.
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "warm-popular")
}

func TestCreateEvictionPolicy_Defaults(t *testing.T) {
	svc := caching.NewService(caching.Config{Provider: caching.ProviderRedis, Endpoint: "redis.internal:6379"})

	policy := svc.CreateEvictionPolicy()
	assert.Equal(t, "allkeys-lru", policy.Policy)
	assert.Equal(t, policy, svc.CreateEvictionPolicy())
}

func TestConcurrentReads(t *testing.T) {
	svc := caching.NewService(caching.Config{Provider: caching.ProviderRedis, Endpoint: "redis.internal:6379"})

	var wg sync.WaitGroup
	results := make([]caching.Metrics, 4)
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = svc.Metrics(context.Background())
			svc.Health(context.Background())
			svc.Recommendations(context.Background())
		}()
	}
	wg.Wait()

	for _, m := range results {
		assert.InDelta(t, 1.0, m.Performance.HitRate+m.Performance.MissRate, 1e-9)
	}
}
