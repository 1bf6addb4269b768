package cache_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"insurance-server/internal/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RistrettoCache", func() {
	var (
		cacheInstance cache.Cache
		ctx           context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.When("setting and getting a value", func() {
		ginkgo.It("should store and retrieve the value correctly", func() {
			gomega.Expect(cacheInstance.Set(ctx, "test-key", "test-value", 0)).To(gomega.BeTrue())

			retrieved, found := cacheInstance.Get(ctx, "test-key")
			gomega.Expect(found).To(gomega.BeTrue())
			gomega.Expect(retrieved).To(gomega.Equal("test-value"))
		})
	})

	ginkgo.When("setting a value with TTL", func() {
		ginkgo.It("should expire the value after TTL", func() {
			ttl := 100 * time.Millisecond
			gomega.Expect(cacheInstance.Set(ctx, "test-key-ttl", "test-value-ttl", ttl)).To(gomega.BeTrue())

			_, found := cacheInstance.Get(ctx, "test-key-ttl")
			gomega.Expect(found).To(gomega.BeTrue())

			gomega.Eventually(func() bool {
				_, found := cacheInstance.Get(ctx, "test-key-ttl")
				return found
			}).WithTimeout(2 * time.Second).Should(gomega.BeFalse())
		})
	})

	ginkgo.When("deleting a value", func() {
		ginkgo.It("should remove the value from cache", func() {
			cacheInstance.Set(ctx, "test-key-delete", "test-value-delete", 0)
			cacheInstance.Delete(ctx, "test-key-delete")

			_, found := cacheInstance.Get(ctx, "test-key-delete")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("GetOrSet", func() {
		ginkgo.It("should load once and then serve the cached value", func() {
			var calls int32
			loader := func() (any, error) {
				atomic.AddInt32(&calls, 1)
				return "loaded-value", nil
			}

			value, err := cacheInstance.GetOrSet(ctx, "test-key-getorset", time.Minute, loader)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(value).To(gomega.Equal("loaded-value"))

			value, err = cacheInstance.GetOrSet(ctx, "test-key-getorset", time.Minute, loader)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(value).To(gomega.Equal("loaded-value"))
			gomega.Expect(atomic.LoadInt32(&calls)).To(gomega.Equal(int32(1)))
		})

		ginkgo.It("should not cache loader errors", func() {
			_, err := cacheInstance.GetOrSet(ctx, "failing", time.Minute, func() (any, error) {
				return nil, errors.New("boom")
			})
			gomega.Expect(err).To(gomega.MatchError("boom"))

			_, found := cacheInstance.Get(ctx, "failing")
			gomega.Expect(found).To(gomega.BeFalse())
		})

		ginkgo.It("should return the context error when cancelled", func() {
			cancelledCtx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := cacheInstance.GetOrSet(cancelledCtx, "test-key-cancelled", time.Second, func() (any, error) {
				ginkgo.Fail("loader should not be called with cancelled context")
				return nil, nil
			})
			gomega.Expect(err).To(gomega.Equal(context.Canceled))
		})

		ginkgo.It("should handle concurrent operations safely", func() {
			const numGoroutines = 10
			results := make(chan any, numGoroutines)
			errs := make(chan error, numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				go func() {
					value, err := cacheInstance.GetOrSet(ctx, "test-key-concurrent", time.Second, func() (any, error) {
						time.Sleep(10 * time.Millisecond)
						return "concurrent-value", nil
					})
					results <- value
					errs <- err
				}()
			}

			for i := 0; i < numGoroutines; i++ {
				gomega.Expect(<-errs).NotTo(gomega.HaveOccurred())
				gomega.Expect(<-results).To(gomega.Equal("concurrent-value"))
			}
		})
	})

	ginkgo.Context("DefaultConfig", func() {
		ginkgo.It("should return valid default config", func() {
			config := cache.DefaultConfig()
			gomega.Expect(config.MaxCost).To(gomega.BeNumerically(">", int64(0)))
			gomega.Expect(config.NumCounters).To(gomega.BeNumerically(">", int64(0)))
			gomega.Expect(config.BufferItems).To(gomega.BeNumerically(">", int64(0)))
		})
	})
})
