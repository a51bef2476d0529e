package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/inkwellhq/inkwell/pkg/internal/cache"
	"github.com/spf13/viper"
)

// The home feed trades freshness for throughput: inside the window every
// reader gets the previously rendered bytes, new posts only show up once
// the window lapses or the cache is flushed.

const feedCacheTag = "feed-index"

const defaultFeedCacheWindow = 20 * time.Second

func feedCacheKey(page int) string {
	return fmt.Sprintf("feed/index#page=%d", page)
}

func FeedCacheWindow() time.Duration {
	if window := viper.GetDuration("cache.feed_window"); window > 0 {
		return window
	}
	return defaultFeedCacheWindow
}

func GetCachedFeedPage(page int) ([]byte, bool) {
	cacheManager := cache.New[[]byte](localCache.S)
	val, err := cacheManager.Get(context.Background(), feedCacheKey(page))
	if err != nil {
		return nil, false
	}
	return val, true
}

func SetCachedFeedPage(page int, payload []byte) {
	cacheManager := cache.New[[]byte](localCache.S)
	_ = cacheManager.Set(
		context.Background(),
		feedCacheKey(page),
		payload,
		store.WithExpiration(FeedCacheWindow()),
		store.WithTags([]string{feedCacheTag}),
	)

	// Ristretto applies writes asynchronously, wait them out so readers
	// inside the window never see a half-written page.
	localCache.R.Wait()
}

func InvalidateFeedCache() {
	cacheManager := cache.New[[]byte](localCache.S)
	_ = cacheManager.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{feedCacheTag}),
	)
	localCache.R.Wait()
}
