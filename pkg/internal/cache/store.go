package cache

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	ristrettostore "github.com/eko/gocache/store/ristretto/v4"
	"github.com/spf13/viper"
)

// PageCache holds previously assembled feed pages. It is advisory only:
// the database stays authoritative, entries never expire on their own,
// and every mutation that changes feed membership must call Clear.
type PageCache struct {
	client  *ristretto.Cache
	marshal *marshaler.Marshaler
}

func NewPageCache() (*PageCache, error) {
	maxCost := viper.GetInt64("cache.max_cost")
	if maxCost <= 0 {
		maxCost = 32 << 20
	}

	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100_000,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	manager := cache.New[any](ristrettostore.NewRistretto(client))

	return &PageCache{
		client:  client,
		marshal: marshaler.New(manager),
	}, nil
}

// FeedPageKey derives the cache key from the request parameters, so two
// requests for the same page of the same feed always share an entry.
func FeedPageKey(scope, filter string, page int) string {
	return fmt.Sprintf("feed:%s:%s:page=%d", scope, filter, page)
}

func (v *PageCache) Set(ctx context.Context, key string, value any) error {
	if err := v.marshal.Set(ctx, key, value); err != nil {
		return err
	}
	// Ristretto applies writes asynchronously; wait so the entry serves
	// the very next read.
	v.client.Wait()
	return nil
}

// Get unmarshals the entry into a fresh copy of into. A miss is reported
// through the boolean, never as an error.
func (v *PageCache) Get(ctx context.Context, key string, into any) (any, bool) {
	out, err := v.marshal.Get(ctx, key, into)
	if err != nil {
		return nil, false
	}
	return out, true
}

func (v *PageCache) Clear(ctx context.Context) {
	v.client.Clear()
}
