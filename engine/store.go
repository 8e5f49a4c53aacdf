package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/crossfusion/order-engine/order"
	"github.com/crossfusion/order-engine/relayer"
)

// CrossChainOrderData is the session-local bundle kept until settlement
// completes or the session expires. The secret lives only here and in the
// owning attempt.
type CrossChainOrderData struct {
	Submission *relayer.Submission
	Secret     *order.Secret
	OrderHash  string
}

// Store holds submitted order bundles for the session, keyed by order hash.
// Evicted bundles have their secret zeroed.
type Store struct {
	cache *ttlcache.Cache[string, *CrossChainOrderData]
}

func NewStore(ttl time.Duration) *Store {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *CrossChainOrderData](ttl),
	)
	cache.OnEviction(func(ctx context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *CrossChainOrderData]) {
		data := item.Value()
		if data != nil && data.Secret != nil {
			data.Secret.Zero()
		}
	})

	s := &Store{cache: cache}
	go cache.Start()
	return s
}

func (s *Store) Put(data *CrossChainOrderData) {
	s.cache.Set(data.OrderHash, data, ttlcache.DefaultTTL)
}

func (s *Store) Get(orderHash string) (*CrossChainOrderData, error) {
	item := s.cache.Get(orderHash)
	if item == nil {
		return nil, fmt.Errorf("no order found with hash %s", orderHash)
	}

	return item.Value(), nil
}

func (s *Store) Delete(orderHash string) {
	s.cache.Delete(orderHash)
}

func (s *Store) Stop() {
	s.cache.Stop()
}
