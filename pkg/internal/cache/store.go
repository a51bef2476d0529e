package cache

import (
	"github.com/dgraph-io/ristretto"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

var (
	R *ristretto.Cache
	S *ristretto_store.RistrettoStore
)

func NewStore() error {
	var err error
	R, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 27,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	S = ristretto_store.NewRistretto(R)
	return nil
}
