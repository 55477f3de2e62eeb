package dataset

import (
	"context"
	"sync"
)

// Store memoizes a Source for the lifetime of the process. The first call to
// Dataset performs the load; every later call returns the same result, error
// included, without touching the source again.
type Store struct {
	src  Source
	once sync.Once
	ds   *Dataset
	err  error
}

func NewStore(src Source) *Store {
	return &Store{src: src}
}

// Dataset returns the memoized dataset. The context only affects the call
// that performs the load.
func (s *Store) Dataset(ctx context.Context) (*Dataset, error) {
	s.once.Do(func() {
		s.ds, s.err = s.src.Load(ctx)
	})
	return s.ds, s.err
}

// Static is a Source over an already loaded dataset.
type Static struct{ DS *Dataset }

func (s Static) Load(context.Context) (*Dataset, error) { return s.DS, nil }
