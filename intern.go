package jvmdesc

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultInternerSize is the cache capacity used when none is given.
const DefaultInternerSize = 1024

// Interner memoizes parsed method descriptors by their descriptor string.
// It is purely an optimization: correctness never depends on a hit, and two
// goroutines racing to parse the same string may both parse it, producing
// equal values. Safe for concurrent use. Parse failures are not cached.
type Interner struct {
	cache *lru.Cache[string, MethodTypeDesc]
}

// NewInterner creates an interner holding up to size descriptors. A size of
// zero or less uses DefaultInternerSize.
func NewInterner(size int) (*Interner, error) {
	if size <= 0 {
		size = DefaultInternerSize
	}
	cache, err := lru.New[string, MethodTypeDesc](size)
	if err != nil {
		return nil, err
	}
	return &Interner{cache: cache}, nil
}

// OfDescriptor parses descriptor, serving repeated strings from the cache.
func (in *Interner) OfDescriptor(descriptor string) (MethodTypeDesc, error) {
	if d, ok := in.cache.Get(descriptor); ok {
		return d, nil
	}
	d, err := OfDescriptor(descriptor)
	if err != nil {
		return MethodTypeDesc{}, err
	}
	in.cache.Add(descriptor, d)
	return d, nil
}

// Len returns the number of cached descriptors.
func (in *Interner) Len() int { return in.cache.Len() }
