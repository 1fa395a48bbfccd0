package state

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrStale is returned by Slice.Load when a newer load started before
// this one finished. The result was discarded.
var ErrStale = errors.New("state: superseded by a newer request")

type Token uint64

// Sequence hands out increasing tokens; only the latest one is current.
type Sequence struct {
	n atomic.Uint64
}

func (s *Sequence) Begin() Token {
	return Token(s.n.Add(1))
}

func (s *Sequence) IsCurrent(t Token) bool {
	return Token(s.n.Load()) == t
}

// Slice holds one piece of refetchable state. The last load to start wins:
// an earlier load that resolves afterwards does not write.
type Slice[T any] struct {
	seq Sequence

	mu     sync.RWMutex
	value  T
	err    error
	loaded bool
}

// Load runs fetch and stores its result if no newer Load began meanwhile.
// A failed fetch leaves the zero value, never a partial one.
func (s *Slice[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	tok := s.seq.Begin()
	v, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seq.IsCurrent(tok) {
		var zero T
		return zero, ErrStale
	}
	if err != nil {
		var zero T
		s.value, s.err, s.loaded = zero, err, true
		return zero, err
	}
	s.value, s.err, s.loaded = v, nil, true
	return v, nil
}

// Get returns the stored value and the error of the load that produced it.
func (s *Slice[T]) Get() (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.err
}

func (s *Slice[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Set stores v directly, superseding any load in flight.
func (s *Slice[T]) Set(v T) {
	s.seq.Begin()
	s.mu.Lock()
	s.value, s.err, s.loaded = v, nil, true
	s.mu.Unlock()
}
