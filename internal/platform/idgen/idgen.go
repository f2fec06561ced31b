// Package idgen issues resource identifiers and employee numbers.
package idgen

import (
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// NewID returns a random opaque identifier: the 32 hex digits of a v4 uuid.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Sequence hands out 1, 2, 3, ... for the lifetime of the process.
// Numbers are never reset or reused.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next number. Running out of int64 space is a programming
// error and panics.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == math.MaxInt64 {
		panic("idgen: employee number sequence exhausted")
	}
	s.last++
	return s.last
}

// Last reports the most recently issued number, 0 if none.
func (s *Sequence) Last() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Allocator bundles the two identifier sources the store needs.
type Allocator interface {
	NewID() string
	NextEmployeeNumber() int64
}

type allocator struct {
	seq *Sequence
}

// NewAllocator returns an Allocator backed by uuid ids and a fresh Sequence.
func NewAllocator() Allocator {
	return &allocator{seq: NewSequence()}
}

func (a *allocator) NewID() string {
	return NewID()
}

func (a *allocator) NextEmployeeNumber() int64 {
	return a.seq.Next()
}
