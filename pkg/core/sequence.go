package core

import (
	"bytedata/pkg/common"
	"bytedata/pkg/core/memory"
	"errors"
	"fmt"
)

var (
	ErrEmpty        = errors.New("sequence is empty")
	ErrUnknownKind  = errors.New("unknown representation")
	ErrViewMismatch = errors.New("sorted views differ")
)

// Sequence abstracts over the in-memory representations of the record set.
type Sequence interface {
	Kind() string
	Len() int
	At(i int) common.Value
	Sort()
	Sorted() bool
	Values() []common.Value
}

const (
	KindArray = "array"
	KindList  = "list"
	KindTree  = "btree"
)

type SequenceOptions struct {
	TreeDegree int
}

func NewSequence(kind string, values []common.Value, opts SequenceOptions) (Sequence, error) {
	switch kind {
	case KindArray:
		return memory.NewArray(values), nil
	case KindList:
		return memory.NewList(values), nil
	case KindTree:
		degree := opts.TreeDegree
		if degree < 2 {
			degree = 32
		}
		return memory.NewTree(degree, values), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Search returns the index of key. Unsorted sequences are scanned linearly and
// yield the first match; sorted ones are binary searched and yield the lowest match.
func Search(seq Sequence, key common.Value) (int, bool) {
	if !seq.Sorted() {
		for i := 0; i < seq.Len(); i++ {
			if seq.At(i) == key {
				return i, true
			}
		}
		return -1, false
	}

	lo, hi := 0, seq.Len()
	for lo < hi {
		mid := lo + (hi-lo)/2
		if seq.At(mid) < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < seq.Len() && seq.At(lo) == key {
		return lo, true
	}
	return -1, false
}

// MinMax scans the sequence once.
func MinMax(seq Sequence) (common.Value, common.Value, error) {
	n := seq.Len()
	if n == 0 {
		return 0, 0, ErrEmpty
	}
	lo := seq.At(0)
	hi := lo
	for i := 1; i < n; i++ {
		v := seq.At(i)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, nil
}

// VerifySame checks that every sequence holds the same values in the same order.
func VerifySame(seqs []Sequence) error {
	if len(seqs) < 2 {
		return nil
	}
	ref := seqs[0]
	for _, s := range seqs[1:] {
		if s.Len() != ref.Len() {
			return fmt.Errorf("%w: %s has %d values, %s has %d", ErrViewMismatch, ref.Kind(), ref.Len(), s.Kind(), s.Len())
		}
		for i := 0; i < ref.Len(); i++ {
			if s.At(i) != ref.At(i) {
				return fmt.Errorf("%w: %s[%d]=%d, %s[%d]=%d", ErrViewMismatch, ref.Kind(), i, ref.At(i), s.Kind(), i, s.At(i))
			}
		}
	}
	return nil
}
