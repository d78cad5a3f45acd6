package monitor

import (
	"sync/atomic"
	"time"
)

// OpStats counts the operations of a run and the time spent in each.
type OpStats struct {
	searchCount uint64
	hitCount    uint64
	minMaxCount uint64
	sortCount   uint64

	searchNanos uint64
	minMaxNanos uint64
	sortNanos   uint64
}

func NewOpStats() *OpStats {
	return &OpStats{}
}

func (s *OpStats) RecordSearch(d time.Duration, found bool) {
	atomic.AddUint64(&s.searchCount, 1)
	atomic.AddUint64(&s.searchNanos, uint64(d.Nanoseconds()))
	if found {
		atomic.AddUint64(&s.hitCount, 1)
	}
}

func (s *OpStats) RecordMinMax(d time.Duration) {
	atomic.AddUint64(&s.minMaxCount, 1)
	atomic.AddUint64(&s.minMaxNanos, uint64(d.Nanoseconds()))
}

func (s *OpStats) RecordSort(d time.Duration) {
	atomic.AddUint64(&s.sortCount, 1)
	atomic.AddUint64(&s.sortNanos, uint64(d.Nanoseconds()))
}

func (s *OpStats) Searches() uint64 {
	return atomic.LoadUint64(&s.searchCount)
}

func (s *OpStats) Hits() uint64 {
	return atomic.LoadUint64(&s.hitCount)
}

func (s *OpStats) MinMaxes() uint64 {
	return atomic.LoadUint64(&s.minMaxCount)
}

func (s *OpStats) Sorts() uint64 {
	return atomic.LoadUint64(&s.sortCount)
}

func (s *OpStats) SearchTime() time.Duration {
	return time.Duration(atomic.LoadUint64(&s.searchNanos))
}

func (s *OpStats) MinMaxTime() time.Duration {
	return time.Duration(atomic.LoadUint64(&s.minMaxNanos))
}

func (s *OpStats) SortTime() time.Duration {
	return time.Duration(atomic.LoadUint64(&s.sortNanos))
}

func (s *OpStats) GetHitRatio() float64 {
	searches := atomic.LoadUint64(&s.searchCount)
	hits := atomic.LoadUint64(&s.hitCount)

	if searches == 0 {
		return 0.0
	}
	return float64(hits) / float64(searches)
}
