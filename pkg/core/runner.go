package core

import (
	"bytedata/pkg/common"
	"bytedata/pkg/config"
	"bytedata/pkg/monitor"
	"bytedata/pkg/storage"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"
)

// Runner loads the record set, queries and sorts every configured
// representation, then writes the sorted result.
type Runner struct {
	conf     *config.Config
	reporter monitor.Reporter
	stats    *monitor.OpStats
	logger   *log.Logger
}

func NewRunner(cfg *config.Config, reporter monitor.Reporter, logger *log.Logger) *Runner {
	return &Runner{
		conf:     cfg,
		reporter: reporter,
		stats:    monitor.NewOpStats(),
		logger:   logger,
	}
}

func (r *Runner) Stats() *monitor.OpStats {
	return r.stats
}

func (r *Runner) Run(key common.Value) error {
	values, err := r.load()
	if err != nil {
		return err
	}

	seqs := make([]Sequence, 0, len(r.conf.Run.Representations))
	for _, kind := range r.conf.Run.Representations {
		seq, err := NewSequence(kind, values, SequenceOptions{TreeDegree: r.conf.Run.TreeDegree})
		if err != nil {
			return err
		}
		r.exercise(seq, key)
		seqs = append(seqs, seq)
	}
	if err := VerifySame(seqs); err != nil {
		return err
	}

	var sorted []common.Value
	if len(seqs) > 0 {
		sorted = seqs[0].Values()
	} else {
		sorted = slices.Sorted(slices.Values(values))
	}

	var errs []error
	if err := r.save(sorted); err != nil {
		r.logger.Printf("[Runner] Save failed: %v", err)
		errs = append(errs, err)
	}
	if r.conf.Snapshot.Path != "" {
		if err := r.snapshot(sorted); err != nil {
			r.logger.Printf("[Snapshot] Failed: %v", err)
			errs = append(errs, err)
		}
	}

	r.summary()
	return errors.Join(errs...)
}

func (r *Runner) load() ([]common.Value, error) {
	start := time.Now()
	values, err := storage.LoadValues(r.conf.Data.Path)
	r.reporter.Duration("load "+r.conf.Data.Path, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	r.reporter.Result("Loaded %d values from %s", len(values), r.conf.Data.Path)
	return values, nil
}

// exercise runs the unsorted and sorted query phases on one representation.
func (r *Runner) exercise(seq Sequence, key common.Value) {
	r.search(seq, key)
	r.minMax(seq)
	r.sort(seq)
	r.search(seq, key)
	r.minMax(seq)
}

func (r *Runner) search(seq Sequence, key common.Value) {
	start := time.Now()
	idx, found := Search(seq, key)
	d := time.Since(start)

	r.stats.RecordSearch(d, found)
	r.reporter.Duration("search in "+seq.Kind(), d)
	if found {
		r.reporter.Result("Value '%d' found in %s at index %d", key, seq.Kind(), idx)
	} else {
		r.reporter.Result("Value '%d' not found in %s", key, seq.Kind())
	}
}

func (r *Runner) minMax(seq Sequence) {
	start := time.Now()
	lo, hi, err := MinMax(seq)
	d := time.Since(start)

	if errors.Is(err, ErrEmpty) {
		r.reporter.Result("The %s is empty", seq.Kind())
		return
	}
	r.stats.RecordMinMax(d)
	r.reporter.Duration("min and max in "+seq.Kind(), d)
	r.reporter.Result("Minimum value in %s: %d", seq.Kind(), lo)
	r.reporter.Result("Maximum value in %s: %d", seq.Kind(), hi)
}

func (r *Runner) sort(seq Sequence) {
	start := time.Now()
	seq.Sort()
	d := time.Since(start)

	r.stats.RecordSort(d)
	r.reporter.Duration("sort "+seq.Kind(), d)
}

func (r *Runner) save(sorted []common.Value) error {
	path := r.conf.SortedPath()
	start := time.Now()
	err := storage.SaveValues(path, sorted)
	r.reporter.Duration("save "+path, time.Since(start))
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	r.reporter.Result("Wrote %d sorted values to %s", len(sorted), path)
	return nil
}

func (r *Runner) snapshot(sorted []common.Value) error {
	start := time.Now()
	backend, err := storage.NewSQLiteBackend(r.conf.Snapshot.Path)
	if err != nil {
		return fmt.Errorf("snapshot open %s: %w", r.conf.Snapshot.Path, err)
	}
	defer backend.Close()

	if err := backend.ReplaceAll(storage.ToRecords(sorted)); err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}
	r.reporter.Duration("snapshot "+r.conf.Snapshot.Path, time.Since(start))
	return nil
}

func (r *Runner) summary() {
	s := r.stats
	r.reporter.Result("Summary: %d searches (%d hits), %d min/max, %d sorts; search %v, min/max %v, sort %v",
		s.Searches(), s.Hits(), s.MinMaxes(), s.Sorts(),
		s.SearchTime(), s.MinMaxTime(), s.SortTime())
}
