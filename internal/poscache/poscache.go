// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package poscache

import (
	"errors"
	"fmt"

	"github.com/apex/log"
)

// ErrInvalidArgument is returned for inputs the cache refuses to coerce:
// a negative row count, a non-positive height, or an out-of-range index.
var ErrInvalidArgument = errors.New("invalid argument")

// RowState tracks whether a row's height is still the build-time estimate or
// has been replaced by a real measurement. A row may be measured more than
// once; there is no terminal state.
type RowState int

const (
	Estimated RowState = iota
	Measured
)

func (s RowState) String() string {
	if s == Measured {
		return "measured"
	}
	return "estimated"
}

// Row is the geometry record for a single list row. Top is the cumulative
// offset from the start of the list, Bottom is Top+Height. Top/Bottom are
// only guaranteed current for rows at or below the reconciliation watermark.
type Row struct {
	Height int
	Top    int
	Bottom int
}

// Measurement pairs a row index with its real rendered height.
type Measurement struct {
	Index  int
	Height int
}

// Cache is the position cache. It is owned by a single render loop; callers
// embedding it in a concurrent host are responsible for synchronization.
type Cache struct {
	rows  []Row
	state []RowState

	// total is the running scrollable extent. It is corrected eagerly on
	// every measurement so scrollbar/spacer sizing never lags, even while
	// individual row offsets are stale.
	total int

	// clean is the highest index whose Top/Bottom reflect all corrections.
	// Rows above it are repaired by walking forward on demand.
	clean int
}

// Build allocates a cache of count rows, each seeded with the estimated
// height. Offsets are derived by prefix summation, so the initial extent is
// count*estimate.
func Build(count, estimate int) (*Cache, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count %d is negative", ErrInvalidArgument, count)
	}
	if estimate <= 0 {
		return nil, fmt.Errorf("%w: estimate %d is not positive", ErrInvalidArgument, estimate)
	}

	c := &Cache{
		rows:  make([]Row, count),
		state: make([]RowState, count),
		total: count * estimate,
		clean: count - 1,
	}

	top := 0
	for i := range c.rows {
		c.rows[i] = Row{
			Height: estimate,
			Top:    top,
			Bottom: top + estimate,
		}
		top += estimate
	}

	log.Debugf("built cache: count=%d estimate=%d total=%d", count, estimate, c.total)
	return c, nil
}

// Len returns the number of rows.
func (c *Cache) Len() int {
	return len(c.rows)
}

// TotalHeight returns the current best-known scrollable extent. O(1).
func (c *Cache) TotalHeight() int {
	return c.total
}

// FindStartIndex returns the smallest row index whose bottom edge is at or
// after the given offset, ie. the first row at least partially visible at
// that scroll position. An empty cache and offset <= 0 both return 0; an
// offset at or past the total extent returns the last index.
func (c *Cache) FindStartIndex(offset int) int {
	if len(c.rows) == 0 || offset <= 0 {
		return 0
	}

	c.reconcile(offset)

	// Lower-bound binary search over the reconciled prefix. reconcile()
	// guarantees the answer lies within rows[0..clean].
	start, end := 0, c.clean
	result := c.clean
	for start <= end {
		mid := (start + end) / 2
		if c.rows[mid].Bottom >= offset {
			result = mid
			end = mid - 1
		} else {
			start = mid + 1
		}
	}

	return result
}

// Correct applies a batch of post-render measurements. Heights and the total
// extent are updated immediately; offsets of rows past the first corrected
// index are left stale and repaired lazily by later lookups. The batch is
// validated up front, so an invalid pair rejects the whole call and leaves
// the cache untouched.
func (c *Cache) Correct(measurements []Measurement) error {
	for _, m := range measurements {
		if m.Index < 0 || m.Index >= len(c.rows) {
			return fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidArgument, m.Index, len(c.rows))
		}
		if m.Height <= 0 {
			return fmt.Errorf("%w: measured height %d for row %d is not positive", ErrInvalidArgument, m.Height, m.Index)
		}
	}

	var accumulated int
	for _, m := range measurements {
		c.state[m.Index] = Measured

		delta := m.Height - c.rows[m.Index].Height
		if delta == 0 {
			continue
		}

		c.rows[m.Index].Height = m.Height
		c.rows[m.Index].Bottom += delta
		accumulated += delta

		// The corrected row's own Top/Bottom are still coherent, but
		// everything after it now lags by delta.
		if m.Index < c.clean {
			c.clean = m.Index
		}
	}

	c.total += accumulated
	if accumulated != 0 {
		log.Debugf("corrected %d rows: delta=%d total=%d clean=%d", len(measurements), accumulated, c.total, c.clean)
	}

	return nil
}

// RowAt returns the geometry for a single row, reconciling offsets up
// through it first.
func (c *Cache) RowAt(i int) (Row, error) {
	if i < 0 || i >= len(c.rows) {
		return Row{}, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidArgument, i, len(c.rows))
	}
	c.reconcileThrough(i)
	return c.rows[i], nil
}

// State reports whether row i still carries its estimate or has been
// measured.
func (c *Cache) State(i int) (RowState, error) {
	if i < 0 || i >= len(c.rows) {
		return Estimated, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidArgument, i, len(c.rows))
	}
	return c.state[i], nil
}

// Rows reconciles the entire cache and returns a copy of every row record.
// O(N) - intended for offline queries and reports, not the render path.
func (c *Cache) Rows() []Row {
	if len(c.rows) > 0 {
		c.reconcileThrough(len(c.rows) - 1)
	}
	out := make([]Row, len(c.rows))
	copy(out, c.rows)
	return out
}

// reconcile advances the watermark until the reconciled prefix covers the
// requested offset (or the end of the list). Each row is visited at most
// once per correction that invalidated it, so the cost amortizes to the
// number of rows actually scrolled past.
func (c *Cache) reconcile(offset int) {
	for c.clean < len(c.rows)-1 && c.rows[c.clean].Bottom < offset {
		i := c.clean + 1
		c.rows[i].Top = c.rows[c.clean].Bottom
		c.rows[i].Bottom = c.rows[i].Top + c.rows[i].Height
		c.clean = i
	}
}

// reconcileThrough repairs offsets up to and including index i.
func (c *Cache) reconcileThrough(i int) {
	for c.clean < i {
		j := c.clean + 1
		c.rows[j].Top = c.rows[c.clean].Bottom
		c.rows[j].Bottom = c.rows[j].Top + c.rows[j].Height
		c.clean = j
	}
}
