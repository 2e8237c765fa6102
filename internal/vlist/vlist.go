// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package vlist

import (
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss"

	"github.com/staranto/vlctlgo/internal/poscache"
)

const (
	// DefaultEstimate is the per-row height assumed before a row has ever
	// been rendered. Deliberately low; most rows are a handful of lines
	// and overshooting makes the scrollbar jumpy.
	DefaultEstimate = 3

	// DefaultOverscan is how many rows beyond each edge of the viewport
	// get rendered and measured so small scrolls don't pop.
	DefaultOverscan = 2
)

// Item is one row of list content. Content is the raw, unwrapped text; the
// list wraps it to the current width before measuring.
type Item interface {
	ID() string
	Content() string
}

// List owns a position cache plus a rendered-view cache and exposes scroll
// and window operations to a host render loop. Not safe for concurrent use;
// the owning loop drives it.
type List struct {
	items    []Item
	cache    *poscache.Cache
	estimate int
	overscan int

	width  int
	height int
	offset int

	views map[string]string
}

// Option customizes a List at construction.
type Option func(*List)

// WithSize sets the viewport dimensions.
func WithSize(width, height int) Option {
	return func(l *List) {
		l.width = width
		l.height = height
	}
}

// WithEstimate overrides the pre-measurement height estimate.
func WithEstimate(estimate int) Option {
	return func(l *List) {
		l.estimate = estimate
	}
}

// WithOverscan overrides how many extra rows are rendered past each edge.
func WithOverscan(overscan int) Option {
	return func(l *List) {
		l.overscan = overscan
	}
}

// New builds a List over the given items. The position cache starts with
// every row at the estimated height.
func New(items []Item, opts ...Option) (*List, error) {
	l := &List{
		items:    items,
		estimate: DefaultEstimate,
		overscan: DefaultOverscan,
		views:    make(map[string]string),
	}

	for _, opt := range opts {
		opt(l)
	}

	cache, err := poscache.Build(len(items), l.estimate)
	if err != nil {
		return nil, err
	}
	l.cache = cache

	return l, nil
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Item returns the item at index i, or nil if out of range.
func (l *List) Item(i int) Item {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Cache exposes the underlying position cache for geometry queries.
func (l *List) Cache() *poscache.Cache {
	return l.cache
}

// Offset returns the current scroll offset in lines.
func (l *List) Offset() int {
	return l.offset
}

// Size returns the viewport dimensions.
func (l *List) Size() (width, height int) {
	return l.width, l.height
}

// SetSize resizes the viewport. A width change invalidates every rendered
// view and measurement, so the cache is rebuilt from the estimate.
func (l *List) SetSize(width, height int) {
	widthChanged := width != l.width

	l.width = width
	l.height = height

	if widthChanged {
		l.views = make(map[string]string)
		cache, err := poscache.Build(len(l.items), l.estimate)
		if err != nil {
			// Only reachable with a non-positive estimate, which New
			// already accepted once.
			log.WithError(err).Error("rebuild on resize")
			return
		}
		l.cache = cache
		log.Debugf("resize invalidated measurements: width=%d height=%d", width, height)
	}

	l.clampOffset()
}

// ScrollBy moves the viewport by delta lines, clamped to the content.
func (l *List) ScrollBy(delta int) {
	l.offset += delta
	l.clampOffset()
}

// GoToTop scrolls to the start of the list.
func (l *List) GoToTop() {
	l.offset = 0
}

// GoToBottom scrolls so the last line of content sits on the last viewport
// line.
func (l *List) GoToBottom() {
	l.offset = l.cache.TotalHeight() - l.height
	l.clampOffset()
}

// SetOffset jumps to an absolute scroll offset, clamped.
func (l *List) SetOffset(offset int) {
	l.offset = offset
	l.clampOffset()
}

// ScrollPercent reports how far through the scrollable range the viewport
// is, in [0,1].
func (l *List) ScrollPercent() float64 {
	max := l.cache.TotalHeight() - l.height
	if max <= 0 {
		return 1
	}
	return float64(l.offset) / float64(max)
}

// Layout runs a render-and-measure pass over the current window (plus
// overscan), corrects the cache, re-clamps the offset against the corrected
// total, and returns the visible index range, overscan excluded. This is
// the once-per-frame entry point; View composes from the geometry it leaves
// behind.
func (l *List) Layout() (start, end int) {
	if len(l.items) == 0 {
		return 0, -1
	}

	start, end = l.window()

	ms := make([]poscache.Measurement, 0, end-start+1)
	for i := start; i <= end; i++ {
		ms = append(ms, poscache.Measurement{
			Index:  i,
			Height: lipgloss.Height(l.viewFor(i)),
		})
	}
	if err := l.cache.Correct(ms); err != nil {
		// Indexes come from window() and heights from lipgloss, so this
		// is a bug, not an input problem.
		log.WithError(err).Error("measurement pass")
	}

	l.clampOffset()
	return l.visible()
}

// Window returns the overscan-widened index range a Layout pass measures at
// the current offset.
func (l *List) Window() (start, end int) {
	if len(l.items) == 0 {
		return 0, -1
	}
	return l.window()
}

// View composes the visible window into a single height-line string,
// slicing partially visible first/last rows at the viewport edges. It does
// not measure; run Layout first each frame.
func (l *List) View() string {
	if l.height <= 0 {
		return ""
	}
	if len(l.items) == 0 {
		return strings.Repeat("\n", l.height-1)
	}

	start, end := l.window()

	lines := make([]string, 0, l.height)
	for i := start; i <= end && len(lines) < l.height; i++ {
		row, err := l.cache.RowAt(i)
		if err != nil {
			break
		}
		if row.Bottom <= l.offset {
			// Overscan row entirely above the viewport.
			continue
		}

		viewLines := strings.Split(l.viewFor(i), "\n")
		from := 0
		if row.Top < l.offset {
			from = l.offset - row.Top
		}
		for j := from; j < len(viewLines) && len(lines) < l.height; j++ {
			lines = append(lines, viewLines[j])
		}
	}

	for len(lines) < l.height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// MeasureAll renders and measures every row. O(N) - offline geometry
// queries only, never the interactive path.
func (l *List) MeasureAll() error {
	ms := make([]poscache.Measurement, len(l.items))
	for i := range l.items {
		ms[i] = poscache.Measurement{
			Index:  i,
			Height: lipgloss.Height(l.viewFor(i)),
		}
	}
	return l.cache.Correct(ms)
}

// viewFor returns the wrapped render of item i, caching by item ID.
func (l *List) viewFor(i int) string {
	item := l.items[i]
	if view, ok := l.views[item.ID()]; ok {
		return view
	}

	view := lipgloss.NewStyle().Width(l.width).Render(item.Content())
	l.views[item.ID()] = view
	return view
}

// visible returns the index range overlapping the viewport.
func (l *List) visible() (start, end int) {
	start = l.cache.FindStartIndex(l.offset)

	end = start
	bottomEdge := l.offset + l.height
	for end+1 < len(l.items) {
		row, err := l.cache.RowAt(end)
		if err != nil || row.Bottom >= bottomEdge {
			break
		}
		end++
	}

	return start, end
}

// window widens the visible range by the overscan margin.
func (l *List) window() (start, end int) {
	start, end = l.visible()

	start -= l.overscan
	if start < 0 {
		start = 0
	}
	end += l.overscan
	if end > len(l.items)-1 {
		end = len(l.items) - 1
	}

	return start, end
}

func (l *List) clampOffset() {
	max := l.cache.TotalHeight() - l.height
	if max < 0 {
		max = 0
	}
	if l.offset > max {
		l.offset = max
	}
	if l.offset < 0 {
		l.offset = 0
	}
}
