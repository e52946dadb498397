// Package collection holds the ordered set of journal entries and the pure
// read views derived from it. The collection is the unit of persistence:
// one JSON array under a single storage key.
package collection

import (
	"encoding/json"
	"sort"

	"github.com/d-matsui/kokolog/pkg/entry"
)

// SeriesWindow is the number of most recent points kept in an emotion
// time series, matching the chart's visible range.
const SeriesWindow = 7

// Collection is an ordered sequence of entries. Insertion order is the
// display order: new entries are prepended, so index 0 is the newest.
type Collection []entry.Entry

// Marshal serialises the collection as the persisted JSON array.
func Marshal(c Collection) ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	return json.Marshal(c)
}

// Unmarshal deserialises a persisted JSON array and fills the defaults for
// fields absent from older payloads.
func Unmarshal(data []byte) (Collection, error) {
	if len(data) == 0 {
		return Collection{}, nil
	}
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	for i := range c {
		c[i].Normalize()
	}
	if c == nil {
		c = Collection{}
	}
	return c, nil
}

// Display returns the list-screen ordering, which is the collection's own
// insertion order. No re-sort.
func (c Collection) Display() Collection {
	return c
}

// Favorites returns the entries flagged as notable insights, preserving
// collection order.
func (c Collection) Favorites() Collection {
	out := make(Collection, 0, len(c))
	for _, e := range c {
		if e.IsFavorite {
			out = append(out, e)
		}
	}
	return out
}

// Emotions returns the distinct mood names appearing in any entry's before
// or after list, in first-appearance order.
func (c Collection) Emotions() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	add := func(list entry.Moods) {
		for _, m := range list {
			if _, ok := seen[m.Name]; ok {
				continue
			}
			seen[m.Name] = struct{}{}
			names = append(names, m.Name)
		}
	}
	for _, e := range c {
		add(e.BeforeMoods)
		add(e.AfterMoods)
	}
	return names
}

// Point is one emotion time-series sample: the entry plus its before and
// after levels for the selected emotion (0 when a list lacks it).
type Point struct {
	Entry  entry.Entry
	Before int
	After  int
}

// EmotionSeries returns the chart series for one emotion: entries
// referencing it in either mood list, ascending by date, truncated to the
// most recent SeriesWindow points. Equal timestamps keep their pre-sort
// relative order.
func (c Collection) EmotionSeries(name string) []Point {
	matched := make(Collection, 0, len(c))
	for _, e := range c {
		if e.Mentions(name) {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date.Time)
	})
	if len(matched) > SeriesWindow {
		matched = matched[len(matched)-SeriesWindow:]
	}

	points := make([]Point, len(matched))
	for i, e := range matched {
		points[i] = Point{
			Entry:  e,
			Before: e.BeforeMoods.LevelFor(name),
			After:  e.AfterMoods.LevelFor(name),
		}
	}
	return points
}

// Find returns the entry with the given id and whether it exists.
func (c Collection) Find(id string) (entry.Entry, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return entry.Entry{}, false
}

// Clone returns a copy so callers can hold a snapshot while the store
// keeps mutating its own state.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}
