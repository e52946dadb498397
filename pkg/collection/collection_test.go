package collection

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/d-matsui/kokolog/pkg/entry"
)

func mkEntry(id string, at time.Time, fav bool, before, after entry.Moods) entry.Entry {
	e := entry.New(id, at, entry.Draft{
		Situation:   "situation " + id,
		BeforeMoods: before,
		AfterMoods:  after,
		IsFavorite:  fav,
	})
	return e
}

func TestFavoritesPreservesOrder(t *testing.T) {
	now := time.Now()
	c := Collection{
		mkEntry("a", now, true, nil, nil),
		mkEntry("b", now, false, nil, nil),
		mkEntry("c", now, true, nil, nil),
	}

	favs := c.Favorites()
	if len(favs) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(favs))
	}
	if favs[0].ID != "a" || favs[1].ID != "c" {
		t.Fatalf("unexpected order: %s, %s", favs[0].ID, favs[1].ID)
	}
	for _, e := range favs {
		if !e.IsFavorite {
			t.Fatalf("non-favorite %s in favorites view", e.ID)
		}
	}
}

func TestFavoritesEmptyCollection(t *testing.T) {
	if got := (Collection{}).Favorites(); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestEmotionsDeduplicatesAcrossLists(t *testing.T) {
	now := time.Now()
	c := Collection{
		mkEntry("a", now, false,
			entry.Moods{{Name: "不安", Level: 4}, {Name: "イライラ", Level: 3}},
			entry.Moods{{Name: "不安", Level: 2}}),
		mkEntry("b", now, false,
			entry.Moods{{Name: "ゆううつ", Level: 3}},
			entry.Moods{{Name: "イライラ", Level: 1}}),
	}

	got := c.Emotions()
	want := []string{"不安", "イライラ", "ゆううつ"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEmotionsEmptyCollection(t *testing.T) {
	if got := (Collection{}).Emotions(); len(got) != 0 {
		t.Fatalf("expected no emotions, got %v", got)
	}
}

func TestEmotionSeriesWindowsToMostRecentSeven(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	c := make(Collection, 0, 10)
	// Prepend order: newest first, like the store produces.
	for i := 9; i >= 0; i-- {
		c = append(c, mkEntry(
			fmt.Sprintf("e%d", i),
			base.AddDate(0, 0, i),
			false,
			entry.Moods{{Name: "不安", Level: 5}},
			entry.Moods{{Name: "不安", Level: 2}},
		))
	}

	points := c.EmotionSeries("不安")
	if len(points) != SeriesWindow {
		t.Fatalf("expected %d points, got %d", SeriesWindow, len(points))
	}
	// The three oldest entries (e0..e2) fall outside the window.
	if points[0].Entry.ID != "e3" {
		t.Fatalf("expected window to start at e3, got %s", points[0].Entry.ID)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Entry.Date.Before(points[i-1].Entry.Date.Time) {
			t.Fatalf("series not ascending at %d", i)
		}
	}
	if points[6].Entry.ID != "e9" {
		t.Fatalf("expected newest point last, got %s", points[6].Entry.ID)
	}
}

func TestEmotionSeriesLevels(t *testing.T) {
	now := time.Now()
	c := Collection{
		mkEntry("only-before", now, false,
			entry.Moods{{Name: "焦り", Level: 5}}, nil),
		mkEntry("only-after", now.Add(time.Hour), false,
			nil, entry.Moods{{Name: "焦り", Level: 2}}),
	}

	points := c.EmotionSeries("焦り")
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Before != 5 || points[0].After != 0 {
		t.Fatalf("unexpected levels for before-only entry: %d/%d", points[0].Before, points[0].After)
	}
	if points[1].Before != 0 || points[1].After != 2 {
		t.Fatalf("unexpected levels for after-only entry: %d/%d", points[1].Before, points[1].After)
	}
}

func TestEmotionSeriesStableOnEqualTimestamps(t *testing.T) {
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	c := Collection{
		mkEntry("first", at, false, entry.Moods{{Name: "不安", Level: 1}}, nil),
		mkEntry("second", at, false, entry.Moods{{Name: "不安", Level: 2}}, nil),
	}

	points := c.EmotionSeries("不安")
	if points[0].Entry.ID != "first" || points[1].Entry.ID != "second" {
		t.Fatalf("expected pre-sort order kept, got %s, %s", points[0].Entry.ID, points[1].Entry.ID)
	}
}

func TestEmotionSeriesNoMatches(t *testing.T) {
	c := Collection{mkEntry("a", time.Now(), false, entry.Moods{{Name: "不安", Level: 3}}, nil)}
	if points := c.EmotionSeries("無気力"); len(points) != 0 {
		t.Fatalf("expected empty series, got %d points", len(points))
	}
	if points := (Collection{}).EmotionSeries("不安"); len(points) != 0 {
		t.Fatalf("expected empty series for empty collection, got %d", len(points))
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	c := Collection{
		entry.New("1", at, entry.Draft{
			Situation:       "S",
			AutoThought:     "T",
			BeforeMoods:     entry.Moods{{Name: "不安", Level: 4}},
			AfterMoods:      entry.Moods{{Name: "不安", Level: 2}},
			Evidence:        "E",
			CounterEvidence: "CE",
			NewThought:      "N",
			IsFavorite:      true,
		}),
		entry.New("2", at.Add(time.Minute), entry.Draft{}),
	}

	data, err := Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(c, back) {
		t.Fatalf("round trip mismatch:\n%v\n%v", c, back)
	}
}

func TestUnmarshalDefaultsAbsentFields(t *testing.T) {
	data := []byte(`[{"id":"x","date":"2026-03-14T09:26:53Z","situation":"S"}]`)
	c, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(c) != 1 {
		t.Fatalf("expected one entry, got %d", len(c))
	}
	e := c[0]
	if e.BeforeMoods == nil || e.AfterMoods == nil {
		t.Fatalf("expected mood lists defaulted")
	}
	if e.IsFavorite {
		t.Fatalf("expected isFavorite defaulted to false")
	}
	if e.AutoThought != "" || e.Evidence != "" {
		t.Fatalf("expected text fields defaulted to empty")
	}
}

func TestUnmarshalEmptyPayload(t *testing.T) {
	c, err := Unmarshal(nil)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(c) != 0 {
		t.Fatalf("expected empty collection, got %d", len(c))
	}
}

func TestFind(t *testing.T) {
	c := Collection{mkEntry("a", time.Now(), false, nil, nil)}
	if _, ok := c.Find("a"); !ok {
		t.Fatalf("expected to find entry a")
	}
	if _, ok := c.Find("missing"); ok {
		t.Fatalf("did not expect to find missing id")
	}
}
