package entry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewFillsAssignedFields(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	e := New("1771059413000-1", at, Draft{
		Situation:   "上司からのメールで急な会議を要求された",
		AutoThought: "またダメ出しされるんだろう",
	})

	if e.ID != "1771059413000-1" {
		t.Fatalf("unexpected id: %s", e.ID)
	}
	if !e.Date.Equal(at) {
		t.Fatalf("expected date %v, got %v", at, e.Date.Time)
	}
	if e.BeforeMoods == nil || e.AfterMoods == nil {
		t.Fatalf("expected mood lists initialized, got %v / %v", e.BeforeMoods, e.AfterMoods)
	}
	if len(e.BeforeMoods) != 0 {
		t.Fatalf("expected empty before moods, got %d", len(e.BeforeMoods))
	}
}

func TestMoodsLevelFor(t *testing.T) {
	m := Moods{{Name: "不安", Level: 4}, {Name: "イライラ", Level: 3}}

	if got := m.LevelFor("不安"); got != 4 {
		t.Fatalf("expected level 4, got %d", got)
	}
	if got := m.LevelFor("焦り"); got != 0 {
		t.Fatalf("expected 0 for absent emotion, got %d", got)
	}
	if !m.Contains("イライラ") {
		t.Fatalf("expected イライラ present")
	}
	if m.Contains("虚しさ") {
		t.Fatalf("did not expect 虚しさ")
	}
}

func TestMentionsChecksBothLists(t *testing.T) {
	e := New("a", time.Now(), Draft{
		BeforeMoods: Moods{{Name: "不安", Level: 5}},
		AfterMoods:  Moods{{Name: "ゆううつ", Level: 1}},
	})

	if !e.Mentions("不安") || !e.Mentions("ゆううつ") {
		t.Fatalf("expected both lists to be checked")
	}
	if e.Mentions("無気力") {
		t.Fatalf("did not expect 無気力")
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 123000000, time.UTC)
	b, err := json.Marshal(Timestamp{Time: at})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-03-14T09:26:53.123Z"` {
		t.Fatalf("unexpected encoding: %s", b)
	}

	var ts Timestamp
	if err := json.Unmarshal(b, &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ts.Equal(at) {
		t.Fatalf("expected %v, got %v", at, ts.Time)
	}
}

func TestTimestampZeroEncodesEmpty(t *testing.T) {
	b, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("expected empty string, got %s", b)
	}

	var ts Timestamp
	if err := json.Unmarshal(b, &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ts.IsZero() {
		t.Fatalf("expected zero timestamp, got %v", ts.Time)
	}
}
