package emotion

import (
	"testing"
)

func TestParseMoods(t *testing.T) {
	list, err := ParseMoods("不安:4, イライラ:3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 moods, got %d", len(list))
	}
	if list[0].Name != "不安" || list[0].Level != 4 {
		t.Fatalf("unexpected first mood: %+v", list[0])
	}
	if list[1].Name != "イライラ" || list[1].Level != 3 {
		t.Fatalf("unexpected second mood: %+v", list[1])
	}
}

func TestParseMoodsEmpty(t *testing.T) {
	list, err := ParseMoods("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestParseMoodsRejectsBadInput(t *testing.T) {
	cases := []string{
		"不安",        // missing level
		"不安:x",      // non-numeric level
		"不安:9",      // out of range
		"happy:3",   // outside vocabulary
		"不安:4,不安:2", // duplicate
	}
	for _, input := range cases {
		if _, err := ParseMoods(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
