// Package emotion defines the fixed emotion vocabulary used for mood
// ratings and the glyphs shown next to each name.
package emotion

import (
	"fmt"

	"github.com/d-matsui/kokolog/pkg/entry"
)

// MinLevel and MaxLevel bound a mood intensity rating.
const (
	MinLevel = 1
	MaxLevel = 5
)

// Emotion pairs a vocabulary name with its display glyph.
type Emotion struct {
	Name  string
	Glyph string
}

// Default returns the emotion vocabulary in display order.
func Default() []Emotion {
	return []Emotion{
		{Name: "イライラ", Glyph: "😠"},
		{Name: "不安", Glyph: "😥"},
		{Name: "ゆううつ", Glyph: "😞"},
		{Name: "焦り", Glyph: "😰"},
		{Name: "虚しさ", Glyph: "🫥"},
		{Name: "無気力", Glyph: "😮‍💨"},
	}
}

// Names returns the vocabulary names in display order.
func Names() []string {
	all := Default()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}
	return names
}

// GlyphFor returns the glyph for a vocabulary name, or the empty string for
// names outside the vocabulary (callers render those without a glyph).
func GlyphFor(name string) string {
	for _, e := range Default() {
		if e.Name == name {
			return e.Glyph
		}
	}
	return ""
}

// Known reports whether name is part of the vocabulary.
func Known(name string) bool {
	for _, e := range Default() {
		if e.Name == name {
			return true
		}
	}
	return false
}

// ValidateMood checks a single mood against the vocabulary and level range.
func ValidateMood(m entry.Mood) error {
	if m.Name == "" {
		return fmt.Errorf("emotion: mood name required")
	}
	if !Known(m.Name) {
		return fmt.Errorf("emotion: unknown emotion %q", m.Name)
	}
	if m.Level < MinLevel || m.Level > MaxLevel {
		return fmt.Errorf("emotion: level %d out of range %d..%d", m.Level, MinLevel, MaxLevel)
	}
	return nil
}

// ValidateMoods checks every mood in a list and rejects duplicate names,
// the per-list uniqueness invariant.
func ValidateMoods(list entry.Moods) error {
	seen := make(map[string]struct{}, len(list))
	for _, m := range list {
		if err := ValidateMood(m); err != nil {
			return err
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("emotion: duplicate emotion %q in mood list", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return nil
}

func (e Emotion) String() string {
	return fmt.Sprintf("%s %s", e.Glyph, e.Name)
}
