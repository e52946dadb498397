package emotion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/d-matsui/kokolog/pkg/entry"
)

// ParseMoods parses a flag value like "不安:4,イライラ:3" into a validated
// mood list. Empty input yields an empty list.
func ParseMoods(input string) (entry.Moods, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return entry.Moods{}, nil
	}

	parts := strings.Split(trimmed, ",")
	list := make(entry.Moods, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, levelStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("emotion: expected 感情:強度, got %q", part)
		}
		level, err := strconv.Atoi(strings.TrimSpace(levelStr))
		if err != nil {
			return nil, fmt.Errorf("emotion: invalid level in %q: %w", part, err)
		}
		list = append(list, entry.Mood{Name: strings.TrimSpace(name), Level: level})
	}
	if err := ValidateMoods(list); err != nil {
		return nil, err
	}
	return list, nil
}
