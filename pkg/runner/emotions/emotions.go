package emotions

import (
	"context"
	"fmt"
	"strings"

	"github.com/d-matsui/kokolog/pkg/emotion"
	"github.com/d-matsui/kokolog/pkg/printers"
	"github.com/d-matsui/kokolog/pkg/store"
)

type Emotions struct {
	Store *store.Store
}

func (n *Emotions) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("感情一覧")
	pp.Emotions(emotion.Default())

	if n.Store == nil {
		return nil
	}
	recorded := n.Store.Logs().Emotions()
	if len(recorded) > 0 {
		fmt.Println("")
		pp.Title("記録された感情")
		parts := make([]string, 0, len(recorded))
		for _, name := range recorded {
			if glyph := emotion.GlyphFor(name); glyph != "" {
				parts = append(parts, fmt.Sprintf("%s %s", glyph, name))
			} else {
				parts = append(parts, name)
			}
		}
		fmt.Println(strings.Join(parts, "  "))
	}
	return nil
}
