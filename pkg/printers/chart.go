package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/d-matsui/kokolog/pkg/collection"
	"github.com/d-matsui/kokolog/pkg/emotion"
	"github.com/d-matsui/kokolog/pkg/timeutil"
)

// MinChartPoints is the smallest series worth drawing as a comparison.
const MinChartPoints = 2

// Chart renders an emotion series as paired level bars, one pair per entry:
// the rating before reframing in red, after in green.
func (pp *PrettyPrint) Chart(name string, points []collection.Point) {
	glyph := emotion.GlyphFor(name)
	if glyph != "" {
		pp.Title(fmt.Sprintf("%s %s", glyph, name))
	} else {
		pp.Title(name)
	}

	if len(points) < MinChartPoints {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" 表示するデータが足りません (2件以上の記録が必要です)\n\n")
		return
	}

	before := color.New(color.FgRed)
	after := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range points {
		day := timeutil.AxisLabel(p.Entry.Date.Time)
		tbl.AddRow(day, faint.Sprint("前"), before.Sprint(levelBar(p.Before)), p.Before)
		tbl.AddRow("", faint.Sprint("後"), after.Sprint(levelBar(p.After)), p.After)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	legend := fmt.Sprintf("%s %s", before.Sprint("■ 記入前"), after.Sprint("■ 記入後"))
	_, _ = fmt.Fprintf(color.Output, "%s\n\n", legend)
}

func levelBar(level int) string {
	if level < 0 {
		level = 0
	}
	if level > emotion.MaxLevel {
		level = emotion.MaxLevel
	}
	return strings.Repeat("█", level) + strings.Repeat("░", emotion.MaxLevel-level)
}
