package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/d-matsui/kokolog/pkg/collection"
	"github.com/d-matsui/kokolog/pkg/emotion"
	"github.com/d-matsui/kokolog/pkg/entry"
	"github.com/d-matsui/kokolog/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
	Now    func() time.Time
}

var (
	spacing = strings.Repeat(" ", len("1771059413000-12  "))
)

func (pp *PrettyPrint) now() time.Time {
	if pp.Now != nil {
		return pp.Now()
	}
	return time.Now()
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d件\n", count)
}

// List renders entries in display order: favorite marker, relative date,
// situation, and the before→after mood summary.
func (pp *PrettyPrint) List(entries collection.Collection) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" 記録がありません\n\n")
		return
	}

	now := pp.now()
	tbl := uitable.New()
	tbl.Separator = "  "
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)
	star := color.New(color.FgYellow)

	for _, e := range entries {
		marker := " "
		if e.IsFavorite {
			marker = star.Sprint("★")
		}
		row := []interface{}{
			marker,
			d.Sprint(timeutil.RelativeDate(e.Date.Time, now)),
			e.Situation,
			MoodSummary(e),
		}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Detail renders one entry with all seven columns.
func (pp *PrettyPrint) Detail(e entry.Entry) {
	label := color.New(color.Faint)
	star := color.New(color.FgYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.AddRow(label.Sprint("日付"), timeutil.FullDate(e.Date.Time))
	tbl.AddRow(label.Sprint("状況"), e.Situation)
	tbl.AddRow(label.Sprint("自動思考"), e.AutoThought)
	tbl.AddRow(label.Sprint("気分(前)"), moodLine(e.BeforeMoods))
	tbl.AddRow(label.Sprint("根拠"), e.Evidence)
	tbl.AddRow(label.Sprint("反証"), e.CounterEvidence)
	tbl.AddRow(label.Sprint("適応思考"), e.NewThought)
	tbl.AddRow(label.Sprint("気分(後)"), moodLine(e.AfterMoods))
	if e.IsFavorite {
		tbl.AddRow(label.Sprint("気づき"), star.Sprint("★"))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Emotions renders the vocabulary table.
func (pp *PrettyPrint) Emotions(all []emotion.Emotion) {
	tbl := uitable.New()
	tbl.Separator = "  "
	b := color.New(color.Bold)
	tbl.AddRow(b.Sprint("感情"), b.Sprint("絵文字"))
	for _, e := range all {
		tbl.AddRow(e.Name, e.Glyph)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// MoodSummary renders an entry's ratings as glyph before→after pairs, one
// per emotion mentioned in either list.
func MoodSummary(e entry.Entry) string {
	names := make([]string, 0, len(e.BeforeMoods)+len(e.AfterMoods))
	seen := make(map[string]struct{})
	for _, list := range []entry.Moods{e.BeforeMoods, e.AfterMoods} {
		for _, m := range list {
			if _, ok := seen[m.Name]; ok {
				continue
			}
			seen[m.Name] = struct{}{}
			names = append(names, m.Name)
		}
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		glyph := emotion.GlyphFor(name)
		if glyph == "" {
			glyph = name
		}
		parts = append(parts, fmt.Sprintf("%s%d→%d", glyph, e.BeforeMoods.LevelFor(name), e.AfterMoods.LevelFor(name)))
	}
	return strings.Join(parts, " ")
}

func moodLine(list entry.Moods) string {
	if len(list) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(list))
	for _, m := range list {
		glyph := emotion.GlyphFor(m.Name)
		if glyph != "" {
			parts = append(parts, fmt.Sprintf("%s %s %d", glyph, m.Name, m.Level))
		} else {
			parts = append(parts, fmt.Sprintf("%s %d", m.Name, m.Level))
		}
	}
	return strings.Join(parts, ", ")
}
