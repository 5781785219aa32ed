package tui

import (
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kittech/kbproximity/internal/gesture"
	"github.com/kittech/kbproximity/internal/keylayout"
)

// RenderLayoutSummary prints a one-row-per-key summary of l's geometry.
func RenderLayoutSummary(w io.Writer, l *keylayout.Layout) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(EmptyStyle())
	tw.AppendHeader(table.Row{"key", "code", "center x", "center y", "width", "height", "sweet spot"})
	for i := 0; i < l.KeyCount(); i++ {
		code, _ := l.OriginalCodePointOf(i)
		tw.AppendRow(table.Row{
			i, string(code),
			Comma(l.KeyCenterXOf(i, nil)), Comma(l.KeyCenterYOf(i, nil, false)),
			Comma(l.MostCommonKeyWidth()), Comma(l.MostCommonKeyHeight()),
			l.HasSweetSpotData(i),
		})
	}
	tw.Render()
}

// RenderSampledPoints prints one row per sub-sampled gesture point.
func RenderSampledPoints(w io.Writer, s *gesture.State) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(EmptyStyle())
	tw.AppendHeader(table.Row{"#", "x", "y", "length", "speed rate", "direction", "double letter"})
	for i := 0; i < s.Size(); i++ {
		row := table.Row{i, s.InputX(i), s.InputY(i), Comma(s.LengthCache(i))}
		if i < s.Size()-1 {
			row = append(row, Fraction(float64(s.SpeedRate(i))), Angle(float64(s.Direction(i))*180/math.Pi))
		} else {
			row = append(row, "-", "-")
		}
		row = append(row, doubleLetterString(s.DoubleLetterLevel(i)))
		tw.AppendRow(row)
	}
	tw.Render()
}

func doubleLetterString(l gesture.DoubleLetterLevel) string {
	switch l {
	case gesture.DoubleLetterStrong:
		return "strong"
	case gesture.DoubleLetterWeak:
		return "weak"
	default:
		return "none"
	}
}

// RenderEmojiResults prints emoji search results, ranked highest first.
func RenderEmojiResults(w io.Writer, query string, results []string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(EmptyStyle())
	tw.AppendHeader(table.Row{"rank", "emoji"})
	for i, id := range results {
		tw.AppendRow(table.Row{i + 1, id})
	}
	if len(results) == 0 {
		tw.AppendRow(table.Row{"-", "no matches for " + query})
	}
	tw.Render()
}
