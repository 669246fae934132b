// Package output renders the end-of-run terminal summary. Styling goes
// through lipgloss with semantic styles; callers decide whether color
// is appropriate (non-TTY output and NO_COLOR stay plain).
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mtcontrib/mediastore/pkg/core"
	"github.com/mtcontrib/mediastore/pkg/types"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	countStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"})
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"})
)

// Renderer writes build summaries.
type Renderer struct {
	w       io.Writer
	noColor bool
}

// NewRenderer returns a renderer writing to w. With noColor set, all
// styling is skipped.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	return &Renderer{w: w, noColor: noColor}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}

// Summary prints what a build run did.
func (r *Renderer) Summary(result *core.Result, mode types.PlaceMode) {
	fmt.Fprintln(r.w, r.style(titleStyle, "media store build"))
	fmt.Fprintf(r.w, "  assets found:      %s\n", r.style(countStyle, fmt.Sprintf("%d", result.FilesFound)))
	fmt.Fprintf(r.w, "  unique assets:     %s\n", r.style(countStyle, fmt.Sprintf("%d", result.Unique)))
	fmt.Fprintf(r.w, "  duplicates merged: %s\n", r.style(dimStyle, fmt.Sprintf("%d", result.Duplicates)))
	fmt.Fprintf(r.w, "  manifest:          %s\n", result.IndexPath)

	if mode != types.PlaceNone {
		fmt.Fprintf(r.w, "  placed (%s):  %s, already present: %s\n",
			mode,
			r.style(countStyle, fmt.Sprintf("%d", result.Placed)),
			r.style(dimStyle, fmt.Sprintf("%d", result.Skipped)))
	}

	if len(result.Failures) > 0 {
		fmt.Fprintln(r.w, r.style(failureStyle, fmt.Sprintf("  %d placement failure(s):", len(result.Failures))))
		for _, f := range result.Failures {
			fmt.Fprintf(r.w, "    %s: %v\n", f.Asset.Path, f.Err)
		}
	}
}
