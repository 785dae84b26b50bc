// Package report renders a partition.Result for the terminal: a totals
// block plus a proportional strip of labeled segments, one per planned
// block, wrapped at a display-width budget. Rendering is a stateless
// function of the result; callers receive lines and decide where they go.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ja7ad/arenaplan/pkg/partition"
	"github.com/ja7ad/arenaplan/pkg/types"
)

// DefaultWidth is the wrap budget, in display cells, for the visual strip.
const DefaultWidth = 96

// maxSegmentWidth is the rendered width of one block of the largest
// configured size; smaller blocks scale down proportionally.
const maxSegmentWidth = 32

// Options control rendering. The zero value is usable.
type Options struct {
	Width   int  // strip wrap budget in cells; DefaultWidth when <= 0
	NoColor bool // render the same geometry unstyled
}

// Lines renders the totals block followed by the visual strip.
func Lines(res partition.Result, opt Options) []string {
	out := Summary(res, opt)
	out = append(out, "", "Visual layout:")
	out = append(out, Strip(res, opt)...)
	return out
}

// Summary renders the totals: arena size, per-size block counts in the
// configured (descending) order, and the gap.
func Summary(res partition.Result, opt Options) []string {
	st := palette(opt.NoColor)

	lines := make([]string, 0, len(res.Sizes)+2)
	lines = append(lines, fmt.Sprintf("Arena size: %s bytes (%s)",
		st.total.Render(strconv.FormatUint(uint64(res.Arena), 10)),
		res.Arena.Humanized()))
	for _, sz := range res.Sizes {
		lines = append(lines, fmt.Sprintf("%s byte blocks: %s",
			st.size.Render(fmt.Sprintf("%4d", uint64(sz))),
			st.count.Render(strconv.Itoa(res.Counts[sz]))))
	}
	lines = append(lines, fmt.Sprintf("Remaining gap: %s",
		st.gap.Render(fmt.Sprintf("%d bytes", uint64(res.Gap)))))
	return lines
}

// Strip renders one labeled segment per planned block, widths proportional
// to the block size, packed into lines of at most opt.Width display cells.
// Width is measured on rendered cells, so styling never affects geometry.
func Strip(res partition.Result, opt Options) []string {
	st := palette(opt.NoColor)
	budget := opt.Width
	if budget <= 0 {
		budget = DefaultWidth
	}

	var (
		lines []string
		line  strings.Builder
		used  int
	)
	push := func(seg string) {
		w := lipgloss.Width(seg)
		if used > 0 && used+w > budget {
			lines = append(lines, line.String())
			line.Reset()
			used = 0
		}
		line.WriteString(seg)
		used += w
	}

	for _, sz := range res.Sizes {
		count := res.Counts[sz]
		if count == 0 {
			continue
		}
		label := strconv.FormatUint(uint64(sz), 10)
		seg := st.size.Render(segment(label, segWidth(sz, res.Sizes.Max())))
		for i := 0; i < count; i++ {
			push(seg)
		}
	}
	if res.Gap > 0 {
		w := segWidth(res.Gap, res.Sizes.Max())
		label := ""
		if w >= 7 {
			label = "GAP"
		}
		push(st.gap.Render(segment(label, w)))
	}
	if used > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// segWidth scales a byte size to cells, anchored at maxSegmentWidth for
// the largest configured size.
func segWidth(sz, max types.Bytes) int {
	return int(uint64(maxSegmentWidth) * uint64(sz) / uint64(max))
}

// segment is "[label]" with the label centered in width cells. The
// bracketed label is the floor: tiny blocks stay legible even when their
// proportional width would be narrower.
func segment(label string, width int) string {
	return "[" + center(label, width-2) + "]"
}

func center(s string, w int) string {
	if w <= len(s) {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}
