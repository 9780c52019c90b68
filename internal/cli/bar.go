package cli

import (
	"fmt"
	"strings"
)

// ─── Progress Bar ───────────────────────────────────────────────────────────
// Renders progress toward a badge: [=========>..........]  3/5

const barWidth = 20 // Characters for the progress bar

func renderBar(current, target int) string {
	if target <= 0 {
		target = 1
	}
	current = max(0, min(current, target))

	filled := current * barWidth / target
	empty := barWidth - filled

	var bar string
	switch {
	case filled == barWidth:
		bar = strings.Repeat("=", filled)
	case filled > 0:
		bar = strings.Repeat("=", filled-1) + ">" + strings.Repeat(".", empty)
	default:
		bar = strings.Repeat(".", barWidth)
	}
	return fmt.Sprintf("[%s] %d/%d", bar, current, target)
}

// plural formats n with a singular or plural noun.
func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
