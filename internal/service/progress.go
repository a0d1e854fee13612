package service

import "math"

// Percentage returns round(100*unlocked/total) clamped to [0, 100].
// A game without achievements is at 0%.
func Percentage(unlocked, total int) int {
	if total <= 0 || unlocked <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(unlocked) / float64(total)))
	if p > 100 {
		return 100
	}
	return p
}
