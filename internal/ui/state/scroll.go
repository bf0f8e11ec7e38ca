// Package state holds the pure list computations behind the dashboard:
// center-locked scrolling and session filtering.
package state

// CenteredOffset computes the scroll offset that keeps the selected row in
// the middle of the visible area. At the top the selection may sit above
// the middle, and at the bottom the offset saturates so the list never
// scrolls past its last row.
func CenteredOffset(selected, total, visible int) int {
	if visible <= 0 || total <= 0 {
		return 0
	}
	middle := visible / 2
	if selected <= middle {
		return 0
	}
	offset := selected - middle
	max := total - visible
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	return offset
}
