package logic

// Navigation works on plain integers so every step is a total function:
// selected and offset index into the filtered list, length is its size and
// height is the number of rows the viewport can show.

// Move shifts the selection by delta and clamps it into the list.
// An empty list always yields 0.
func Move(selected, delta, length int) int {
	if length <= 0 {
		return 0
	}
	return clamp(selected+delta, 0, length-1)
}

// JumpTop returns the index of the first row
func JumpTop() int {
	return 0
}

// JumpBottom returns the index of the last row, or 0 for an empty list
func JumpBottom(length int) int {
	if length <= 0 {
		return 0
	}
	return length - 1
}

// Reset returns the selection and offset used after the filtered list changes.
// Positions are not stable across different result sets, so both go back to
// the top.
func Reset() (selected, offset int) {
	return 0, 0
}

// ReconcileScroll returns the smallest offset that keeps the selected row
// inside the viewport. It never scrolls past the point where trailing rows
// would be blank while enough entries exist to fill the viewport.
func ReconcileScroll(selected, length, height int) int {
	if height < 1 {
		height = 1
	}
	return clamp(selected-height+1, 0, MaxOffset(length, height))
}

// MaxOffset returns the largest valid scroll offset for a list
func MaxOffset(length, height int) int {
	if height < 1 {
		height = 1
	}
	if length <= height {
		return 0
	}
	return length - height
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
