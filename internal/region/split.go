package region

import "image"

// Direction is the axis along which Split partitions an area.
type Direction int

const (
	// Horizontal lays rectangles out left to right.
	Horizontal Direction = iota
	// Vertical stacks rectangles top to bottom.
	Vertical
)

// Split partitions area along dir into one rectangle per weight, in order.
//
// Weights are treated as proportions of their sum, so a set that does not add
// up to 100 is renormalized. Negative weights count as zero; if every weight
// is zero the area is split evenly. Each boundary is the running total
// length * cumulative / total rounded to the nearest cell, halves rounding up,
// so every rectangle stays within one cell of its ideal size. The result
// always covers area exactly, with no gaps or overlaps.
func Split(area image.Rectangle, dir Direction, weights []int) []image.Rectangle {
	if len(weights) == 0 {
		return nil
	}

	length := area.Dx()
	if dir == Vertical {
		length = area.Dy()
	}
	if length < 0 {
		length = 0
	}

	w := make([]int, len(weights))
	total := 0
	for i, v := range weights {
		if v > 0 {
			w[i] = v
			total += v
		}
	}
	if total == 0 {
		for i := range w {
			w[i] = 1
		}
		total = len(w)
	}

	rects := make([]image.Rectangle, len(w))
	cumulative, prev := 0, 0
	for i, v := range w {
		cumulative += v
		next := (2*length*cumulative + total) / (2 * total)
		if i == len(w)-1 {
			next = length
		}
		if dir == Vertical {
			rects[i] = image.Rect(area.Min.X, area.Min.Y+prev, area.Max.X, area.Min.Y+next)
		} else {
			rects[i] = image.Rect(area.Min.X+prev, area.Min.Y, area.Min.X+next, area.Max.Y)
		}
		prev = next
	}
	return rects
}
